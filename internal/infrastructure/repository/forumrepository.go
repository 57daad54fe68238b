package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"aircast/internal/domain/forum"
	"aircast/internal/infrastructure/persistence/models"
	appErrors "aircast/internal/shared/errors"
)

// ForumLookupRepository serves the profile and topic lookups used during
// enrichment. Missing rows are reported as (nil, nil) so callers can
// degrade instead of failing.
type ForumLookupRepository struct {
	db *gorm.DB
}

func NewForumLookupRepository(db *gorm.DB) *ForumLookupRepository {
	return &ForumLookupRepository{db: db}
}

var (
	_ forum.ProfileLookup = (*ForumLookupRepository)(nil)
	_ forum.TopicLookup   = (*ForumLookupRepository)(nil)
)

func (r *ForumLookupRepository) FindProfile(ctx context.Context, userID string) (*forum.Profile, error) {
	var user models.UserModel
	err := r.db.WithContext(ctx).
		Where("sid = ?", userID).
		Take(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, appErrors.NewInternalError("failed to fetch profile", err.Error())
	}

	username := user.Username
	return &forum.Profile{
		ID:          user.SID,
		DisplayName: user.DisplayName,
		Username:    &username,
		AvatarURL:   user.AvatarURL,
	}, nil
}

func (r *ForumLookupRepository) FindTopicContext(ctx context.Context, topicID string) (*forum.TopicContext, error) {
	var topic models.TopicModel
	err := r.db.WithContext(ctx).
		Joins("Category").
		Where("forum_topics.sid = ?", topicID).
		Take(&topic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, appErrors.NewInternalError("failed to fetch topic", err.Error())
	}

	tc := &forum.TopicContext{
		ID:         topic.SID,
		Title:      topic.Title,
		Slug:       topic.Slug,
		CategoryID: topic.CategorySID,
	}
	if topic.Category != nil {
		slug := topic.Category.Slug
		tc.CategorySlug = &slug
	}
	return tc, nil
}

func (r *ForumLookupRepository) FindCategorySlug(ctx context.Context, categoryID string) (*string, error) {
	var category models.CategoryModel
	err := r.db.WithContext(ctx).
		Where("sid = ?", categoryID).
		Take(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, appErrors.NewInternalError("failed to fetch category", err.Error())
	}

	slug := category.Slug
	return &slug, nil
}
