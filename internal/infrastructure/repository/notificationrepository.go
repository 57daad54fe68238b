package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"aircast/internal/domain/forum"
	"aircast/internal/domain/notification"
	"aircast/internal/infrastructure/persistence/mappers"
	"aircast/internal/infrastructure/persistence/models"
	appErrors "aircast/internal/shared/errors"
)

// NotificationRepositoryImpl implements notification.Repository on gorm.
type NotificationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewNotificationRepository(db *gorm.DB) notification.Repository {
	return &NotificationRepositoryImpl{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *NotificationRepositoryImpl) ListByRecipient(ctx context.Context, recipientID string, limit, offset int) ([]*notification.Event, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.NotificationModel{}).
		Where("recipient_sid = ?", recipientID).
		Count(&total).Error; err != nil {
		return nil, 0, appErrors.NewInternalError("failed to count notifications", err.Error())
	}

	var rows []*models.NotificationModel
	query := r.db.WithContext(ctx).
		Model(&models.NotificationModel{}).
		Joins("Actor").
		Where("notifications.recipient_sid = ?", recipientID).
		Order("notifications.created_at DESC, notifications.id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, appErrors.NewInternalError("failed to list notifications", err.Error())
	}

	return r.mapper.ToEvents(rows), total, nil
}

// enrichedRow is the flat scan target for the single-round-trip fetch.
type enrichedRow struct {
	SID            string
	RecipientSID   string
	ActorSID       *string
	Kind           string
	TopicSID       *string
	PostSID        *string
	ContentPreview *string
	ReadStatus     string
	Details        datatypes.JSON
	CreatedAt      time.Time

	ActorUserSID     *string
	ActorUsername    *string
	ActorDisplayName *string
	ActorAvatarURL   *string

	TopicTitle   *string
	TopicSlug    *string
	CategorySlug *string
}

func (r *NotificationRepositoryImpl) FindEnriched(ctx context.Context, id string) (*notification.Event, error) {
	var row enrichedRow
	err := r.db.WithContext(ctx).
		Table("notifications").
		Select(`notifications.sid, notifications.recipient_sid, notifications.actor_sid,
			notifications.kind, notifications.topic_sid, notifications.post_sid,
			notifications.content_preview, notifications.read_status,
			notifications.details, notifications.created_at,
			users.sid AS actor_user_sid, users.username AS actor_username,
			users.display_name AS actor_display_name, users.avatar_url AS actor_avatar_url,
			forum_topics.title AS topic_title, forum_topics.slug AS topic_slug,
			forum_categories.slug AS category_slug`).
		Joins("LEFT JOIN users ON users.sid = notifications.actor_sid").
		Joins("LEFT JOIN forum_topics ON forum_topics.sid = notifications.topic_sid").
		Joins("LEFT JOIN forum_categories ON forum_categories.sid = forum_topics.category_sid").
		Where("notifications.sid = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, appErrors.NewInternalError("failed to fetch notification", err.Error())
	}

	ev := &notification.Event{
		ID:             row.SID,
		RecipientID:    row.RecipientSID,
		ActorID:        row.ActorSID,
		Kind:           notification.Kind(row.Kind),
		TopicID:        row.TopicSID,
		PostID:         row.PostSID,
		ContentPreview: row.ContentPreview,
		Read:           row.ReadStatus == "read",
		CreatedAt:      row.CreatedAt,
	}

	if len(row.Details) > 0 {
		var d notification.Details
		if jsonErr := json.Unmarshal(row.Details, &d); jsonErr == nil {
			ev.Details = &d
		}
	}

	if row.ActorUserSID != nil {
		ev.Actor = &forum.Profile{
			ID:          *row.ActorUserSID,
			DisplayName: row.ActorDisplayName,
			Username:    row.ActorUsername,
			AvatarURL:   row.ActorAvatarURL,
		}
	}

	// Fold joined topic context into the details so downstream
	// enrichment can use it verbatim instead of issuing extra lookups.
	if row.TopicTitle != nil && row.TopicSlug != nil {
		if ev.Details == nil {
			ev.Details = &notification.Details{}
		}
		if ev.Details.TopicTitle == nil {
			ev.Details.TopicTitle = row.TopicTitle
		}
		if ev.Details.TopicSlug == nil {
			ev.Details.TopicSlug = row.TopicSlug
		}
		if ev.Details.CategorySlug == nil {
			ev.Details.CategorySlug = row.CategorySlug
		}
	}

	return ev, nil
}

func (r *NotificationRepositoryImpl) MarkAsRead(ctx context.Context, recipientID, id string) error {
	result := r.db.WithContext(ctx).
		Model(&models.NotificationModel{}).
		Where("sid = ? AND recipient_sid = ?", id, recipientID).
		Update("read_status", "read")
	if result.Error != nil {
		return appErrors.NewInternalError("failed to mark notification as read", result.Error.Error())
	}

	// MySQL reports zero affected rows for a no-op update, so a zero
	// here can mean either "already read" or "no such row". Only the
	// latter is an error.
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&models.NotificationModel{}).
			Where("sid = ? AND recipient_sid = ?", id, recipientID).
			Count(&count).Error; err != nil {
			return appErrors.NewInternalError("failed to verify notification", err.Error())
		}
		if count == 0 {
			return appErrors.NewNotFoundError("notification not found")
		}
	}

	return nil
}

func (r *NotificationRepositoryImpl) MarkAllAsRead(ctx context.Context, recipientID string) error {
	if err := r.db.WithContext(ctx).
		Model(&models.NotificationModel{}).
		Where("recipient_sid = ? AND read_status = ?", recipientID, "unread").
		Update("read_status", "read").Error; err != nil {
		return appErrors.NewInternalError("failed to mark notifications as read", err.Error())
	}
	return nil
}

func (r *NotificationRepositoryImpl) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.NotificationModel{}).
		Where("recipient_sid = ? AND read_status = ?", recipientID, "unread").
		Count(&count).Error; err != nil {
		return 0, appErrors.NewInternalError("failed to count unread notifications", err.Error())
	}
	return count, nil
}
