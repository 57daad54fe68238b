package usecases

import (
	"context"

	"aircast/internal/application/notification/dto"
	domain "aircast/internal/domain/notification"
	"aircast/internal/shared/logger"
)

type GetUnreadCountUseCase struct {
	repo   domain.Repository
	logger logger.Interface
}

func NewGetUnreadCountUseCase(repo domain.Repository, log logger.Interface) *GetUnreadCountUseCase {
	return &GetUnreadCountUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *GetUnreadCountUseCase) Execute(ctx context.Context, recipientID string) (*dto.UnreadCountResponse, error) {
	count, err := uc.repo.CountUnread(ctx, recipientID)
	if err != nil {
		uc.logger.Errorw("failed to count unread notifications",
			"recipient_id", recipientID,
			"error", err,
		)
		return nil, err
	}

	return &dto.UnreadCountResponse{Count: count}, nil
}
