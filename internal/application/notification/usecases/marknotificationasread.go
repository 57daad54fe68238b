package usecases

import (
	"context"

	domain "aircast/internal/domain/notification"
	"aircast/internal/shared/logger"
)

type MarkNotificationAsReadUseCase struct {
	repo   domain.Repository
	logger logger.Interface
}

func NewMarkNotificationAsReadUseCase(repo domain.Repository, log logger.Interface) *MarkNotificationAsReadUseCase {
	return &MarkNotificationAsReadUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *MarkNotificationAsReadUseCase) Execute(ctx context.Context, recipientID, id string) error {
	uc.logger.Debugw("executing mark notification as read use case",
		"id", id,
		"recipient_id", recipientID,
	)

	if err := uc.repo.MarkAsRead(ctx, recipientID, id); err != nil {
		uc.logger.Errorw("failed to mark notification as read",
			"id", id,
			"recipient_id", recipientID,
			"error", err,
		)
		return err
	}

	return nil
}
