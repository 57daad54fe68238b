package usecases

import (
	"context"

	domain "aircast/internal/domain/notification"
	"aircast/internal/shared/logger"
)

type MarkAllAsReadUseCase struct {
	repo   domain.Repository
	logger logger.Interface
}

func NewMarkAllAsReadUseCase(repo domain.Repository, log logger.Interface) *MarkAllAsReadUseCase {
	return &MarkAllAsReadUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *MarkAllAsReadUseCase) Execute(ctx context.Context, recipientID string) error {
	uc.logger.Debugw("executing mark all notifications as read use case",
		"recipient_id", recipientID,
	)

	if err := uc.repo.MarkAllAsRead(ctx, recipientID); err != nil {
		uc.logger.Errorw("failed to mark all notifications as read",
			"recipient_id", recipientID,
			"error", err,
		)
		return err
	}

	return nil
}
