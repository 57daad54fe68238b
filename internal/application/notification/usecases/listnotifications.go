package usecases

import (
	"context"

	app "aircast/internal/application/notification"
	"aircast/internal/application/notification/dto"
	domain "aircast/internal/domain/notification"
	"aircast/internal/shared/logger"
)

type ListNotificationsUseCase struct {
	repo            domain.Repository
	enricher        *app.Enricher
	previewRenderer dto.PreviewRenderer
	previewMaxRunes int
	logger          logger.Interface
}

func NewListNotificationsUseCase(
	repo domain.Repository,
	enricher *app.Enricher,
	previewRenderer dto.PreviewRenderer,
	previewMaxRunes int,
	log logger.Interface,
) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		repo:            repo,
		enricher:        enricher,
		previewRenderer: previewRenderer,
		previewMaxRunes: previewMaxRunes,
		logger:          log,
	}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, req dto.ListNotificationsRequest) (*dto.ListResponse, error) {
	uc.logger.Debugw("executing list notifications use case",
		"recipient_id", req.RecipientID,
		"limit", req.Limit,
		"offset", req.Offset,
	)

	events, total, err := uc.repo.ListByRecipient(ctx, req.RecipientID, req.Limit, req.Offset)
	if err != nil {
		uc.logger.Errorw("failed to list notifications",
			"recipient_id", req.RecipientID,
			"error", err,
		)
		return nil, err
	}

	items := make([]*domain.Display, 0, len(events))
	for _, ev := range events {
		ectx := uc.enricher.Enrich(ctx, ev)
		display := app.MapDisplay(ev, ectx)
		if req.UnreadOnly && display.Read {
			continue
		}
		items = append(items, display)
	}

	dto.RenderPreviews(items, uc.previewRenderer, uc.previewMaxRunes)

	return &dto.ListResponse{
		Items:  items,
		Total:  total,
		Limit:  req.Limit,
		Offset: req.Offset,
	}, nil
}
