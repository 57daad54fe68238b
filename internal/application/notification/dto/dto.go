package dto

import (
	domain "aircast/internal/domain/notification"
)

type ListNotificationsRequest struct {
	RecipientID string `json:"recipient_id" validate:"required"`
	Limit       int    `json:"limit" validate:"gte=0,lte=100"`
	Offset      int    `json:"offset" validate:"gte=0"`
	UnreadOnly  bool   `json:"unread_only"`
}

type ListResponse struct {
	Items  []*domain.Display `json:"items"`
	Total  int64             `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
