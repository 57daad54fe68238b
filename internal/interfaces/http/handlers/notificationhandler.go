package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"aircast/internal/application/notification/dto"
	"aircast/internal/application/notification/usecases"
	"aircast/internal/interfaces/http/middleware"
	"aircast/internal/shared/logger"
	"aircast/internal/shared/utils"
)

const maxPageSize = 100

// NotificationHandler serves the recipient-scoped notification API.
type NotificationHandler struct {
	listUseCase        *usecases.ListNotificationsUseCase
	markReadUseCase    *usecases.MarkNotificationAsReadUseCase
	markAllReadUseCase *usecases.MarkAllAsReadUseCase
	unreadCountUseCase *usecases.GetUnreadCountUseCase
	defaultPageSize    int
	logger             logger.Interface
}

func NewNotificationHandler(
	listUseCase *usecases.ListNotificationsUseCase,
	markReadUseCase *usecases.MarkNotificationAsReadUseCase,
	markAllReadUseCase *usecases.MarkAllAsReadUseCase,
	unreadCountUseCase *usecases.GetUnreadCountUseCase,
	defaultPageSize int,
	log logger.Interface,
) *NotificationHandler {
	return &NotificationHandler{
		listUseCase:        listUseCase,
		markReadUseCase:    markReadUseCase,
		markAllReadUseCase: markAllReadUseCase,
		unreadCountUseCase: unreadCountUseCase,
		defaultPageSize:    defaultPageSize,
		logger:             log,
	}
}

// List handles GET /api/v1/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	recipientID := middleware.GetUserSID(c)

	limit := h.defaultPageSize
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	offset := 0
	if raw := c.Query("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "offset must be a non-negative integer")
			return
		}
		offset = parsed
	}

	req := dto.ListNotificationsRequest{
		RecipientID: recipientID,
		Limit:       limit,
		Offset:      offset,
		UnreadOnly:  c.Query("unread_only") == "true",
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp, err := h.listUseCase.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notifications retrieved successfully", resp)
}

// UnreadCount handles GET /api/v1/notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	recipientID := middleware.GetUserSID(c)

	resp, err := h.unreadCountUseCase.Execute(c.Request.Context(), recipientID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Unread count retrieved successfully", resp)
}

// MarkRead handles PUT /api/v1/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	recipientID := middleware.GetUserSID(c)

	id := c.Param("id")
	if err := utils.ValidateID(id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.markReadUseCase.Execute(c.Request.Context(), recipientID, id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", nil)
}

// MarkAllRead handles PUT /api/v1/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	recipientID := middleware.GetUserSID(c)

	if err := h.markAllReadUseCase.Execute(c.Request.Context(), recipientID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "All notifications marked as read", nil)
}
