package handlers

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"

	app "aircast/internal/application/notification"
	domain "aircast/internal/domain/notification"
	"aircast/internal/interfaces/http/middleware"
	"aircast/internal/shared/logger"
	"aircast/internal/shared/utils"
)

const (
	streamBufferSize  = 32
	heartbeatInterval = 30 * time.Second
)

// StreamHandler serves the realtime notification stream over SSE. Each
// connection runs its own notification center session: bulk load first,
// then live events until the client disconnects.
type StreamHandler struct {
	repo     domain.Repository
	enricher *app.Enricher
	feed     app.Feed
	pageSize int
	logger   logger.Interface
}

func NewStreamHandler(
	repo domain.Repository,
	enricher *app.Enricher,
	feed app.Feed,
	pageSize int,
	log logger.Interface,
) *StreamHandler {
	return &StreamHandler{
		repo:     repo,
		enricher: enricher,
		feed:     feed,
		pageSize: pageSize,
		logger:   log,
	}
}

// Stream handles GET /api/v1/notifications/stream
func (h *StreamHandler) Stream(c *gin.Context) {
	recipientID := middleware.GetUserSID(c)

	events := make(chan domain.Display, streamBufferSize)
	sink := app.SinkFunc(func(n domain.Display) {
		select {
		case events <- n:
		default:
			h.logger.Warnw("dropping realtime notification, stream buffer full",
				"recipient_id", recipientID,
				"notification_id", n.ID,
			)
		}
	})

	center := app.NewCenter(h.repo, h.enricher, h.feed, sink, h.pageSize, h.logger)

	ctx := c.Request.Context()
	if err := center.Start(ctx, recipientID); err != nil {
		h.logger.Errorw("failed to start notification stream",
			"recipient_id", recipientID,
			"error", err,
		)
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer center.Stop()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	c.SSEvent("snapshot", center.Store().Snapshot())
	c.Writer.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case n := <-events:
			c.SSEvent("notification", n)
			return true
		case <-heartbeat.C:
			c.SSEvent("heartbeat", time.Now().UTC().Format(time.RFC3339))
			return true
		}
	})
}
