package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aircast/internal/infrastructure/auth"
	"aircast/internal/interfaces/http/handlers"
	"aircast/internal/interfaces/http/middleware"
	"aircast/internal/shared/config"
	"aircast/internal/shared/logger"
)

// NewRouter wires the notification API routes.
func NewRouter(
	serverCfg *config.ServerConfig,
	jwtService *auth.JWTService,
	notificationHandler *handlers.NotificationHandler,
	streamHandler *handlers.StreamHandler,
	log logger.Interface,
) *gin.Engine {
	if serverCfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS(serverCfg.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	api.Use(middleware.Auth(jwtService))
	{
		notifications := api.Group("/notifications")
		{
			notifications.GET("", notificationHandler.List)
			notifications.GET("/unread-count", notificationHandler.UnreadCount)
			notifications.GET("/stream", streamHandler.Stream)
			notifications.PUT("/read-all", notificationHandler.MarkAllRead)
			notifications.PUT("/:id/read", notificationHandler.MarkRead)
		}
	}

	return router
}
