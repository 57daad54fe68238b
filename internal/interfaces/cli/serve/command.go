package serve

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	app "aircast/internal/application/notification"
	"aircast/internal/application/notification/usecases"
	"aircast/internal/infrastructure/auth"
	"aircast/internal/infrastructure/config"
	"aircast/internal/infrastructure/database"
	"aircast/internal/infrastructure/feed"
	"aircast/internal/infrastructure/redis"
	"aircast/internal/infrastructure/repository"
	httpInterface "aircast/internal/interfaces/http"
	"aircast/internal/interfaces/http/handlers"
	"aircast/internal/shared/logger"
	"aircast/internal/shared/services/preview"
)

// NewCommand returns the serve command which runs the notification API
// server.
func NewCommand() *cobra.Command {
	var env string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the notification API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(env)
		},
	}

	cmd.Flags().StringVar(&env, "env", "development", "environment to load configuration for")
	return cmd
}

func run(env string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return err
	}
	defer func() {
		if closeErr := database.Close(); closeErr != nil {
			log.Warnw("failed to close database", "error", closeErr)
		}
	}()

	if err := redis.Init(&cfg.Redis); err != nil {
		return err
	}
	defer func() {
		if closeErr := redis.Close(); closeErr != nil {
			log.Warnw("failed to close redis", "error", closeErr)
		}
	}()

	db := database.Get()
	notificationRepo := repository.NewNotificationRepository(db)
	forumLookups := repository.NewForumLookupRepository(db)

	enricher := app.NewEnricher(forumLookups, forumLookups, log.Named("enricher"))
	notificationFeed := feed.NewRedisFeed(redis.Get(), log.Named("feed"))
	previewService := preview.NewService()

	listUseCase := usecases.NewListNotificationsUseCase(
		notificationRepo,
		enricher,
		previewService,
		cfg.Notifications.PreviewMaxRunes,
		log,
	)
	markReadUseCase := usecases.NewMarkNotificationAsReadUseCase(notificationRepo, log)
	markAllReadUseCase := usecases.NewMarkAllAsReadUseCase(notificationRepo, log)
	unreadCountUseCase := usecases.NewGetUnreadCountUseCase(notificationRepo, log)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret)

	notificationHandler := handlers.NewNotificationHandler(
		listUseCase,
		markReadUseCase,
		markAllReadUseCase,
		unreadCountUseCase,
		cfg.Notifications.InitialPageSize,
		log.Named("http"),
	)
	streamHandler := handlers.NewStreamHandler(
		notificationRepo,
		enricher,
		notificationFeed,
		cfg.Notifications.InitialPageSize,
		log.Named("stream"),
	)

	router := httpInterface.NewRouter(&cfg.Server, jwtService, notificationHandler, streamHandler, log)

	server := &http.Server{
		Addr:              cfg.Server.GetAddr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("server listening", "addr", cfg.Server.GetAddr(), "env", env)
		if serveErr := server.ListenAndServe(); serveErr != nil && serveErr != http.ErrServerClosed {
			errCh <- serveErr
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		log.Infow("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("server stopped")
	return nil
}
