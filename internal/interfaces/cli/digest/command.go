package digest

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	app "aircast/internal/application/notification"
	"aircast/internal/infrastructure/config"
	"aircast/internal/infrastructure/database"
	"aircast/internal/infrastructure/email"
	"aircast/internal/infrastructure/repository"
	"aircast/internal/shared/logger"
)

// NewCommand returns the digest command, which mails a recipient their
// unread notifications as a single digest. Intended to run from cron.
func NewCommand() *cobra.Command {
	var (
		env   string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "digest <user-sid> <email-address>",
		Short: "Send a digest email of a recipient's unread notifications",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(env, args[0], args[1], limit)
		},
	}

	cmd.Flags().StringVar(&env, "env", "development", "environment to load configuration for")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum notifications per digest")
	return cmd
}

func run(env, userSID, address string, limit int) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if !cfg.Email.Enabled {
		return fmt.Errorf("email delivery is disabled in configuration")
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return err
	}
	defer database.Close()

	db := database.Get()
	repo := repository.NewNotificationRepository(db)
	lookups := repository.NewForumLookupRepository(db)
	enricher := app.NewEnricher(lookups, lookups, log)
	sink := email.NewDigestSink(&cfg.Email, address, log)

	ctx := context.Background()
	events, _, err := repo.ListByRecipient(ctx, userSID, limit, 0)
	if err != nil {
		return err
	}

	for _, ev := range events {
		if ev.Read {
			continue
		}
		ectx := enricher.Enrich(ctx, ev)
		sink.Deliver(*app.MapDisplay(ev, ectx))
	}

	if sink.Pending() == 0 {
		log.Infow("no unread notifications, skipping digest", "recipient_id", userSID)
		return nil
	}

	return sink.Flush()
}
