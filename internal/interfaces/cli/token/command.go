package token

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"aircast/internal/infrastructure/auth"
	"aircast/internal/infrastructure/config"
)

// NewCommand returns the token command, which issues an access token
// for local development against the API.
func NewCommand() *cobra.Command {
	var (
		env string
		ttl time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token <user-sid>",
		Short: "Issue a development access token for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(env)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			secret := cfg.Auth.JWT.Secret
			if secret == "" {
				fmt.Fprint(os.Stderr, "JWT secret: ")
				raw, readErr := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Fprintln(os.Stderr)
				if readErr != nil {
					return fmt.Errorf("failed to read secret: %w", readErr)
				}
				secret = string(raw)
			}

			signed, err := auth.NewJWTService(secret).Generate(args[0], ttl)
			if err != nil {
				return err
			}

			fmt.Println(signed)
			return nil
		},
	}

	cmd.Flags().StringVar(&env, "env", "development", "environment to load configuration for")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}
