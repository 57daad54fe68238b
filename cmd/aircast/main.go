package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aircast/internal/interfaces/cli/digest"
	"aircast/internal/interfaces/cli/migrate"
	"aircast/internal/interfaces/cli/serve"
	"aircast/internal/interfaces/cli/token"
)

func main() {
	root := &cobra.Command{
		Use:   "aircast",
		Short: "Notification correlation and delivery service",
	}

	root.AddCommand(
		serve.NewCommand(),
		migrate.NewCommand(),
		token.NewCommand(),
		digest.NewCommand(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
