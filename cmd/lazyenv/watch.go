package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/satyamsoni2211/lazy-env-configurator/pkg/container"
	"github.com/satyamsoni2211/lazy-env-configurator/pkg/schema"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the .env overlay and revalidate on change",
	Long: `Watch resolves every declared field, then blocks watching the schema's
.env overlay file. Each change reloads the overlay, drops cached values,
and revalidates on the next access. Stop with SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := schema.LoadFile(schemaFile)
		if err != nil {
			return err
		}

		c, err := container.New(s, container.WithName(schemaFile))
		if err != nil {
			return err
		}
		if _, err := c.ResolveAll(); err != nil {
			return err
		}
		fmt.Printf("watching %s (%d fields)\n", s.DotEnvPath, len(c.FieldNames()))

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return c.Watch(ctx)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
