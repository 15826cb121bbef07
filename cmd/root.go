package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"ticketbot/config"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the ticketbot command tree. Without a subcommand the bot runs.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ticketbot",
		Short:         "Discord support ticket bot",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			cfg := config.Get()
			ConfigureLogging(cfg)
			return Run(ctx, cfg)
		},
	}

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(panelsCmd())
	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().ExecuteContext(context.Background())
}

// ConfigureLogging applies the log level and formatter from configuration
func ConfigureLogging(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithField("level", cfg.LogLevel).Warn("Unknown log level, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.IsProduction() {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
