// Package cli holds the newsdesk command tree.
package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"newsdesk-service/internal/platform/config"
	"newsdesk-service/internal/platform/logger"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const serviceName = "newsdesk-service"

// state is filled by the root command before any subcommand runs.
type state struct {
	cfgFile string
	cfg     *config.Config
	log     zerolog.Logger
}

func NewRootCommand() *cobra.Command {
	st := &state{}

	root := &cobra.Command{
		Use:   "newsdesk",
		Short: "News audience and topic performance service",
		Long: `newsdesk serves topic performance reports computed from broadcast
segments and per-channel audience readings.

Example usage:
  newsdesk migrate                       # create tables
  newsdesk load segments segments.jsonl  # replace all segments and topics
  newsdesk load audience audience.json   # replace all audience readings
  newsdesk serve                         # start the HTTP API`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.init()
		},
	}

	root.PersistentFlags().StringVar(&st.cfgFile, "config", "", "config file (yaml, json or toml)")

	root.AddCommand(
		newServeCommand(st),
		newMigrateCommand(st),
		newLoadCommand(st),
	)
	return root
}

// Execute runs the command tree until it finishes or SIGINT/SIGTERM arrives.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return NewRootCommand().ExecuteContext(ctx)
}

func (st *state) init() error {
	cfg, err := config.Load(st.cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	st.cfg = cfg
	st.log = logger.New(cfg.Log.Level, serviceName)

	st.log.Debug().
		Str("config_file", st.cfgFile).
		Strs("channels", cfg.Channels).
		Bool("cache", cfg.Redis.URL != "").
		Msg("configuration loaded")
	return nil
}
