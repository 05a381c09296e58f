// Package commands implements the CLI subcommands.
package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hunterjsb/xn-mc/internal/logging"
	"github.com/hunterjsb/xn-mc/pkg/config"
	"github.com/hunterjsb/xn-mc/pkg/logs"
	"github.com/hunterjsb/xn-mc/pkg/players"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// CommonOptions holds the flags shared by every subcommand.
type CommonOptions struct {
	ConfigPath string
	Verbose    bool
}

func addCommonFlags(cmd *cobra.Command, opts *CommonOptions) {
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Config file (YAML); defaults to environment-only config")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable debug logging")
}

// setup loads configuration, the bot set, and the logger. Commands call it
// first thing in their RunE.
func setup(opts *CommonOptions) (*config.Config, logs.BotSet, zerolog.Logger, error) {
	log := logging.New(opts.Verbose)

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, nil, log, fmt.Errorf("loading config: %w", err)
	}

	bots := logs.BotSet{}
	if cfg.BotsFile != "" {
		bots, err = players.LoadBotNames(cfg.BotsFile)
		if err != nil {
			log.Warn().Err(err).Str("path", cfg.BotsFile).Msg("bot list unavailable, filtering disabled")
			bots = logs.BotSet{}
		}
	}

	log.Debug().Str("server_dir", cfg.ServerDir).Int("bots", len(bots)).Msg("configured")
	return cfg, bots, log, nil
}

// loadDay resolves and parses one day's records. Dying with no log files is
// a hard error; the caller's day simply has no data.
func loadDay(ctx context.Context, cfg *config.Config, date string) ([]logs.Record, error) {
	files, err := logs.ResolveFiles(cfg.ServerDir, date)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no log files found for %s", date)
	}

	src, err := logs.NewFileSource(files, date)
	if err != nil {
		return nil, err
	}
	records, err := logs.ReadAll(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("reading logs for %s: %w", date, err)
	}
	return records, nil
}

// formatAdvancements maps raw advancement IDs onto their display names.
func formatAdvancements(ids []string) []string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = players.FormatAdvancement(id)
	}
	return names
}

// resolveDate applies the default when no date argument was given: today
// in EST, matching how the server community names its days.
func resolveDate(args []string) (string, error) {
	if len(args) == 0 {
		return time.Now().In(logs.EST).Format("2006-01-02"), nil
	}
	if _, err := time.Parse("2006-01-02", args[0]); err != nil {
		return "", fmt.Errorf("invalid date %q: expected YYYY-MM-DD", args[0])
	}
	return args[0], nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
