package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hunterjsb/xn-mc/pkg/logs"
	"github.com/hunterjsb/xn-mc/pkg/report"
)

// NewDeathsCommand creates the deaths command.
func NewDeathsCommand() *cobra.Command {
	opts := &CommonOptions{}

	cmd := &cobra.Command{
		Use:   "deaths [date]",
		Short: "List a day's player deaths",
		Long: `List every player death for a date (YYYY-MM-DD, default today EST)
as a compact table. Bot deaths are excluded and death locations are never
shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeaths(cmd, args, opts)
		},
	}
	addCommonFlags(cmd, opts)
	return cmd
}

func runDeaths(cmd *cobra.Command, args []string, opts *CommonOptions) error {
	cfg, bots, log, err := setup(opts)
	if err != nil {
		return err
	}

	date, err := resolveDate(args)
	if err != nil {
		return err
	}

	records, err := loadDay(commandContext(cmd), cfg, date)
	if err != nil {
		return err
	}
	log.Debug().Int("records", len(records)).Str("date", date).Msg("parsed logs")

	deaths := logs.ExtractDeaths(records, bots)
	if len(deaths) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No deaths on %s\n", date)
		return nil
	}

	report.WriteDeathsTable(cmd.OutOrStdout(), deaths)
	return nil
}
