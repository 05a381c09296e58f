package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hunterjsb/xn-mc/pkg/logs"
	"github.com/hunterjsb/xn-mc/pkg/players"
	"github.com/hunterjsb/xn-mc/pkg/report"
	"github.com/hunterjsb/xn-mc/pkg/wiki"
)

// NewBriefingCommand creates the briefing command.
func NewBriefingCommand() *cobra.Command {
	opts := &CommonOptions{}

	cmd := &cobra.Command{
		Use:   "briefing [date]",
		Short: "Assemble the obituary briefing for a day",
		Long: `Assemble everything needed to write a day's obituaries: each death
with the player's ban record, lifetime stats, advancements, play sessions,
and surrounding chat, plus the day's full chat summary and the state of the
obituary wiki page.

Date defaults to today in EST.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBriefing(cmd, args, opts)
		},
	}
	addCommonFlags(cmd, opts)
	return cmd
}

func runBriefing(cmd *cobra.Command, args []string, opts *CommonOptions) error {
	cfg, bots, log, err := setup(opts)
	if err != nil {
		return err
	}

	date, err := resolveDate(args)
	if err != nil {
		return err
	}
	ctx := commandContext(cmd)

	records, err := loadDay(ctx, cfg, date)
	if err != nil {
		return err
	}
	log.Debug().Int("records", len(records)).Str("date", date).Msg("parsed logs")

	briefing := &report.Briefing{}
	if briefing.DateDisplay, err = report.DateDisplay(date); err != nil {
		return err
	}
	if briefing.ObituaryTitle, err = report.ObituaryTitle(date); err != nil {
		return err
	}

	var client *wiki.Client
	if cfg.Wiki.BaseURL != "" {
		client = wiki.New(cfg.Wiki.BaseURL, cfg.Wiki.Token)
		exists, err := client.PageExists(ctx, briefing.ObituaryTitle)
		if err != nil {
			log.Warn().Err(err).Msg("wiki check failed")
		}
		briefing.PageExists = exists
		if exists {
			text, err := client.FetchPage(ctx, briefing.ObituaryTitle)
			if err != nil {
				log.Warn().Err(err).Msg("fetching obituary page failed")
			}
			briefing.AlreadyDocumented = report.AlreadyDocumented(text)
		}
	}

	deaths := logs.ExtractDeaths(records, bots)
	sessions := logs.ExtractSessions(records, bots)
	advancements := logs.ExtractAdvancements(records, bots)
	briefing.AllChat = logs.ExtractAllChat(records, bots)

	nameToUUID := map[string]string{}
	if uuidToName, err := players.LoadUserCache(cfg.ServerDir); err == nil {
		nameToUUID = players.NameToUUID(uuidToName)
	} else {
		log.Warn().Err(err).Msg("usercache unavailable")
	}

	banDetails, err := players.LoadBanDetails(cfg.ServerDir)
	if err != nil {
		log.Warn().Err(err).Msg("ban list unavailable")
	}

	for _, death := range deaths {
		detail := report.DeathDetail{Death: death}

		detail.UUID = nameToUUID[strings.ToLower(death.Player)]
		if ban, ok := banDetails[death.Player]; ok {
			detail.Ban = &ban
		}

		if client != nil {
			title := "Player:" + death.Player
			exists, err := client.PageExists(ctx, title)
			if err != nil {
				log.Warn().Err(err).Str("title", title).Msg("wiki check failed")
			}
			if exists {
				detail.WikiPage = title
			}
		}

		if detail.UUID != "" {
			detail.Stats = players.Summarize(players.PlayerStats(cfg.ServerDir, detail.UUID))
			detail.FileAdvancements = formatAdvancements(players.PlayerAdvancements(cfg.ServerDir, detail.UUID))
		}

		detail.LogAdvancements = advancements[death.Player]
		detail.Sessions = sessions[death.Player]
		detail.Chat = logs.ExtractChatContext(records, death.Player, death.TimeUTC, bots)

		briefing.Deaths = append(briefing.Deaths, detail)
	}

	if len(deaths) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No deaths on %s\n", date)
		return nil
	}

	report.WriteBriefing(cmd.OutOrStdout(), briefing)
	return nil
}
