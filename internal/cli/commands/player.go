package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hunterjsb/xn-mc/pkg/players"
	"github.com/hunterjsb/xn-mc/pkg/report"
	"github.com/hunterjsb/xn-mc/pkg/wiki"
)

// NewPlayerCommand creates the player command.
func NewPlayerCommand() *cobra.Command {
	opts := &CommonOptions{}

	cmd := &cobra.Command{
		Use:   "player <name>",
		Short: "Show a player's profile",
		Long: `Show one player's standing, ban record, lifetime stats, and
advancements, assembled from the server's usercache, ban list, and world
data. The name is case-insensitive.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlayer(cmd, args, opts)
		},
	}
	addCommonFlags(cmd, opts)
	return cmd
}

func runPlayer(cmd *cobra.Command, args []string, opts *CommonOptions) error {
	cfg, bots, log, err := setup(opts)
	if err != nil {
		return err
	}
	name := args[0]
	ctx := commandContext(cmd)

	uuidToName, err := players.LoadUserCache(cfg.ServerDir)
	if err != nil {
		return fmt.Errorf("loading usercache: %w", err)
	}

	profile := &report.PlayerProfile{Name: name, Status: report.StatusAlive}

	// Canonicalize casing from the usercache when the player is known.
	if uuid, ok := players.NameToUUID(uuidToName)[strings.ToLower(name)]; ok {
		profile.UUID = uuid
		profile.Name = uuidToName[uuid]
	}

	deathbanned, hackbanned, err := players.LoadBans(cfg.ServerDir, bots)
	if err != nil {
		log.Warn().Err(err).Msg("ban list unavailable")
	} else {
		if _, ok := deathbanned[profile.Name]; ok {
			profile.Status = report.StatusDeathBan
		}
		if _, ok := hackbanned[profile.Name]; ok {
			profile.Status = report.StatusHackBanned
		}
	}

	if details, err := players.LoadBanDetails(cfg.ServerDir); err == nil {
		if ban, ok := details[profile.Name]; ok {
			profile.Ban = &ban
		}
	}

	if cfg.Wiki.BaseURL != "" {
		client := wiki.New(cfg.Wiki.BaseURL, cfg.Wiki.Token)
		exists, err := client.PageExists(ctx, "Player:"+profile.Name)
		if err != nil {
			log.Warn().Err(err).Msg("wiki check failed")
		}
		profile.WikiPageExists = exists
	}

	if profile.UUID != "" {
		profile.Stats = players.Summarize(players.PlayerStats(cfg.ServerDir, profile.UUID))
		profile.Advancements = formatAdvancements(players.PlayerAdvancements(cfg.ServerDir, profile.UUID))
	}

	report.WritePlayerProfile(cmd.OutOrStdout(), profile)
	return nil
}
