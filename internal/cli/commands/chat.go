package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hunterjsb/xn-mc/pkg/logs"
	"github.com/hunterjsb/xn-mc/pkg/report"
)

// Default --window values, in minutes. Player-anchored windows look further
// back than the symmetric all-chat window.
const (
	defaultPlayerWindow  = 30
	defaultAllChatWindow = 10
)

// ChatOptions holds command-line options for the chat command.
type ChatOptions struct {
	CommonOptions

	Player string
	Around string
	Window int
}

// NewChatCommand creates the chat command.
func NewChatCommand() *cobra.Command {
	opts := &ChatOptions{}

	cmd := &cobra.Command{
		Use:   "chat [date]",
		Short: "Show a day's chat transcript",
		Long: `Show chat for a date (YYYY-MM-DD, default today EST).

With --player, show chat around that player's death, around --around
(HH:MM:SS UTC) when they did not die, or, with neither, their own messages.
The player window reaches --window minutes back (default 30) and 5 minutes
forward.

With --around alone, show all chat within --window minutes (default 10)
either side of the anchor. Without --player or --around, show the full day.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd, args, opts)
		},
	}
	addCommonFlags(cmd, &opts.CommonOptions)
	cmd.Flags().StringVarP(&opts.Player, "player", "p", "", "Anchor player for windowed chat")
	cmd.Flags().StringVar(&opts.Around, "around", "", "Anchor time HH:MM:SS in UTC")
	cmd.Flags().IntVar(&opts.Window, "window", 0, "Window minutes (default 30 with --player, 10 without)")

	return cmd
}

func runChat(cmd *cobra.Command, args []string, opts *ChatOptions) error {
	cfg, bots, log, err := setup(&opts.CommonOptions)
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

	out := cmd.OutOrStdout()

	if opts.Player != "" {
		return runPlayerChat(out, records, date, bots, opts)
	}

	messages := logs.ExtractAllChat(records, bots)

	if opts.Around != "" {
		anchor, err := parseAnchor(date, opts.Around)
		if err != nil {
			return err
		}
		window := time.Duration(windowOr(opts.Window, defaultAllChatWindow)) * time.Minute
		start, end := anchor.Add(-window), anchor.Add(window)
		var windowed []logs.ChatMessage
		for _, c := range messages {
			if c.TimeUTC.Before(start) || c.TimeUTC.After(end) {
				continue
			}
			windowed = append(windowed, c)
		}
		report.WriteChat(out, windowed)
		return nil
	}

	if len(messages) == 0 {
		fmt.Fprintf(out, "No chat on %s\n", date)
		return nil
	}
	report.WriteChat(out, messages)
	return nil
}

// runPlayerChat anchors on the player's death, then --around, then falls
// back to the player's own messages.
func runPlayerChat(out io.Writer, records []logs.Record, date string, bots logs.BotSet, opts *ChatOptions) error {
	var anchor time.Time
	found := false
	for _, d := range logs.ExtractDeaths(records, bots) {
		if d.Player == opts.Player {
			anchor = d.TimeUTC
			found = true
			fmt.Fprintf(out, "Chat around %s's death at %s:\n",
				d.Player, logs.FormatESTFull(d.TimeEST))
			break
		}
	}

	if !found && opts.Around != "" {
		var err error
		if anchor, err = parseAnchor(date, opts.Around); err != nil {
			return err
		}
		found = true
	}

	if !found {
		var own []logs.ChatMessage
		for _, c := range logs.ExtractAllChat(records, bots) {
			if strings.EqualFold(c.Speaker, opts.Player) {
				own = append(own, c)
			}
		}
		if len(own) == 0 {
			fmt.Fprintf(out, "No chat from %s on %s\n", opts.Player, date)
			return nil
		}
		report.WriteChat(out, own)
		return nil
	}

	before := time.Duration(windowOr(opts.Window, defaultPlayerWindow)) * time.Minute
	messages := logs.ExtractChatContext(records, opts.Player, anchor, bots,
		logs.WithWindow(before, logs.DefaultWindowAfter))
	report.WriteChat(out, messages)
	return nil
}

func windowOr(minutes, fallback int) int {
	if minutes > 0 {
		return minutes
	}
	return fallback
}

// parseAnchor combines the date with a UTC wall-clock time.
func parseAnchor(date, clock string) (time.Time, error) {
	t, err := time.Parse("2006-01-02 15:04:05", date+" "+clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --around %q: expected HH:MM:SS", clock)
	}
	return t, nil
}
