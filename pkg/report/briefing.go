package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/hunterjsb/xn-mc/pkg/logs"
	"github.com/hunterjsb/xn-mc/pkg/players"
)

// Briefing is the assembled input for one day's obituary briefing.
type Briefing struct {
	DateDisplay       string
	ObituaryTitle     string
	PageExists        bool
	AlreadyDocumented []string

	Deaths  []DeathDetail
	AllChat []logs.ChatMessage
}

// DeathDetail is one death with its surrounding player context.
type DeathDetail struct {
	Death logs.DeathEvent

	// UUID is empty when the player is not in the usercache.
	UUID string

	// Ban is nil when the player has no ban record.
	Ban *players.Ban

	// WikiPage is the player's page title, empty when none exists.
	WikiPage string

	// Stats is nil when no stats file was found.
	Stats *players.StatsSummary

	// FileAdvancements are display names from the advancement file.
	FileAdvancements []string

	// LogAdvancements are advancements observed in the day's logs.
	LogAdvancements []logs.Advancement

	Sessions []logs.Session
	Chat     []logs.ChatMessage
}

// WriteBriefing renders the full pre-processed briefing document.
func WriteBriefing(w io.Writer, b *Briefing) {
	status := "NEW"
	if b.PageExists {
		status = "EXISTS"
	}

	fmt.Fprintf(w, "# OBITUARY BRIEFING: %s\n", b.DateDisplay)
	fmt.Fprintf(w, "# Deaths: %d\n", len(b.Deaths))
	fmt.Fprintf(w, "# Wiki page: %s (%s)\n", b.ObituaryTitle, status)
	if len(b.AlreadyDocumented) > 0 {
		fmt.Fprintf(w, "# Already documented: %s\n", strings.Join(b.AlreadyDocumented, ", "))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "## DEATHS")
	for i, d := range b.Deaths {
		fmt.Fprintf(w, "%d. %s — **%s** — %s\n",
			i+1, logs.FormatEST(d.Death.TimeEST), d.Death.Player, d.Death.Cause)
	}
	fmt.Fprintln(w)

	for i, d := range b.Deaths {
		writeDeathDetail(w, i+1, &d)
	}

	fmt.Fprintln(w, "## CONTEXT")
	fmt.Fprintf(w, "Total player chat messages: %d\n", len(b.AllChat))
	fmt.Fprintf(w, "Active players: %s\n", strings.Join(ActivePlayers(b.AllChat), ", "))
}

func writeDeathDetail(w io.Writer, n int, d *DeathDetail) {
	fmt.Fprintf(w, "## DEATH %d: %s\n", n, d.Death.Player)
	fmt.Fprintf(w, "Time: %s EST (%s UTC)\n",
		logs.FormatEST(d.Death.TimeEST), d.Death.TimeUTC.Format("15:04:05"))
	fmt.Fprintf(w, "Cause: %s\n", d.Death.Cause)

	if d.Ban != nil {
		created := d.Ban.Created
		if created == "" {
			created = "unknown"
		}
		fmt.Fprintf(w, "Banned: %s\n", created)
	} else {
		fmt.Fprintln(w, "Banned: not found in ban list")
	}

	if d.WikiPage != "" {
		fmt.Fprintf(w, "Wiki page: %s\n", d.WikiPage)
	} else {
		fmt.Fprintln(w, "Wiki page: none")
	}

	if d.UUID == "" {
		fmt.Fprintln(w, "Stats: UUID not found")
	} else {
		if d.Stats != nil {
			writeStatsSummary(w, d.Stats)
		}
		if len(d.FileAdvancements) > 0 {
			fmt.Fprintf(w, "Advancements (%d): %s\n",
				len(d.FileAdvancements), strings.Join(d.FileAdvancements, ", "))
		}
	}

	if len(d.LogAdvancements) > 0 {
		fmt.Fprintln(w, "Advancements (from logs):")
		for _, a := range d.LogAdvancements {
			fmt.Fprintf(w, "  %s: [%s]\n", logs.FormatEST(a.TimeEST), a.Name)
		}
	}

	if len(d.Sessions) > 0 {
		fmt.Fprintf(w, "Sessions (%d):\n", len(d.Sessions))
		for _, s := range d.Sessions {
			tag := ""
			if s.EndedByDisconnect {
				tag = " [Game Over]"
			}
			// Session bounds stay in UTC; everything else in the
			// document reads EST.
			fmt.Fprintf(w, "  %s-%s (%s)%s\n",
				s.Join.Format("15:04:05"), s.Leave.Format("15:04:05"),
				logs.FormatDuration(s.DurationSec), tag)
		}
	}

	if len(d.Chat) > 0 {
		fmt.Fprintf(w, "Chat (%d messages):\n", len(d.Chat))
		for _, c := range d.Chat {
			fmt.Fprintf(w, "  %s\n", ChatLine(c))
		}
	}

	fmt.Fprintln(w)
}

func writeStatsSummary(w io.Writer, s *players.StatsSummary) {
	fmt.Fprintf(w, "Playtime: %s\n", s.PlayDisplay)
	fmt.Fprintf(w, "Mob kills: %d, Deaths: %d, Diamonds: %d\n",
		s.MobKills, s.Deaths, s.Diamonds)
	fmt.Fprintf(w, "Blocks mined: %d, Items crafted: %d, Villager trades: %d\n",
		s.BlocksMined, s.ItemsCrafted, s.VillagerTrades)
	if len(s.TopKilled) > 0 {
		fmt.Fprintf(w, "Top kills: %s\n", strings.Join(s.TopKilled, ", "))
	}
	if len(s.TopKilledBy) > 0 {
		fmt.Fprintf(w, "Killed by: %s\n", strings.Join(s.TopKilledBy, ", "))
	}
}
