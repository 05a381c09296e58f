package report

import (
	"fmt"
	"io"

	"github.com/hunterjsb/xn-mc/pkg/logs"
)

// ChatLine renders one chat message, marking the anchor player's own
// messages with a trailing arrow.
func ChatLine(c logs.ChatMessage) string {
	marker := ""
	if c.IsTarget {
		marker = " <<<"
	}
	return fmt.Sprintf("[%s] <%s> %s%s",
		logs.FormatESTFull(c.TimeEST), c.Speaker, c.Message, marker)
}

// WriteChat renders a chat transcript, one message per line.
func WriteChat(w io.Writer, messages []logs.ChatMessage) {
	for _, c := range messages {
		fmt.Fprintln(w, ChatLine(c))
	}
}

// WriteDeathsTable renders the compact death table.
func WriteDeathsTable(w io.Writer, deaths []logs.DeathEvent) {
	fmt.Fprintf(w, "%-4s %-14s %-21s %s\n", "#", "Time EST", "Player", "Cause")
	for i, d := range deaths {
		fmt.Fprintf(w, "%-4d %-14s %-21s %s\n",
			i+1, logs.FormatEST(d.TimeEST), d.Player, d.Cause)
	}
}
