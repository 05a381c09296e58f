// Package report renders engine output into the text documents the CLI
// prints: the obituary briefing, the deaths table, chat transcripts, and
// player profiles.
package report

import (
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/hunterjsb/xn-mc/pkg/logs"
)

// documentedRE finds player links ([[Player:Name|Display]]) in an existing
// obituary page.
var documentedRE = regexp.MustCompile(`\[\[Player:[^|]*\|([^\]]+)\]\]`)

// DateDisplay formats YYYY-MM-DD as "February 15, 2026".
func DateDisplay(date string) (string, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", fmt.Errorf("parsing date %q: %w", date, err)
	}
	return t.Format("January 2, 2006"), nil
}

// ObituaryTitle returns the wiki page title for a date's obituaries.
func ObituaryTitle(date string) (string, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", fmt.Errorf("parsing date %q: %w", date, err)
	}
	return "Event:Obituaries " + t.Format("January 2"), nil
}

// AlreadyDocumented scrapes the players already linked from an existing
// obituary page, sorted.
func AlreadyDocumented(pageText string) []string {
	seen := make(map[string]struct{})
	for _, m := range documentedRE.FindAllStringSubmatch(pageText, -1) {
		seen[m[1]] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ActivePlayers returns the sorted distinct speakers of a day's chat.
func ActivePlayers(chat []logs.ChatMessage) []string {
	seen := make(map[string]struct{})
	for _, c := range chat {
		seen[c.Speaker] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
