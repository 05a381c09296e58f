package players

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
)

// PlayerStats loads one player's raw stat categories from
// world/stats/<uuid>.json. Missing or unreadable files yield nil: stats are
// best-effort lookups, never fatal.
func PlayerStats(serverDir, uuid string) map[string]map[string]int {
	path := filepath.Join(serverDir, "world", "stats", uuid+".json")
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil
	}

	var file struct {
		Stats map[string]map[string]int `json:"stats"`
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return nil
	}
	return file.Stats
}

// StatsSummary is a compact digest of one player's stat file.
type StatsSummary struct {
	PlayTicks      int
	PlayDisplay    string
	MobKills       int
	PlayerKills    int
	Deaths         int
	Diamonds       int
	BlocksMined    int
	ItemsCrafted   int
	VillagerTrades int
	TopKilled      []string
	TopKilledBy    []string
	TopMined       []string
	TopCrafted     []string
}

// Summarize builds a StatsSummary from raw stat categories, or nil when
// stats are absent.
func Summarize(stats map[string]map[string]int) *StatsSummary {
	if stats == nil {
		return nil
	}

	custom := stats["minecraft:custom"]
	mined := stats["minecraft:mined"]
	crafted := stats["minecraft:crafted"]
	killed := stats["minecraft:killed"]
	killedBy := stats["minecraft:killed_by"]

	playTicks := custom["minecraft:play_time"]

	return &StatsSummary{
		PlayTicks:      playTicks,
		PlayDisplay:    formatPlaytime(playTicks / 20),
		MobKills:       custom["minecraft:mob_kills"],
		PlayerKills:    custom["minecraft:player_kills"],
		Deaths:         custom["minecraft:deaths"],
		Diamonds:       mined["minecraft:diamond_ore"] + mined["minecraft:deepslate_diamond_ore"],
		BlocksMined:    sumValues(mined),
		ItemsCrafted:   sumValues(crafted),
		VillagerTrades: custom["minecraft:traded_with_villager"],
		TopKilled:      topEntries(killed, 5),
		TopKilledBy:    topEntries(killedBy, 5),
		TopMined:       topEntries(mined, 5),
		TopCrafted:     topEntries(crafted, 5),
	}
}

// formatPlaytime renders total seconds the way reports expect: "2h 3m 4s",
// "5 min 6 sec", or "7 sec".
func formatPlaytime(totalSeconds int) string {
	hours := totalSeconds / 3600
	minutes := totalSeconds % 3600 / 60
	seconds := totalSeconds % 60
	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%d min %d sec", minutes, seconds)
	default:
		return fmt.Sprintf("%d sec", seconds)
	}
}

func sumValues(category map[string]int) int {
	total := 0
	for _, v := range category {
		total += v
	}
	return total
}

// topEntries returns the n highest-count entries as "name:count", with the
// minecraft: namespace stripped. Ties break on name for determinism.
func topEntries(category map[string]int, n int) []string {
	type entry struct {
		key   string
		count int
	}
	entries := make([]entry, 0, len(category))
	for k, v := range category {
		entries = append(entries, entry{key: k, count: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].key < entries[j].key
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	formatted := make([]string, 0, len(entries))
	for _, e := range entries {
		formatted = append(formatted,
			fmt.Sprintf("%s:%d", strings.TrimPrefix(e.key, "minecraft:"), e.count))
	}
	return formatted
}
