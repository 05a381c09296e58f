// Package players loads the server's read-only player lookup tables:
// usercache, ban records, and per-player stat and advancement files.
package players

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/hunterjsb/xn-mc/pkg/logs"
)

// LoadBotNames reads the automated-account usernames from a personalities
// file ([{"username": ...}, ...]).
func LoadBotNames(path string) (logs.BotSet, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- configured path is expected
	if err != nil {
		return nil, fmt.Errorf("reading personalities file: %w", err)
	}

	var personalities []struct {
		Username string `json:"username"`
	}
	if err := json.Unmarshal(data, &personalities); err != nil {
		return nil, fmt.Errorf("parsing personalities file: %w", err)
	}

	names := make([]string, 0, len(personalities))
	for _, p := range personalities {
		names = append(names, p.Username)
	}
	return logs.NewBotSet(names), nil
}

// LoadUserCache returns the UUID-to-name map from usercache.json.
func LoadUserCache(serverDir string) (map[string]string, error) {
	data, err := os.ReadFile(filepath.Join(serverDir, "usercache.json")) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("reading usercache: %w", err)
	}

	var entries []struct {
		UUID string `json:"uuid"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing usercache: %w", err)
	}

	cache := make(map[string]string, len(entries))
	for _, e := range entries {
		cache[e.UUID] = e.Name
	}
	return cache, nil
}

// NameToUUID inverts a UUID-to-name map, lowercasing names for
// case-insensitive lookup.
func NameToUUID(uuidToName map[string]string) map[string]string {
	inverted := make(map[string]string, len(uuidToName))
	for uuid, name := range uuidToName {
		inverted[strings.ToLower(name)] = uuid
	}
	return inverted
}

// Ban is one entry from banned-players.json.
type Ban struct {
	UUID    string `json:"uuid"`
	Name    string `json:"name"`
	Created string `json:"created"`
	Source  string `json:"source"`
	Expires string `json:"expires"`
	Reason  string `json:"reason"`
}

func loadBanFile(serverDir string) ([]Ban, error) {
	data, err := os.ReadFile(filepath.Join(serverDir, "banned-players.json")) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("reading ban list: %w", err)
	}

	var bans []Ban
	if err := json.Unmarshal(data, &bans); err != nil {
		return nil, fmt.Errorf("parsing ban list: %w", err)
	}
	return bans, nil
}

// LoadBanDetails returns full ban records keyed by player name.
func LoadBanDetails(serverDir string) (map[string]Ban, error) {
	bans, err := loadBanFile(serverDir)
	if err != nil {
		return nil, err
	}

	details := make(map[string]Ban, len(bans))
	for _, ban := range bans {
		details[ban.Name] = ban
	}
	return details, nil
}

// LoadBans splits banned players into deathbanned and hack-banned name
// sets, skipping bots. A reason mentioning Deathban or Game Over marks a
// deathban; everything else counts as a hack ban.
func LoadBans(serverDir string, bots logs.BotSet) (deathbanned, hackbanned map[string]struct{}, err error) {
	bans, err := loadBanFile(serverDir)
	if err != nil {
		return nil, nil, err
	}

	deathbanned = make(map[string]struct{})
	hackbanned = make(map[string]struct{})
	for _, ban := range bans {
		if bots.Contains(ban.Name) {
			continue
		}
		if strings.Contains(ban.Reason, "Deathban") || strings.Contains(ban.Reason, "Game Over") {
			deathbanned[ban.Name] = struct{}{}
		} else {
			hackbanned[ban.Name] = struct{}{}
		}
	}
	return deathbanned, hackbanned, nil
}
