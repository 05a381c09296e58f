package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/hunterjsb/xn-mc/pkg/players"
)

// PlayerStatus is a player's standing on the server.
type PlayerStatus string

const (
	StatusAlive      PlayerStatus = "ALIVE"
	StatusDeathBan   PlayerStatus = "DEATHBANNED"
	StatusHackBanned PlayerStatus = "HACK-BANNED"
)

// PlayerProfile is the assembled input for one player's profile.
type PlayerProfile struct {
	Name           string
	UUID           string
	Status         PlayerStatus
	Ban            *players.Ban
	WikiPageExists bool
	Stats          *players.StatsSummary
	Advancements   []string
}

// WritePlayerProfile renders a full player profile.
func WritePlayerProfile(w io.Writer, p *PlayerProfile) {
	fmt.Fprintf(w, "# Player: %s\n", p.Name)

	uuid := p.UUID
	if uuid == "" {
		uuid = "not found"
	}
	fmt.Fprintf(w, "UUID: %s\n", uuid)
	fmt.Fprintf(w, "Status: %s\n", p.Status)

	if p.Ban != nil {
		created := p.Ban.Created
		if created == "" {
			created = "unknown"
		}
		fmt.Fprintf(w, "Ban date: %s\n", created)
		reason, _, _ := strings.Cut(p.Ban.Reason, "\n")
		fmt.Fprintf(w, "Ban reason: %s\n", reason)
	}

	if p.WikiPageExists {
		fmt.Fprintln(w, "Wiki page: exists")
	} else {
		fmt.Fprintln(w, "Wiki page: none")
	}

	if p.UUID == "" {
		fmt.Fprintln(w, "Stats: UUID not found in usercache")
		return
	}

	if p.Stats != nil {
		fmt.Fprintf(w, "Playtime: %s\n", p.Stats.PlayDisplay)
		fmt.Fprintf(w, "Mob kills: %d, Player kills: %d, Deaths: %d\n",
			p.Stats.MobKills, p.Stats.PlayerKills, p.Stats.Deaths)
		fmt.Fprintf(w, "Diamonds mined: %d\n", p.Stats.Diamonds)
		fmt.Fprintf(w, "Blocks mined: %d, Items crafted: %d, Villager trades: %d\n",
			p.Stats.BlocksMined, p.Stats.ItemsCrafted, p.Stats.VillagerTrades)
		if len(p.Stats.TopKilled) > 0 {
			fmt.Fprintf(w, "Top kills: %s\n", strings.Join(p.Stats.TopKilled, ", "))
		}
		if len(p.Stats.TopKilledBy) > 0 {
			fmt.Fprintf(w, "Killed by: %s\n", strings.Join(p.Stats.TopKilledBy, ", "))
		}
		if len(p.Stats.TopMined) > 0 {
			fmt.Fprintf(w, "Top mined: %s\n", strings.Join(p.Stats.TopMined, ", "))
		}
		if len(p.Stats.TopCrafted) > 0 {
			fmt.Fprintf(w, "Top crafted: %s\n", strings.Join(p.Stats.TopCrafted, ", "))
		}
	}

	if len(p.Advancements) > 0 {
		fmt.Fprintf(w, "Advancements (%d): %s\n",
			len(p.Advancements), strings.Join(p.Advancements, ", "))
	} else {
		fmt.Fprintln(w, "Advancements: none")
	}
}
