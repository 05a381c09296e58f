package logs

import (
	"strings"
	"testing"
	"time"
)

// rec builds a record for 2026-02-15 at the given wall-clock time.
func rec(clock, msg string) Record {
	ts, err := time.Parse("2006-01-02 15:04:05", "2026-02-15 "+clock)
	if err != nil {
		panic(err)
	}
	return Record{Time: ts.UTC(), Thread: "Server thread", Level: "INFO", Message: msg}
}

func TestExtractDeaths(t *testing.T) {
	records := []Record{
		rec("10:00:00", "☠ Steve was slain by Zombie (Extra: World:world, X:100, Y:64, Z:-200)"),
		rec("10:05:00", "☠ BotZed drowned (Extra: World:world, X:1, Y:62, Z:2)"),
		rec("11:00:00", "☠ Alex fell from a high place (Extra: World:world_nether, X:-31, Y:120, Z:7)"),
		rec("11:30:00", "☠ Ghost died with no location"),
	}
	bots := NewBotSet([]string{"BotZed"})

	deaths := ExtractDeaths(records, bots)

	if len(deaths) != 2 {
		t.Fatalf("Got %d deaths, want 2", len(deaths))
	}

	if deaths[0].Player != "Steve" {
		t.Errorf("Player = %q, want Steve", deaths[0].Player)
	}
	if deaths[0].Cause != "was slain by Zombie" {
		t.Errorf("Cause = %q, want %q", deaths[0].Cause, "was slain by Zombie")
	}
	if deaths[1].Player != "Alex" || deaths[1].Cause != "fell from a high place" {
		t.Errorf("deaths[1] = %+v", deaths[1])
	}

	wantEST := time.Date(2026, 2, 15, 5, 0, 0, 0, EST)
	if !deaths[0].TimeEST.Equal(wantEST) {
		t.Errorf("TimeEST = %v, want %v", deaths[0].TimeEST, wantEST)
	}
}

func TestExtractDeaths_CoordinatesNeverLeak(t *testing.T) {
	records := []Record{
		rec("10:00:00", "☠ Steve tried to swim in lava (Extra: World:world_nether, X:1337, Y:40, Z:-4242)"),
	}

	deaths := ExtractDeaths(records, nil)

	if len(deaths) != 1 {
		t.Fatalf("Got %d deaths, want 1", len(deaths))
	}
	for _, fragment := range []string{"1337", "-4242", "X:", "World:", "Extra"} {
		if strings.Contains(deaths[0].Cause, fragment) {
			t.Errorf("Cause %q leaks location fragment %q", deaths[0].Cause, fragment)
		}
	}
}
