// Package logs implements the server log event engine: resolving which log
// files hold a given day's lines, parsing each line into a typed record, and
// deriving deaths, play sessions, advancements, and chat from the ordered
// record stream.
package logs

import "time"

// EST is the fixed UTC-5 zone used for human-facing timestamps. The server
// community reports times in EST year-round; no DST.
var EST = time.FixedZone("EST", -5*60*60)

// Record is one parsed log line.
type Record struct {
	// Time is the absolute instant in UTC, built from the requested date
	// plus the line's wall-clock time.
	Time time.Time

	// Thread is the originating thread label.
	Thread string

	// Level is the severity label.
	Level string

	// Message is the free-text payload after the envelope.
	Message string
}

// DeathEvent is a single player death.
type DeathEvent struct {
	Player  string
	TimeUTC time.Time
	TimeEST time.Time

	// Cause is the death message with the trailing location clause
	// stripped. Coordinates never appear here.
	Cause string
}

// Session is a paired join/leave interval for one player.
type Session struct {
	Player      string
	Join        time.Time
	Leave       time.Time
	DurationSec int

	// EndedByDisconnect is true when the session closed with a
	// "lost connection: Game Over!" line instead of a normal leave.
	EndedByDisconnect bool
}

// Advancement is a log-reported advancement grant.
type Advancement struct {
	Player  string
	TimeUTC time.Time
	TimeEST time.Time

	// Name is the label as logged, passed through verbatim.
	Name string
}

// ChatMessage is one in-game chat line.
type ChatMessage struct {
	TimeUTC time.Time
	TimeEST time.Time
	Speaker string
	Message string

	// IsTarget marks messages spoken by the anchor player in windowed
	// extraction. Always false in full-day extraction.
	IsTarget bool
}

// BotSet holds the automated account names excluded from all human-facing
// extraction. Loaded once per run, read-only.
type BotSet map[string]struct{}

// NewBotSet builds a BotSet from a list of names.
func NewBotSet(names []string) BotSet {
	set := make(BotSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// Contains reports whether name is a known bot.
func (b BotSet) Contains(name string) bool {
	_, ok := b[name]
	return ok
}
