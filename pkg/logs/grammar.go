package logs

import "regexp"

// Message grammars, tried in order. Each message carries at most one shape;
// anything unmatched is regular server chatter and classifies to nil.
var (
	// ☠ Player cause (Extra: World:..., X:..., Y:..., Z:...)
	// The location clause is required and discarded: coordinates are
	// deliberately kept out of extracted causes.
	deathRE = regexp.MustCompile(`^☠ (\S+) (.+?) \(Extra: World:\w+, X:-?\d+, Y:-?\d+, Z:-?\d+\)$`)

	joinRE  = regexp.MustCompile(`^(\S+) joined the game$`)
	leaveRE = regexp.MustCompile(`^(\S+) left the game$`)

	// Abnormal disconnect, with or without the connection address.
	gameOverRE = regexp.MustCompile(`^(\S+)(?: \([^)]+\))? lost connection: Game Over!$`)

	advancementRE = regexp.MustCompile(`^(\S+) has made the advancement \[(.+)\]$`)

	// Optional [Not Secure] prefix, speaker, separator glyph, message.
	chatRE = regexp.MustCompile(`^(?:\[Not Secure\] )?(\S+) » (.+)$`)
)

// moderationPrefix marks chat lines relayed by the Grim anticheat. They are
// dropped from chat output unconditionally, independent of the bot set.
const moderationPrefix = "Grim » "

// message is the tagged variant a classified log message maps to.
// Extractors switch on the concrete type, keeping each grammar addition
// isolated to classify.
type message interface {
	actor() string
}

type deathMsg struct {
	name  string
	cause string
}

type joinMsg struct {
	name string
}

type leaveMsg struct {
	name       string
	disconnect bool
}

type advancementMsg struct {
	name        string
	advancement string
}

type chatMsg struct {
	speaker string
	text    string
}

func (m deathMsg) actor() string       { return m.name }
func (m joinMsg) actor() string        { return m.name }
func (m leaveMsg) actor() string       { return m.name }
func (m advancementMsg) actor() string { return m.name }
func (m chatMsg) actor() string        { return m.speaker }

// classify maps a record's message onto its event variant, or nil for lines
// outside the event grammar.
func classify(msg string) message {
	if m := deathRE.FindStringSubmatch(msg); m != nil {
		return deathMsg{name: m[1], cause: m[2]}
	}
	if m := joinRE.FindStringSubmatch(msg); m != nil {
		return joinMsg{name: m[1]}
	}
	if m := leaveRE.FindStringSubmatch(msg); m != nil {
		return leaveMsg{name: m[1]}
	}
	if m := gameOverRE.FindStringSubmatch(msg); m != nil {
		return leaveMsg{name: m[1], disconnect: true}
	}
	if m := advancementRE.FindStringSubmatch(msg); m != nil {
		return advancementMsg{name: m[1], advancement: m[2]}
	}
	if m := chatRE.FindStringSubmatch(msg); m != nil {
		return chatMsg{speaker: m[1], text: m[2]}
	}
	return nil
}
