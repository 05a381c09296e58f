package logs

import (
	"strings"
	"time"
)

// Default chat-context window around a death. Asymmetric on purpose: the
// half hour leading up to a death matters more than the aftermath.
const (
	DefaultWindowBefore = 30 * time.Minute
	DefaultWindowAfter  = 5 * time.Minute
)

// ChatOption configures windowed chat extraction.
type ChatOption func(*chatOptions)

type chatOptions struct {
	before time.Duration
	after  time.Duration
}

// WithWindow overrides both window bounds around the anchor.
func WithWindow(before, after time.Duration) ChatOption {
	return func(o *chatOptions) {
		o.before = before
		o.after = after
	}
}

// ExtractAllChat returns every non-bot chat message for the day in input
// order. Lines relayed by the moderation bot are dropped unconditionally,
// independent of the bot set.
func ExtractAllChat(records []Record, bots BotSet) []ChatMessage {
	var messages []ChatMessage
	for _, rec := range records {
		if msg, ok := chatFromRecord(rec, bots); ok {
			messages = append(messages, msg)
		}
	}
	return messages
}

// ExtractChatContext returns the chat messages inside the inclusive window
// [anchor-before, anchor+after], tagging messages spoken by player via
// IsTarget so a consumer can highlight the event's subject without losing
// surrounding context.
func ExtractChatContext(records []Record, player string, anchor time.Time, bots BotSet, opts ...ChatOption) []ChatMessage {
	o := chatOptions{before: DefaultWindowBefore, after: DefaultWindowAfter}
	for _, opt := range opts {
		opt(&o)
	}

	start := anchor.Add(-o.before)
	end := anchor.Add(o.after)

	var messages []ChatMessage
	for _, rec := range records {
		if rec.Time.Before(start) || rec.Time.After(end) {
			continue
		}
		msg, ok := chatFromRecord(rec, bots)
		if !ok {
			continue
		}
		msg.IsTarget = msg.Speaker == player
		messages = append(messages, msg)
	}
	return messages
}

// chatFromRecord applies the chat grammar, the moderation-bot prefix
// filter, and the bot set to one record.
func chatFromRecord(rec Record, bots BotSet) (ChatMessage, bool) {
	if strings.HasPrefix(rec.Message, moderationPrefix) {
		return ChatMessage{}, false
	}
	m, ok := classify(rec.Message).(chatMsg)
	if !ok || bots.Contains(m.speaker) {
		return ChatMessage{}, false
	}
	return ChatMessage{
		TimeUTC: rec.Time,
		TimeEST: rec.Time.In(EST),
		Speaker: m.speaker,
		Message: m.text,
	}, true
}
