package logs

import "time"

// ExtractSessions pairs joins with leaves and abnormal disconnects per
// player. The result maps player name to sessions ordered by close time.
//
// Pairing rules:
//   - A join opens a pending session; a second join for the same player
//     replaces the pending open, and the discarded open never becomes a
//     session.
//   - A leave or disconnect with no pending open is ignored. This discards
//     closes whose join fell before the collected window, such as a player
//     who joined the previous day.
//   - Opens still pending at end of stream are dropped, not reported.
func ExtractSessions(records []Record, bots BotSet) map[string][]Session {
	sessions := make(map[string][]Session)
	open := make(map[string]time.Time) // player -> pending join time

	for _, rec := range records {
		ev := classify(rec.Message)
		if ev == nil || bots.Contains(ev.actor()) {
			continue
		}

		switch m := ev.(type) {
		case joinMsg:
			open[m.name] = rec.Time

		case leaveMsg:
			join, ok := open[m.name]
			if !ok {
				continue
			}
			delete(open, m.name)
			sessions[m.name] = append(sessions[m.name], Session{
				Player:            m.name,
				Join:              join,
				Leave:             rec.Time,
				DurationSec:       int(rec.Time.Sub(join) / time.Second),
				EndedByDisconnect: m.disconnect,
			})
		}
	}

	return sessions
}
