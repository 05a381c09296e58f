package logs

// ExtractDeaths returns the day's non-bot deaths in input order.
//
// A line that carries the death marker but whose location clause doesn't
// parse is not a death: the grammar is strict, no partial matches.
func ExtractDeaths(records []Record, bots BotSet) []DeathEvent {
	var deaths []DeathEvent
	for _, rec := range records {
		m, ok := classify(rec.Message).(deathMsg)
		if !ok || bots.Contains(m.name) {
			continue
		}
		deaths = append(deaths, DeathEvent{
			Player:  m.name,
			TimeUTC: rec.Time,
			TimeEST: rec.Time.In(EST),
			Cause:   m.cause,
		})
	}
	return deaths
}
