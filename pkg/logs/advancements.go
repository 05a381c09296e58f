package logs

// ExtractAdvancements groups log-reported advancements per non-bot player,
// each player's list in input order. Advancement names are opaque labels
// passed through verbatim; display beautification is pkg/players' concern.
func ExtractAdvancements(records []Record, bots BotSet) map[string][]Advancement {
	advancements := make(map[string][]Advancement)
	for _, rec := range records {
		m, ok := classify(rec.Message).(advancementMsg)
		if !ok || bots.Contains(m.name) {
			continue
		}
		advancements[m.name] = append(advancements[m.name], Advancement{
			Player:  m.name,
			TimeUTC: rec.Time,
			TimeEST: rec.Time.In(EST),
			Name:    m.advancement,
		})
	}
	return advancements
}
