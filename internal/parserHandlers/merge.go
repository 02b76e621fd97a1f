package parserhandlers

import "russiabasket-bot/internal/models"

// mergeMatch применяет свежие данные к сохранённому матчу. Возвращает nil,
// когда статус не изменился: между опросами статус — единственный сигнал
// изменений, такой матч не перезаписывается вовсе.
func mergeMatch(existing, incoming models.Match) *models.Match {
	if incoming.Status == existing.Status {
		return nil
	}

	updated := existing
	updated.Status = incoming.Status
	updated.HomeScore = incoming.HomeScore
	updated.GuestScore = incoming.GuestScore
	updated.Date = incoming.Date
	updated.Stage = incoming.Stage
	return &updated
}
