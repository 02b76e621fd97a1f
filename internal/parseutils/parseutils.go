package parseutils

import (
	"regexp"
	"strconv"
	"strings"

	"russiabasket-bot/internal/models"
)

var (
	idRe      = regexp.MustCompile(`id=(\d+)`)
	gameURLRe = regexp.MustCompile(`(?:location\.href=')?(/[^']+\?id=(\d+))'?`)
	teamRe    = regexp.MustCompile(`_team(\d+)`)
	statusRe  = regexp.MustCompile(`_status(\d)`)
)

// ExtractTeamID достаёт внешний идентификатор из фрагмента "id=<цифры>"
// внутри ссылки. Если идентификатора нет — возвращает 0.
func ExtractTeamID(url string) int {
	m := idRe.FindStringSubmatch(url)
	if m == nil {
		return 0
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return id
}

// ExtractGameURLAndID разбирает onclick вида "location.href='/game/?id=123'"
// либо обычный href и возвращает относительный url матча и его идентификатор.
func ExtractGameURLAndID(text string) (string, int) {
	m := gameURLRe.FindStringSubmatch(text)
	if m == nil {
		return "", 0
	}
	id, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0
	}
	return m[1], id
}

// ExtractTeamIDs сканирует строку css-классов узла матча по токенам и
// собирает вхождения "_team<цифры>" в порядке появления. Идентификаторы
// возвращаются только когда вхождений ровно два, иначе (0, 0).
func ExtractTeamIDs(text string) (home, guest int) {
	var ids []int
	for _, token := range strings.Fields(text) {
		m := teamRe.FindStringSubmatch(token)
		if m == nil {
			continue
		}
		id, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) != 2 {
		return 0, 0
	}
	return ids[0], ids[1]
}

// ExtractGameStatus ищет в строке css-классов токен "_status<цифра>".
// Второй результат false, когда токена нет или номер вне диапазона —
// вызывающий код подставляет StatusPlan.
func ExtractGameStatus(text string) (models.MatchStatus, bool) {
	for _, token := range strings.Fields(text) {
		m := statusRe.FindStringSubmatch(token)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		status := models.MatchStatus(n)
		if !status.Valid() {
			return 0, false
		}
		return status, true
	}
	return 0, false
}
