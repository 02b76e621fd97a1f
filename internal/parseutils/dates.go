package parseutils

import (
	"strconv"
	"strings"
	"time"
)

const mskMarker = "(мск)"

// Месяцы в родительном падеже, как их пишет сайт источника.
var months = map[string]time.Month{
	"января":   time.January,
	"февраля":  time.February,
	"марта":    time.March,
	"апреля":   time.April,
	"мая":      time.May,
	"июня":     time.June,
	"июля":     time.July,
	"августа":  time.August,
	"сентября": time.September,
	"октября":  time.October,
	"ноября":   time.November,
	"декабря":  time.December,
}

var gameDateLayouts = []string{
	"2 1 2006, 15:04 (мск)",
	"2 1 2006",
}

// MoscowLocation возвращает домашнюю таймзону источника.
func MoscowLocation() *time.Location {
	loc, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		return time.FixedZone("MSK", 3*60*60)
	}
	return loc
}

// GameDateToUTC парсит дату матча ("15 марта 2025, 19:30 (мск)" или
// "15 марта 2025") как местное время loc и возвращает её в UTC.
// Когда в строке нет времени с пометкой "(мск)", к дате прибавляется
// defaultTime. Если строка не разобралась — нулевое время.
func GameDateToUTC(dateString string, defaultTime time.Duration, loc *time.Location) time.Time {
	s := strings.TrimSpace(strings.ToLower(dateString))

	for name, month := range months {
		if strings.Contains(s, name) {
			s = strings.Replace(s, name, strconv.Itoa(int(month)), 1)
			break
		}
	}

	var local time.Time
	var err error
	for _, layout := range gameDateLayouts {
		local, err = time.ParseInLocation(layout, s, loc)
		if err == nil {
			break
		}
	}
	if err != nil {
		return time.Time{}
	}

	if !strings.Contains(s, mskMarker) {
		local = local.Add(defaultTime)
	}

	return local.UTC()
}
