package viewmodels

import (
	"fmt"
	"time"

	"russiabasket-bot/internal/models"
)

// MatchVm — проекция матча для выдачи: к матчу подмешаны отображаемые
// данные обеих команд. Живёт только в рамках одного запроса.
type MatchVm struct {
	MatchID       int                `json:"match_id"`
	Date          time.Time          `json:"date"`
	HomeTeamID    int                `json:"home_team_id"`
	HomeTeamName  string             `json:"home_team_name"`
	HomeTeamLogo  string             `json:"home_team_logo"`
	GuestTeamID   int                `json:"guest_team_id"`
	GuestTeamName string             `json:"guest_team_name"`
	GuestTeamLogo string             `json:"guest_team_logo"`
	HomeScore     int                `json:"home_score"`
	GuestScore    int                `json:"guest_score"`
	Status        models.MatchStatus `json:"status"`
	URL           string             `json:"url"`
	Stage         string             `json:"stage"`
}

func FromMatch(m models.Match) MatchVm {
	return MatchVm{
		MatchID:     m.MatchID,
		Date:        m.Date,
		HomeTeamID:  m.HomeTeamID,
		GuestTeamID: m.GuestTeamID,
		HomeScore:   m.HomeScore,
		GuestScore:  m.GuestScore,
		Status:      m.Status,
		URL:         m.URL,
		Stage:       m.Stage,
	}
}

// FillTeams подставляет имена и логотипы команд по внешнему идентификатору.
// Берётся первая подошедшая команда; ненайденная оставляет поля пустыми.
func (vm MatchVm) FillTeams(teams []models.Team) MatchVm {
	for _, t := range teams {
		if t.TeamID == vm.HomeTeamID {
			vm.HomeTeamName = fmt.Sprintf("%s (%s)", t.Name, t.City)
			vm.HomeTeamLogo = t.LogoURL
			break
		}
	}
	for _, t := range teams {
		if t.TeamID == vm.GuestTeamID {
			vm.GuestTeamName = fmt.Sprintf("%s (%s)", t.Name, t.City)
			vm.GuestTeamLogo = t.LogoURL
			break
		}
	}
	return vm
}

// Score — строка счёта; заполнена только у завершённых матчей.
func (vm MatchVm) Score() string {
	if vm.Status != models.StatusFinish {
		return ""
	}
	return fmt.Sprintf("%d:%d", vm.HomeScore, vm.GuestScore)
}

func (vm MatchVm) StatusText() string {
	switch vm.Status {
	case models.StatusFinish:
		return "Завершен"
	case models.StatusPlan:
		return "Запланирован"
	case models.StatusLive:
		return "В процессе"
	}
	return ""
}

// URLText — подпись ссылки на страницу матча в зависимости от статуса.
func (vm MatchVm) URLText() string {
	switch vm.Status {
	case models.StatusFinish:
		return "Статистика"
	case models.StatusPlan:
		return "Превью"
	case models.StatusLive:
		return "Трансляция"
	}
	return ""
}

// DateIn — дата матча в заданной таймзоне (для отображения).
func (vm MatchVm) DateIn(loc *time.Location) time.Time {
	return vm.Date.In(loc)
}
