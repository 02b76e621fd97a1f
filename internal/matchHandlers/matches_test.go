package matchhandlers

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"russiabasket-bot/internal/models"
)

type fakeMatchFinder struct {
	matches []models.Match
}

func (f *fakeMatchFinder) FindByStatuses(_ context.Context, statuses []models.MatchStatus, dateAsc bool, limit int64) ([]models.Match, error) {
	allowed := make(map[models.MatchStatus]bool, len(statuses))
	for _, s := range statuses {
		allowed[s] = true
	}

	var out []models.Match
	for _, m := range f.matches {
		if allowed[m.Status] {
			out = append(out, m)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if dateAsc {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Date.After(out[j].Date)
	})

	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeTeamFinder struct {
	teams []models.Team
}

func (f *fakeTeamFinder) FindAll(_ context.Context) ([]models.Team, error) {
	return f.teams, nil
}

func day(d int, hour int) time.Time {
	return time.Date(2025, time.March, d, hour, 0, 0, 0, time.UTC)
}

func newQueryHandler() *Handler {
	return &Handler{
		Matches: &fakeMatchFinder{matches: []models.Match{
			{MatchID: 1, Status: models.StatusPlan, Date: day(20, 9), HomeTeamID: 101, GuestTeamID: 202},
			{MatchID: 2, Status: models.StatusPlan, Date: day(18, 9), HomeTeamID: 202, GuestTeamID: 101},
			{MatchID: 3, Status: models.StatusLive, Date: day(15, 9), HomeTeamID: 101, GuestTeamID: 303},
			{MatchID: 4, Status: models.StatusFinish, Date: day(10, 9), HomeTeamID: 303, GuestTeamID: 202},
			{MatchID: 5, Status: models.StatusFinish, Date: day(12, 9), HomeTeamID: 202, GuestTeamID: 303},
		}},
		Teams: &fakeTeamFinder{teams: []models.Team{
			{TeamID: 101, Name: "ЦСКА", City: "Москва", LogoURL: "https://cdn/cska.png"},
			{TeamID: 202, Name: "Зенит", City: "Санкт-Петербург", LogoURL: "https://cdn/zenit.png"},
		}},
		Log: zap.NewNop().Sugar(),
	}
}

func TestGetMatchesUpcoming(t *testing.T) {
	h := newQueryHandler()

	views, err := h.GetMatches(context.Background(), true, DefaultLimit, nil)
	require.NoError(t, err)
	require.Len(t, views, 2)

	// Только запланированные, по возрастанию даты
	for _, v := range views {
		assert.Equal(t, models.StatusPlan, v.Status)
	}
	assert.Equal(t, 2, views[0].MatchID)
	assert.Equal(t, 1, views[1].MatchID)
}

func TestGetMatchesRecentSortedAscending(t *testing.T) {
	h := newQueryHandler()

	views, err := h.GetMatches(context.Background(), false, DefaultLimit, nil)
	require.NoError(t, err)
	require.Len(t, views, 3)

	// Прошедшие и идущие матчи, но страница пересортирована по возрастанию
	for _, v := range views {
		assert.NotEqual(t, models.StatusPlan, v.Status)
	}
	assert.Equal(t, 4, views[0].MatchID)
	assert.Equal(t, 5, views[1].MatchID)
	assert.Equal(t, 3, views[2].MatchID)
}

func TestGetMatchesLimit(t *testing.T) {
	h := newQueryHandler()

	views, err := h.GetMatches(context.Background(), false, 2, nil)
	require.NoError(t, err)
	// Лимит применяется до пересортировки: остаются два свежайших
	require.Len(t, views, 2)
	assert.Equal(t, 5, views[0].MatchID)
	assert.Equal(t, 3, views[1].MatchID)
}

func TestGetMatchesDateFilter(t *testing.T) {
	h := newQueryHandler()

	date := day(18, 23) // время суток не учитывается
	views, err := h.GetMatches(context.Background(), true, DefaultLimit, &date)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, 2, views[0].MatchID)
}

func TestGetMatchesJoinsTeams(t *testing.T) {
	h := newQueryHandler()

	views, err := h.GetMatches(context.Background(), false, DefaultLimit, nil)
	require.NoError(t, err)

	live := -1
	for i, v := range views {
		if v.MatchID == 3 {
			live = i
			break
		}
	}
	require.NotEqual(t, -1, live)

	v := views[live]
	assert.Equal(t, "ЦСКА (Москва)", v.HomeTeamName)
	assert.Equal(t, "https://cdn/cska.png", v.HomeTeamLogo)
	// Команды 303 нет в коллекции — поля остаются пустыми
	assert.Equal(t, "", v.GuestTeamName)
	assert.Equal(t, "", v.GuestTeamLogo)
}

func TestGetTeams(t *testing.T) {
	h := newQueryHandler()

	teams, err := h.GetTeams(context.Background())
	require.NoError(t, err)
	assert.Len(t, teams, 2)
}
