package matchhandlers

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"russiabasket-bot/internal/models"
	"russiabasket-bot/internal/viewmodels"
)

// DefaultLimit — сколько матчей отдаётся в одной выдаче.
const DefaultLimit = 8

type MatchFinder interface {
	FindByStatuses(ctx context.Context, statuses []models.MatchStatus, dateAsc bool, limit int64) ([]models.Match, error)
}

type TeamFinder interface {
	FindAll(ctx context.Context) ([]models.Team, error)
}

// Handler — read-слой: отдаёт матчи с подмешанными командами и список команд.
type Handler struct {
	Matches MatchFinder
	Teams   TeamFinder
	Log     *zap.SugaredLogger
}

// GetMatches возвращает страницу матчей. upcoming — запланированные по
// возрастанию даты, иначе идущие и завершённые по убыванию. Страница
// пересортировывается по возрастанию даты для показа; date дополнительно
// сужает её до одного календарного дня (сравнение только по дате, UTC).
func (h *Handler) GetMatches(ctx context.Context, upcoming bool, limit int, date *time.Time) ([]viewmodels.MatchVm, error) {
	teams, err := h.Teams.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("чтение команд: %w", err)
	}

	var matches []models.Match
	if upcoming {
		matches, err = h.Matches.FindByStatuses(ctx, []models.MatchStatus{models.StatusPlan}, true, int64(limit))
	} else {
		matches, err = h.Matches.FindByStatuses(ctx, []models.MatchStatus{models.StatusLive, models.StatusFinish}, false, int64(limit))
	}
	if err != nil {
		return nil, fmt.Errorf("чтение матчей: %w", err)
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Date.Before(matches[j].Date)
	})

	views := make([]viewmodels.MatchVm, 0, len(matches))
	for _, m := range matches {
		if date != nil && !sameDate(m.Date, *date) {
			continue
		}
		views = append(views, viewmodels.FromMatch(m).FillTeams(teams))
	}
	return views, nil
}

func (h *Handler) GetTeams(ctx context.Context) ([]models.Team, error) {
	return h.Teams.FindAll(ctx)
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
