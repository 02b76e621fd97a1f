package parserhandlers

import (
	"context"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"russiabasket-bot/internal/models"
)

const (
	teamsPath = "/superliga/men/teams/"
	gamesPath = "/superliga/men/games/"

	// Время по умолчанию для матчей, у которых на сайте указана только дата.
	defaultGameTime = 12 * time.Hour
)

type Fetcher interface {
	Document(ctx context.Context, url string) (*goquery.Document, error)
	ResolveRedirect(ctx context.Context, url string) (string, error)
}

type TeamStore interface {
	DeleteAll(ctx context.Context) error
	InsertMany(ctx context.Context, teams []models.Team) error
}

type MatchStore interface {
	FindAll(ctx context.Context) ([]models.Match, error)
	DeleteAll(ctx context.Context) error
	InsertMany(ctx context.Context, matches []models.Match) error
	InsertOne(ctx context.Context, match models.Match) error
	Replace(ctx context.Context, id primitive.ObjectID, match models.Match) error
}

// Handler скачивает страницы источника, извлекает команды и матчи
// и сводит их с сохранённым набором.
type Handler struct {
	Fetcher Fetcher
	Teams   TeamStore
	Matches MatchStore
	BaseURL string
	Loc     *time.Location
	Log     *zap.SugaredLogger
}

// ParseTeams полностью обновляет коллекцию команд: извлечённый набор
// заменяет сохранённый целиком. Пустой набор базу не трогает.
func (h *Handler) ParseTeams(ctx context.Context) (int, error) {
	h.Log.Info("Обновление списка команд")

	doc, err := h.Fetcher.Document(ctx, h.BaseURL+teamsPath)
	if err != nil {
		return 0, fmt.Errorf("загрузка страницы команд: %w", err)
	}

	teams := h.extractTeams(ctx, doc)
	if len(teams) == 0 {
		h.Log.Warn("На странице не нашлось ни одной команды, коллекция не тронута")
		return 0, nil
	}

	if err := h.Teams.DeleteAll(ctx); err != nil {
		return 0, fmt.Errorf("очистка коллекции команд: %w", err)
	}
	if err := h.Teams.InsertMany(ctx, teams); err != nil {
		return 0, fmt.Errorf("сохранение команд: %w", err)
	}

	h.Log.Infof("Импортировано команд: %d", len(teams))
	return len(teams), nil
}

// ParseMatches обновляет коллекцию матчей. updateAll — полная замена,
// иначе инкрементальное обновление по внешнему идентификатору: новый матч
// вставляется, существующий перезаписывается только при смене статуса.
func (h *Handler) ParseMatches(ctx context.Context, updateAll bool) (int, error) {
	doc, err := h.Fetcher.Document(ctx, h.BaseURL+gamesPath)
	if err != nil {
		return 0, fmt.Errorf("загрузка страницы матчей: %w", err)
	}

	matches := h.extractMatches(doc)
	if len(matches) == 0 {
		h.Log.Warn("На странице не нашлось ни одного матча, коллекция не тронута")
		return 0, nil
	}

	if updateAll {
		if err := h.Matches.DeleteAll(ctx); err != nil {
			return 0, fmt.Errorf("очистка коллекции матчей: %w", err)
		}
		if err := h.Matches.InsertMany(ctx, matches); err != nil {
			return 0, fmt.Errorf("сохранение матчей: %w", err)
		}
		h.Log.Infof("Импортировано матчей: %d", len(matches))
		return len(matches), nil
	}

	stored, err := h.Matches.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("чтение сохранённых матчей: %w", err)
	}
	byID := make(map[int]models.Match, len(stored))
	for _, m := range stored {
		if _, ok := byID[m.MatchID]; !ok {
			byID[m.MatchID] = m
		}
	}

	for _, m := range matches {
		sm, ok := byID[m.MatchID]
		if !ok {
			if err := h.Matches.InsertOne(ctx, m); err != nil {
				return 0, fmt.Errorf("вставка матча %d: %w", m.MatchID, err)
			}
			continue
		}
		merged := mergeMatch(sm, m)
		if merged == nil {
			continue
		}
		if err := h.Matches.Replace(ctx, sm.ID, *merged); err != nil {
			return 0, fmt.Errorf("обновление матча %d: %w", m.MatchID, err)
		}
	}

	return len(matches), nil
}
