package parserhandlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"russiabasket-bot/internal/models"
	"russiabasket-bot/internal/parseutils"
)

// extractTeams обходит узлы команд. Сломанный узел логируется и
// пропускается, остальные обрабатываются дальше.
func (h *Handler) extractTeams(ctx context.Context, doc *goquery.Document) []models.Team {
	var teams []models.Team
	doc.Find("a.teams-item").Each(func(_ int, sel *goquery.Selection) {
		team, err := h.extractTeam(ctx, sel)
		if err != nil {
			h.Log.Errorf("Ошибка обработки узла команды: %v", err)
			return
		}
		teams = append(teams, team)
	})
	return teams
}

func (h *Handler) extractTeam(ctx context.Context, sel *goquery.Selection) (models.Team, error) {
	href := sel.AttrOr("href", "")
	team := models.Team{
		TeamID:  parseutils.ExtractTeamID(href),
		URL:     href,
		Name:    strings.TrimSpace(sel.Find("p.teams-item__name").First().Text()),
		City:    strings.TrimSpace(sel.Find("span.teams-item__place").First().Text()),
		LogoURL: sel.Find("picture img").First().AttrOr("src", ""),
		Created: time.Now().UTC(),
	}

	if team.URL != "" {
		team.URL = h.BaseURL + team.URL
	}

	// Логотип может вести на виджет вида ".../GetTeamLogo/2237?compId=0",
	// который отвечает редиректом на настоящую картинку.
	if team.LogoURL != "" {
		if strings.Contains(team.LogoURL, "GetTeamLogo") {
			resolved, err := h.Fetcher.ResolveRedirect(ctx, team.LogoURL)
			if err != nil {
				return models.Team{}, fmt.Errorf("логотип %q: %w", team.LogoURL, err)
			}
			if resolved != "" {
				team.LogoURL = resolved
			}
		} else {
			team.LogoURL = h.BaseURL + team.LogoURL
		}
	}

	return team, nil
}

func (h *Handler) extractMatches(doc *goquery.Document) []models.Match {
	var matches []models.Match
	doc.Find("div.matches-table__item").Each(func(_ int, sel *goquery.Selection) {
		match, err := h.extractMatch(sel)
		if err != nil {
			h.Log.Errorf("Ошибка обработки узла матча: %v", err)
			return
		}
		matches = append(matches, match)
	})
	return matches
}

func (h *Handler) extractMatch(sel *goquery.Selection) (models.Match, error) {
	classText := sel.AttrOr("class", "")

	// Ссылка на матч живёт в onclick кнопки статистики, у будущих матчей —
	// в ссылке на превью.
	var rawURL string
	sel.Find("button").EachWithBreak(func(_ int, b *goquery.Selection) bool {
		if strings.Contains(b.Text(), "татистика") {
			rawURL = b.AttrOr("onclick", "")
			return false
		}
		return true
	})
	if rawURL == "" {
		rawURL = sel.Find("a.match-opponent__preview").First().AttrOr("href", "")
	}

	matchURL, matchID := parseutils.ExtractGameURLAndID(rawURL)
	if matchID == 0 {
		return models.Match{}, fmt.Errorf("узел матча без идентификатора, класс %q", classText)
	}

	homeID, guestID := parseutils.ExtractTeamIDs(classText)
	status, ok := parseutils.ExtractGameStatus(classText)
	if !ok {
		status = models.StatusPlan
	}

	dateNode := sel.Find("div.matches-table__item-date").First()
	scores := sel.Find("div.match-opponent__team-score span.match-opponent__result")

	match := models.Match{
		MatchID:     matchID,
		Date:        parseutils.GameDateToUTC(strings.TrimSpace(dateNode.Find("p").First().Text()), defaultGameTime, h.Loc),
		Stage:       strings.TrimSpace(dateNode.Find("span").First().Text()),
		HomeTeamID:  homeID,
		GuestTeamID: guestID,
		HomeScore:   parseScore(scores.Eq(0).Text()),
		GuestScore:  parseScore(scores.Eq(1).Text()),
		Status:      status,
		URL:         matchURL,
		Created:     time.Now().UTC(),
	}

	if match.URL != "" {
		match.URL = h.BaseURL + match.URL
	}

	return match, nil
}

func parseScore(text string) int {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0
	}
	return n
}
