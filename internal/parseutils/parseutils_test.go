package parseutils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"russiabasket-bot/internal/models"
)

func TestExtractTeamID(t *testing.T) {
	assert.Equal(t, 123, ExtractTeamID("/superliga/teams/team/?id=123"))
	assert.Equal(t, 0, ExtractTeamID("/superliga/teams/team/"))
	assert.Equal(t, 0, ExtractTeamID(""))
}

func TestExtractGameURLAndID(t *testing.T) {
	url, id := ExtractGameURLAndID("location.href='/superliga/games/game/?id=915'")
	assert.Equal(t, "/superliga/games/game/?id=915", url)
	assert.Equal(t, 915, id)

	url, id = ExtractGameURLAndID("/superliga/games/game/?id=916")
	assert.Equal(t, "/superliga/games/game/?id=916", url)
	assert.Equal(t, 916, id)

	url, id = ExtractGameURLAndID("javascript:void(0)")
	assert.Equal(t, "", url)
	assert.Equal(t, 0, id)
}

func TestExtractTeamIDs(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		home  int
		guest int
	}{
		{"two ids in order", "matches-table__item _team101 _team202 _status0", 101, 202},
		{"no ids", "matches-table__item", 0, 0},
		{"one id", "matches-table__item _team101", 0, 0},
		{"three ids", "_team1 _team2 _team3", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home, guest := ExtractTeamIDs(tt.in)
			assert.Equal(t, tt.home, home)
			assert.Equal(t, tt.guest, guest)
		})
	}
}

func TestExtractGameStatus(t *testing.T) {
	status, ok := ExtractGameStatus("matches-table__item _team1 _team2 _status0")
	assert.True(t, ok)
	assert.Equal(t, models.StatusPlan, status)

	status, ok = ExtractGameStatus("_status1")
	assert.True(t, ok)
	assert.Equal(t, models.StatusLive, status)

	status, ok = ExtractGameStatus("_status2")
	assert.True(t, ok)
	assert.Equal(t, models.StatusFinish, status)

	_, ok = ExtractGameStatus("_status7")
	assert.False(t, ok)

	_, ok = ExtractGameStatus("matches-table__item")
	assert.False(t, ok)
}
