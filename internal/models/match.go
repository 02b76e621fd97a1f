package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MatchStatus — статус матча на сайте источника.
// Номер берётся из css-класса узла (_status0/_status1/_status2).
type MatchStatus int

const (
	StatusPlan   MatchStatus = 0
	StatusLive   MatchStatus = 1
	StatusFinish MatchStatus = 2
)

// Valid сообщает, известен ли такой номер статуса.
func (s MatchStatus) Valid() bool {
	return s >= StatusPlan && s <= StatusFinish
}

type Match struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	MatchID    int                `bson:"match_id" json:"match_id"`
	Date       time.Time          `bson:"date" json:"date"`
	HomeTeamID int                `bson:"home_team_id" json:"home_team_id"`
	GuestTeamID int               `bson:"guest_team_id" json:"guest_team_id"`
	HomeScore  int                `bson:"home_score" json:"home_score"`
	GuestScore int                `bson:"guest_score" json:"guest_score"`
	Status     MatchStatus        `bson:"status" json:"status"`
	URL        string             `bson:"url" json:"url"`
	Stage      string             `bson:"stage" json:"stage"` // регулярный сезон / плей-офф
	Created    time.Time          `bson:"created" json:"created"`
}
