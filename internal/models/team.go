package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Team — команда с сайта источника. TeamID — внешний идентификатор,
// он стабилен между скрейпами и используется для связи с матчами.
type Team struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	TeamID  int                `bson:"team_id" json:"team_id"`
	Name    string             `bson:"name" json:"name"`
	City    string             `bson:"city" json:"city"`
	URL     string             `bson:"url" json:"url"`
	LogoURL string             `bson:"logo_url" json:"logo_url"`
	Created time.Time          `bson:"created" json:"created"`
}
