package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TelegramGroup — подписчик рассылки. Ключ — ChatID.
type TelegramGroup struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ChatID    int64              `bson:"chat_id" json:"chat_id"`
	GroupName string             `bson:"group_name" json:"group_name"`
	AddedDate time.Time          `bson:"added_date" json:"added_date"`
}
