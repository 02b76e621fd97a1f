package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"russiabasket-bot/config"
)

// Context держит подключение к MongoDB и типизированные коллекции.
type Context struct {
	client *mongo.Client

	Teams   *TeamCollection
	Matches *MatchCollection
	Groups  *GroupCollection
}

func InitDatabase(ctx context.Context, cfg *config.Config) (*Context, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к базе данных: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("база данных недоступна: %w", err)
	}

	database := client.Database(cfg.DBName)
	return &Context{
		client:  client,
		Teams:   &TeamCollection{coll: database.Collection("team")},
		Matches: &MatchCollection{coll: database.Collection("matches")},
		Groups:  &GroupCollection{coll: database.Collection("telegram_groups")},
	}, nil
}

func (c *Context) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
