package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"russiabasket-bot/internal/models"
)

type TeamCollection struct {
	coll *mongo.Collection
}

func (c *TeamCollection) FindAll(ctx context.Context) ([]models.Team, error) {
	cur, err := c.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var teams []models.Team
	if err := cur.All(ctx, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func (c *TeamCollection) DeleteAll(ctx context.Context) error {
	_, err := c.coll.DeleteMany(ctx, bson.M{})
	return err
}

func (c *TeamCollection) InsertMany(ctx context.Context, teams []models.Team) error {
	docs := make([]interface{}, 0, len(teams))
	for _, t := range teams {
		docs = append(docs, t)
	}
	_, err := c.coll.InsertMany(ctx, docs)
	return err
}

type MatchCollection struct {
	coll *mongo.Collection
}

func (c *MatchCollection) FindAll(ctx context.Context) ([]models.Match, error) {
	cur, err := c.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var matches []models.Match
	if err := cur.All(ctx, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// FindByStatuses возвращает матчи с одним из статусов, отсортированные по
// дате и ограниченные limit на стороне базы.
func (c *MatchCollection) FindByStatuses(ctx context.Context, statuses []models.MatchStatus, dateAsc bool, limit int64) ([]models.Match, error) {
	order := 1
	if !dateAsc {
		order = -1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: order}}).
		SetLimit(limit)

	cur, err := c.coll.Find(ctx, bson.M{"status": bson.M{"$in": statuses}}, opts)
	if err != nil {
		return nil, err
	}
	var matches []models.Match
	if err := cur.All(ctx, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

func (c *MatchCollection) DeleteAll(ctx context.Context) error {
	_, err := c.coll.DeleteMany(ctx, bson.M{})
	return err
}

func (c *MatchCollection) InsertMany(ctx context.Context, matches []models.Match) error {
	docs := make([]interface{}, 0, len(matches))
	for _, m := range matches {
		docs = append(docs, m)
	}
	_, err := c.coll.InsertMany(ctx, docs)
	return err
}

func (c *MatchCollection) InsertOne(ctx context.Context, match models.Match) error {
	_, err := c.coll.InsertOne(ctx, match)
	return err
}

// Replace заменяет документ по внутреннему ключу _id (upsert).
func (c *MatchCollection) Replace(ctx context.Context, id primitive.ObjectID, match models.Match) error {
	_, err := c.coll.ReplaceOne(ctx, bson.M{"_id": id}, match, options.Replace().SetUpsert(true))
	return err
}

type GroupCollection struct {
	coll *mongo.Collection
}

// ChatIDs возвращает адреса всех подписанных чатов.
func (c *GroupCollection) ChatIDs(ctx context.Context) ([]int64, error) {
	cur, err := c.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var groups []models.TelegramGroup
	if err := cur.All(ctx, &groups); err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.ChatID)
	}
	return ids, nil
}

// Upsert создаёт или перезаписывает подписку по chat_id.
func (c *GroupCollection) Upsert(ctx context.Context, group models.TelegramGroup) error {
	_, err := c.coll.ReplaceOne(ctx, bson.M{"chat_id": group.ChatID}, group, options.Replace().SetUpsert(true))
	return err
}

// Delete удаляет подписку чата. Возвращает число удалённых документов.
func (c *GroupCollection) Delete(ctx context.Context, chatID int64) (int64, error) {
	res, err := c.coll.DeleteOne(ctx, bson.M{"chat_id": chatID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
