// internal/app/store/messages/messagestore.go
package messagestore

import (
	"context"

	"github.com/dalemusser/campushub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/campushub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("messages")}
}

// MessageWithSender is a message with its sender's profile embedded via
// $lookup.
type MessageWithSender struct {
	models.Message `bson:",inline"`
	Sender         models.User `bson:"sender"`
}

// RecentForRecipient returns at most limit messages addressed to one
// person, newest first, each annotated with the sender.
func (s *Store) RecentForRecipient(ctx context.Context, recipientID primitive.ObjectID, limit int64) ([]MessageWithSender, error) {
	return s.recent(ctx, bson.M{"recipient_id": recipientID}, limit)
}

// RecentAll returns at most limit messages institution-wide, newest first,
// each annotated with the sender. Used as a coarse recent-activity feed.
func (s *Store) RecentAll(ctx context.Context, limit int64) ([]MessageWithSender, error) {
	return s.recent(ctx, bson.M{}, limit)
}

func (s *Store) recent(ctx context.Context, filter bson.M, limit int64) ([]MessageWithSender, error) {
	pipe := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}}},
		bson.D{{Key: "$limit", Value: limit}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "sender_id",
			"foreignField": "_id",
			"as":           "sender",
		}}},
		bson.D{{Key: "$unwind", Value: "$sender"}},
	}
	cur, err := s.c.Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []MessageWithSender
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Content = htmlsanitize.Sanitize(out[i].Content)
	}
	return out, nil
}
