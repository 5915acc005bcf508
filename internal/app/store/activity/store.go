// internal/app/store/activity/store.go
package activity

import (
	"context"
	"time"

	"github.com/dalemusser/campushub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Activity types recorded in the institution-wide log.
const (
	TypeAdmission   = "admission"
	TypePayment     = "payment"
	TypeMaintenance = "maintenance"
	TypeNotice      = "notice"
)

// Store manages the activity_log collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new activity Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("activity_log")}
}

// EnsureIndexes creates the indexes the recent-activity feed relies on.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_activity_created"),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_activity_user"),
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}

// Record appends one entry to the activity log. Writers are the external
// admission, payment, and maintenance flows; this service only reads the
// log for the institution feed.
func (s *Store) Record(ctx context.Context, userID *primitive.ObjectID, activityType, description string) error {
	entry := models.ActivityEntry{
		ID:           primitive.NewObjectID(),
		UserID:       userID,
		ActivityType: activityType,
		Description:  description,
		CreatedAt:    time.Now().UTC(),
	}
	_, err := s.c.InsertOne(ctx, entry)
	return err
}

// Recent returns at most limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int64) ([]models.ActivityEntry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit)
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.ActivityEntry
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
