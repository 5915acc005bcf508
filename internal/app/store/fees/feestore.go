// internal/app/store/fees/feestore.go
package feestore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/campushub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("fees")}
}

// LatestByStudent returns the student's most recent fee record by creation
// time, or nil when the student has none. Callers must preserve the
// nil-vs-present distinction; it is how "no fee record" is reported.
func (s *Store) LatestByStudent(ctx context.Context, studentID primitive.ObjectID) (*models.FeeRecord, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})
	var fee models.FeeRecord
	err := s.c.FindOne(ctx, bson.M{"student_id": studentID}, opts).Decode(&fee)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fee, nil
}

// CollectedOn sums paid_amount over fee rows created on the given UTC
// calendar day. An empty result set yields 0.
func (s *Store) CollectedOn(ctx context.Context, day time.Time) (float64, error) {
	day = day.UTC()
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	pipe := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"created_at": bson.M{"$gte": start, "$lt": end},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$paid_amount"},
		}}},
	}
	cur, err := s.c.Aggregate(ctx, pipe)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var out []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &out); err != nil {
		return 0, err
	}
	if len(out) == 0 {
		return 0, nil
	}
	return out[0].Total, nil
}
