// internal/app/store/grades/gradestore.go
package gradestore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("grade_records")}
}

// AverageBySection returns the mean of the non-null grades in one section
// and how many graded rows contributed. Pending rows (null grade) are
// excluded from both figures. A section with no graded rows yields (0, 0).
func (s *Store) AverageBySection(ctx context.Context, sectionID primitive.ObjectID) (avg float64, graded int64, err error) {
	pipe := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"section_id": sectionID, "grade": bson.M{"$ne": nil}}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":    nil,
			"avg":    bson.M{"$avg": "$grade"},
			"graded": bson.M{"$sum": 1},
		}}},
	}
	cur, err := s.c.Aggregate(ctx, pipe)
	if err != nil {
		return 0, 0, err
	}
	defer cur.Close(ctx)

	var out []struct {
		Avg    float64 `bson:"avg"`
		Graded int64   `bson:"graded"`
	}
	if err := cur.All(ctx, &out); err != nil {
		return 0, 0, err
	}
	if len(out) == 0 {
		return 0, 0, nil
	}
	return out[0].Avg, out[0].Graded, nil
}

// CountPending counts null-grade rows across the given sections.
// Count-only query; no documents are materialized.
func (s *Store) CountPending(ctx context.Context, sectionIDs []primitive.ObjectID) (int64, error) {
	if len(sectionIDs) == 0 {
		return 0, nil
	}
	return s.c.CountDocuments(ctx, bson.M{
		"section_id": bson.M{"$in": sectionIDs},
		"grade":      nil,
	})
}
