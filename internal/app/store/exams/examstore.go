// internal/app/store/exams/examstore.go
package examstore

import (
	"context"
	"time"

	"github.com/dalemusser/campushub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("exams")}
}

// ExamWithSubject is an exam with its subject embedded via $lookup.
type ExamWithSubject struct {
	models.Exam `bson:",inline"`
	Subject     models.Subject `bson:"subject"`
}

// ListUpcoming returns at most limit exams dated on or after from, nearest
// first, each with its subject embedded.
func (s *Store) ListUpcoming(ctx context.Context, from time.Time, limit int64) ([]ExamWithSubject, error) {
	pipe := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"exam_date": bson.M{"$gte": from}}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "exam_date", Value: 1}, {Key: "_id", Value: 1}}}},
		bson.D{{Key: "$limit", Value: limit}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "subjects",
			"localField":   "subject_id",
			"foreignField": "_id",
			"as":           "subject",
		}}},
		bson.D{{Key: "$unwind", Value: "$subject"}},
	}
	cur, err := s.c.Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []ExamWithSubject
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
