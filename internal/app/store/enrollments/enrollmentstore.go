// internal/app/store/enrollments/enrollmentstore.go
package enrollmentstore

import (
	"context"

	"github.com/dalemusser/campushub/internal/app/system/status"
	"github.com/dalemusser/campushub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("enrollments")}
}

// EnrolledSection is an active enrollment with its section and subject
// embedded via $lookup.
type EnrolledSection struct {
	models.Enrollment `bson:",inline"`
	Section           models.Section `bson:"section"`
	Subject           models.Subject `bson:"subject"`
}

// ListActiveByStudent returns the student's active enrollments joined
// through to section and subject metadata. Enrollments whose section or
// subject is missing are dropped by the $unwind stages rather than failing.
func (s *Store) ListActiveByStudent(ctx context.Context, studentID primitive.ObjectID) ([]EnrolledSection, error) {
	pipe := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"student_id": studentID, "status": status.Active}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "sections",
			"localField":   "section_id",
			"foreignField": "_id",
			"as":           "section",
		}}},
		bson.D{{Key: "$unwind", Value: "$section"}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "subjects",
			"localField":   "section.subject_id",
			"foreignField": "_id",
			"as":           "subject",
		}}},
		bson.D{{Key: "$unwind", Value: "$subject"}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "subject.code", Value: 1}, {Key: "_id", Value: 1}}}},
	}
	cur, err := s.c.Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []EnrolledSection
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CountActiveBySection returns the authoritative active-enrollment count for
// one section. Count-only query; no documents are materialized.
func (s *Store) CountActiveBySection(ctx context.Context, sectionID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"section_id": sectionID, "status": status.Active})
}
