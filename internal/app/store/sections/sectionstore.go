// internal/app/store/sections/sectionstore.go
package sectionstore

import (
	"context"

	"github.com/dalemusser/campushub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("sections")}
}

// SectionWithSubject is a section with its subject embedded via $lookup.
type SectionWithSubject struct {
	models.Section `bson:",inline"`
	Subject        models.Subject `bson:"subject"`
}

// ListByFaculty returns all sections taught by a faculty member, each with
// its subject embedded. Sections whose subject no longer exists are dropped
// by the $unwind (orphaned references are excluded, not errors).
func (s *Store) ListByFaculty(ctx context.Context, facultyID primitive.ObjectID) ([]SectionWithSubject, error) {
	pipe := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"faculty_id": facultyID}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "subjects",
			"localField":   "subject_id",
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
	var out []SectionWithSubject
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CountAll returns the total number of sections on offer.
func (s *Store) CountAll(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
