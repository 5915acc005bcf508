// internal/app/store/academics/academicsstore.go

// Package academicsstore owns the computed-aggregate procedures: cumulative
// statistics keyed by a person's identity-provider UUID rather than a
// document ID. Dashboards invoke these as an opaque capability and never
// recompute the figures from raw rows themselves.
package academicsstore

import (
	"context"
	"math"

	"github.com/dalemusser/campushub/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	users      *mongo.Collection
	grades     *mongo.Collection
	attendance *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		users:      db.Collection("users"),
		grades:     db.Collection("grade_records"),
		attendance: db.Collection("attendance_records"),
	}
}

// StudentCGPA returns the student's cumulative grade point average on a
// 10-point scale: the mean of grade/max_grade*10 over every graded row,
// rounded to two decimals. A student with no graded rows scores 0.
func (s *Store) StudentCGPA(ctx context.Context, accountID uuid.UUID) (float64, error) {
	studentID, err := s.resolveAccount(ctx, accountID)
	if err != nil {
		return 0, err
	}

	pipe := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"student_id": studentID,
			"grade":      bson.M{"$ne": nil},
			"max_grade":  bson.M{"$gt": 0},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": nil,
			"gpa": bson.M{"$avg": bson.M{
				"$multiply": bson.A{bson.M{"$divide": bson.A{"$grade", "$max_grade"}}, 10},
			}},
		}}},
	}
	cur, err := s.grades.Aggregate(ctx, pipe)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var out []struct {
		GPA float64 `bson:"gpa"`
	}
	if err := cur.All(ctx, &out); err != nil {
		return 0, err
	}
	if len(out) == 0 {
		return 0, nil
	}
	return math.Round(out[0].GPA*100) / 100, nil
}

// StudentAttendancePercent returns the student's attendance percentage over
// every attendance row on record, rounded to the nearest integer. A student
// with no rows scores 0.
func (s *Store) StudentAttendancePercent(ctx context.Context, accountID uuid.UUID) (float64, error) {
	studentID, err := s.resolveAccount(ctx, accountID)
	if err != nil {
		return 0, err
	}

	total, err := s.attendance.CountDocuments(ctx, bson.M{"student_id": studentID})
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}
	present, err := s.attendance.CountDocuments(ctx, bson.M{
		"student_id": studentID,
		"status":     models.AttendancePresent,
	})
	if err != nil {
		return 0, err
	}
	return math.Round(float64(present) / float64(total) * 100), nil
}

// resolveAccount maps an identity-provider UUID to the person's document ID.
func (s *Store) resolveAccount(ctx context.Context, accountID uuid.UUID) (primitive.ObjectID, error) {
	var u struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	err := s.users.FindOne(ctx, bson.M{"account_id": accountID.String()}).Decode(&u)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return u.ID, nil
}
