// internal/app/store/attendance/attendancestore.go
package attendancestore

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
	return &Store{c: db.Collection("attendance_records")}
}

// Tally is a present/total pair for one attendance scope. Percentages are
// derived by the metrics layer, never here, so the zero-denominator policy
// lives in exactly one place.
type Tally struct {
	Present int64
	Total   int64
}

// TallyByStudentSection counts one student's attendance rows in one section.
func (s *Store) TallyByStudentSection(ctx context.Context, studentID, sectionID primitive.ObjectID) (Tally, error) {
	return s.tally(ctx, bson.M{"student_id": studentID, "section_id": sectionID})
}

// TallyBySection counts attendance rows for all students of one section.
func (s *Store) TallyBySection(ctx context.Context, sectionID primitive.ObjectID) (Tally, error) {
	return s.tally(ctx, bson.M{"section_id": sectionID})
}

// TallyAll counts every attendance row in the institution.
func (s *Store) TallyAll(ctx context.Context) (Tally, error) {
	return s.tally(ctx, bson.M{})
}

func (s *Store) tally(ctx context.Context, filter bson.M) (Tally, error) {
	total, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return Tally{}, err
	}
	presentFilter := bson.M{"status": models.AttendancePresent}
	for k, v := range filter {
		presentFilter[k] = v
	}
	present, err := s.c.CountDocuments(ctx, presentFilter)
	if err != nil {
		return Tally{}, err
	}
	return Tally{Present: present, Total: total}, nil
}
