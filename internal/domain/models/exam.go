// internal/domain/models/exam.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exam is a scheduled examination for a subject. Exams are independent of
// sections; every student of the subject sits the same exam.
type Exam struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SubjectID    primitive.ObjectID `bson:"subject_id" json:"subject_id"`
	ExamDate     time.Time          `bson:"exam_date" json:"exam_date"`
	StartTime    string             `bson:"start_time" json:"start_time"`
	Duration     int                `bson:"duration" json:"duration"` // minutes
	ExamType     string             `bson:"exam_type" json:"exam_type"`
	RoomNumber   string             `bson:"room_number,omitempty" json:"room_number,omitempty"`
	MaxMarks     int                `bson:"max_marks,omitempty" json:"max_marks,omitempty"`
	Instructions string             `bson:"instructions,omitempty" json:"instructions,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
