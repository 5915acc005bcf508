// internal/domain/models/grade.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GradeRecord is one student's grade for one assessment in a section.
//
// A nil Grade means "not yet graded". Pending rows are excluded from
// averages, never treated as zero.
type GradeRecord struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	SectionID primitive.ObjectID  `bson:"section_id" json:"section_id"`
	StudentID primitive.ObjectID  `bson:"student_id" json:"student_id"`
	ExamType  string              `bson:"exam_type" json:"exam_type"`
	Grade     *float64            `bson:"grade,omitempty" json:"grade,omitempty"`
	MaxGrade  float64             `bson:"max_grade" json:"max_grade"`
	GradedBy  *primitive.ObjectID `bson:"graded_by,omitempty" json:"graded_by,omitempty"`
	GradedAt  *time.Time          `bson:"graded_at,omitempty" json:"graded_at,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
