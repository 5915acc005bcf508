// internal/domain/models/enrollment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Enrollment is the authoritative join between students and sections.
// Only rows with status "active" count toward enrollment totals.
type Enrollment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SectionID primitive.ObjectID `bson:"section_id" json:"section_id"`
	StudentID primitive.ObjectID `bson:"student_id" json:"student_id"`
	Status    string             `bson:"status" json:"status"` // "active" | "dropped" | "completed"

	EnrolledAt time.Time `bson:"enrolled_at" json:"enrolled_at"`
}
