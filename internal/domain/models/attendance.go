// internal/domain/models/attendance.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attendance statuses. Only "present" counts toward attendance percentages.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
)

// AttendanceRecord is one student's attendance for one section session.
type AttendanceRecord struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	SectionID primitive.ObjectID  `bson:"section_id" json:"section_id"`
	StudentID primitive.ObjectID  `bson:"student_id" json:"student_id"`
	Date      time.Time           `bson:"date" json:"date"`
	Status    string              `bson:"status" json:"status"`
	MarkedBy  *primitive.ObjectID `bson:"marked_by,omitempty" json:"marked_by,omitempty"`
	MarkedAt  *time.Time          `bson:"marked_at,omitempty" json:"marked_at,omitempty"`
}
