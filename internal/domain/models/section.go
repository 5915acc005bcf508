// internal/domain/models/section.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Section is one taught instance of a subject: a faculty member, a room,
// and a weekly schedule for a given semester.
//
// ScheduleDays holds lowercase weekday names ("monday", "tuesday", ...).
type Section struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SubjectID    primitive.ObjectID `bson:"subject_id" json:"subject_id"`
	FacultyID    primitive.ObjectID `bson:"faculty_id" json:"faculty_id"`
	AcademicYear string             `bson:"academic_year" json:"academic_year"`
	Semester     string             `bson:"semester" json:"semester"`
	RoomNumber   string             `bson:"room_number,omitempty" json:"room_number,omitempty"`
	ScheduleDays []string           `bson:"schedule_days,omitempty" json:"schedule_days,omitempty"`
	ScheduleTime string             `bson:"schedule_time,omitempty" json:"schedule_time,omitempty"`
	MaxStudents  int                `bson:"max_students,omitempty" json:"max_students,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
