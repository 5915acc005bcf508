// internal/domain/models/fee.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FeeRecord is one billing row for a student. The most recent row by
// CreatedAt is the student's current fee status.
type FeeRecord struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID    primitive.ObjectID `bson:"student_id" json:"student_id"`
	TuitionFee   float64            `bson:"tuition_fee" json:"tuition_fee"`
	HostelFee    float64            `bson:"hostel_fee,omitempty" json:"hostel_fee,omitempty"`
	OtherFees    float64            `bson:"other_fees,omitempty" json:"other_fees,omitempty"`
	TotalAmount  float64            `bson:"total_amount" json:"total_amount"`
	PaidAmount   float64            `bson:"paid_amount" json:"paid_amount"`
	Status       string             `bson:"status" json:"status"` // "paid" | "partial" | "pending" | "overdue"
	Semester     string             `bson:"semester" json:"semester"`
	AcademicYear string             `bson:"academic_year" json:"academic_year"`
	DueDate      time.Time          `bson:"due_date" json:"due_date"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
