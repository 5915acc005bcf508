// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents students, faculty, and admins.
//
// NOTE:
//   - AccountID is the identity-provider UUID for this person. It is the key
//     the computed-aggregate procedures (CGPA, attendance percentage) are
//     invoked with and is distinct from the Mongo document ID.
//   - Section enrollment is not embedded on User; use the enrollments
//     collection to discover a student's sections.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AccountID  string             `bson:"account_id" json:"account_id"` // identity-provider UUID
	FirstName  string             `bson:"first_name" json:"first_name"`
	LastName   string             `bson:"last_name" json:"last_name"`
	FullNameCI string             `bson:"full_name_ci" json:"full_name_ci"` // lowercase, diacritics-stripped
	Email      string             `bson:"email" json:"email"`
	Role       string             `bson:"role" json:"role"` // student | faculty | admin
	Status     string             `bson:"status,omitempty" json:"status,omitempty"`
	StudentID  *string            `bson:"student_id,omitempty" json:"student_id,omitempty"`
	EmployeeID *string            `bson:"employee_id,omitempty" json:"employee_id,omitempty"`
	Phone      string             `bson:"phone,omitempty" json:"phone,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// DisplayName returns the name shown in feeds and message lists.
func (u User) DisplayName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
