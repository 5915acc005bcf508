// internal/domain/models/subject.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subject is a course of study; sections are the taught instances of it.
type Subject struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name         string              `bson:"name" json:"name"`
	Code         string              `bson:"code" json:"code"`
	Credits      int                 `bson:"credits" json:"credits"`
	Semester     int                 `bson:"semester" json:"semester"`
	DepartmentID *primitive.ObjectID `bson:"department_id,omitempty" json:"department_id,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
