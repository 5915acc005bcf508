// internal/domain/models/department.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Department groups subjects under one academic unit.
type Department struct {
	ID     primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name   string              `bson:"name" json:"name"`
	Code   string              `bson:"code" json:"code"`
	HeadID *primitive.ObjectID `bson:"head_id,omitempty" json:"head_id,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
