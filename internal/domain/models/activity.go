// internal/domain/models/activity.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityEntry is one row in the institution-wide activity log.
type ActivityEntry struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID       *primitive.ObjectID `bson:"user_id,omitempty" json:"user_id,omitempty"`
	ActivityType string              `bson:"activity_type" json:"activity_type"`
	Description  string              `bson:"description" json:"description"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
