// internal/domain/models/announcement.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AudienceAll is the wildcard audience tag; announcements carrying it
// appear in every role's feed.
const AudienceAll = "all"

// Announcement is a broadcast notice targeted at one or more role audiences
// ("student", "faculty", "all", ...).
type Announcement struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	AuthorID  primitive.ObjectID `bson:"author_id" json:"author_id"`
	Audience  []string           `bson:"target_audience" json:"target_audience"`
	Priority  string             `bson:"priority,omitempty" json:"priority,omitempty"`
	Active    bool               `bson:"is_active" json:"is_active"`
	ExpiresAt *time.Time         `bson:"expires_at,omitempty" json:"expires_at,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
