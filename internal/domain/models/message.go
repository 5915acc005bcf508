// internal/domain/models/message.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is a directed message between two people.
type Message struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	SenderID    primitive.ObjectID  `bson:"sender_id" json:"sender_id"`
	RecipientID primitive.ObjectID  `bson:"recipient_id" json:"recipient_id"`
	Subject     string              `bson:"subject" json:"subject"`
	Content     string              `bson:"content" json:"content"`
	IsRead      bool                `bson:"is_read" json:"is_read"`
	RepliedTo   *primitive.ObjectID `bson:"replied_to,omitempty" json:"replied_to,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
