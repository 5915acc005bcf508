// internal/domain/models/hostel.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Hostel block types.
const (
	BlockTypeBoys  = "boys"
	BlockTypeGirls = "girls"
)

// HostelBlock is one residence building. TotalRooms and OccupiedRooms are
// the block's own stored counters, maintained by the housing office; they
// are reported as-is, not recomputed from room documents.
type HostelBlock struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	BlockType     string             `bson:"block_type,omitempty" json:"block_type,omitempty"`
	TotalRooms    int                `bson:"total_rooms" json:"total_rooms"`
	OccupiedRooms int                `bson:"occupied_rooms" json:"occupied_rooms"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// HostelRoom is one room inside a block.
type HostelRoom struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BlockID       primitive.ObjectID `bson:"block_id" json:"block_id"`
	RoomNumber    string             `bson:"room_number" json:"room_number"`
	RoomType      string             `bson:"room_type,omitempty" json:"room_type,omitempty"`
	Capacity      int                `bson:"capacity" json:"capacity"`
	OccupiedCount int                `bson:"occupied_count" json:"occupied_count"`
}

// HostelAssignment places a student in a room. A student has at most one
// assignment with status "active".
type HostelAssignment struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID  primitive.ObjectID `bson:"student_id" json:"student_id"`
	RoomID     primitive.ObjectID `bson:"room_id" json:"room_id"`
	Status     string             `bson:"status" json:"status"` // "active" | "checked_out"
	AssignedAt time.Time          `bson:"assigned_at" json:"assigned_at"`
	CheckoutAt *time.Time         `bson:"checkout_at,omitempty" json:"checkout_at,omitempty"`
}
