// internal/app/store/hostel/hostelstore.go
package hostelstore

import (
	"context"

	"github.com/dalemusser/campushub/internal/app/system/status"
	"github.com/dalemusser/campushub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	assignments *mongo.Collection
	blocks      *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		assignments: db.Collection("hostel_assignments"),
		blocks:      db.Collection("hostel_blocks"),
	}
}

// Residence is a student's active room placement, joined through to the
// room and its block.
type Residence struct {
	Block string `bson:"block"`
	Room  string `bson:"room"`
}

// ActiveResidence returns the student's active hostel placement, or nil
// when the student has no active assignment. Callers must preserve the
// nil-vs-present distinction; it is how "no assignment" is reported.
func (s *Store) ActiveResidence(ctx context.Context, studentID primitive.ObjectID) (*Residence, error) {
	pipe := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"student_id": studentID, "status": status.Active}}},
		bson.D{{Key: "$limit", Value: 1}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "hostel_rooms",
			"localField":   "room_id",
			"foreignField": "_id",
			"as":           "room",
		}}},
		bson.D{{Key: "$unwind", Value: "$room"}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "hostel_blocks",
			"localField":   "room.block_id",
			"foreignField": "_id",
			"as":           "room_block",
		}}},
		bson.D{{Key: "$unwind", Value: "$room_block"}},
		bson.D{{Key: "$project", Value: bson.M{
			"block": "$room_block.name",
			"room":  "$room.room_number",
		}}},
	}
	cur, err := s.assignments.Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []Residence
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return &out[0], nil
}

// ListBlocks returns all hostel blocks ordered by name. Occupancy figures
// are the blocks' own stored counters, reported as-is.
func (s *Store) ListBlocks(ctx context.Context) ([]models.HostelBlock, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := s.blocks.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var blocks []models.HostelBlock
	if err := cur.All(ctx, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}
