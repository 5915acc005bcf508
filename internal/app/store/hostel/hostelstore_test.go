// internal/app/store/hostel/hostelstore_test.go
package hostelstore_test

import (
	"testing"

	hostelstore "github.com/dalemusser/campushub/internal/app/store/hostel"
	"github.com/dalemusser/campushub/internal/testutil"
)

func TestActiveResidence(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	store := hostelstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	student := fixtures.CreateStudent(ctx, "Stu", "Dent", "stu@test.com")
	block := fixtures.CreateHostelBlock(ctx, "A Block", 50, 37)
	oldRoom := fixtures.CreateHostelRoom(ctx, block.ID, "A-101")
	room := fixtures.CreateHostelRoom(ctx, block.ID, "A-204")

	fixtures.CreateHostelAssignment(ctx, oldRoom.ID, student.ID, "checked_out")
	fixtures.CreateHostelAssignment(ctx, room.ID, student.ID, "active")

	res, err := store.ActiveResidence(ctx, student.ID)
	if err != nil {
		t.Fatalf("ActiveResidence failed: %v", err)
	}
	if res == nil {
		t.Fatal("expected a residence, got nil")
	}
	if res.Block != "A Block" || res.Room != "A-204" {
		t.Errorf("got %+v, want A Block / A-204 (checked_out ignored)", res)
	}
}

func TestActiveResidence_None(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	store := hostelstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	student := fixtures.CreateStudent(ctx, "Day", "Scholar", "day@test.com")

	res, err := store.ActiveResidence(ctx, student.ID)
	if err != nil {
		t.Fatalf("ActiveResidence failed: %v", err)
	}
	if res != nil {
		t.Errorf("expected nil for a student without an assignment, got %+v", res)
	}
}

func TestListBlocks(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	store := hostelstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateHostelBlock(ctx, "B Block", 30, 25)
	fixtures.CreateHostelBlock(ctx, "A Block", 50, 37)

	blocks, err := store.ListBlocks(ctx)
	if err != nil {
		t.Fatalf("ListBlocks failed: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if blocks[0].Name != "A Block" || blocks[1].Name != "B Block" {
		t.Errorf("order: got %s, %s; want A Block, B Block", blocks[0].Name, blocks[1].Name)
	}
	if blocks[0].TotalRooms != 50 || blocks[0].OccupiedRooms != 37 {
		t.Errorf("stored counters: got %d/%d, want 50/37 as-is", blocks[0].TotalRooms, blocks[0].OccupiedRooms)
	}
}
