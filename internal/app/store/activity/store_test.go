// internal/app/store/activity/store_test.go
package activity_test

import (
	"testing"

	"github.com/dalemusser/campushub/internal/app/store/activity"
	"github.com/dalemusser/campushub/internal/testutil"
)

func TestRecordAndRecent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	store := activity.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	student := fixtures.CreateStudent(ctx, "Stu", "Dent", "stu@test.com")

	if err := store.Record(ctx, &student.ID, activity.TypeAdmission, "New admission processed"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := store.Record(ctx, nil, activity.TypeMaintenance, "Water supply restored in A Block"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	entries, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].ActivityType != activity.TypeMaintenance {
		t.Errorf("order: got %s first, want the newest entry", entries[0].ActivityType)
	}
}

func TestRecent_Limit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := activity.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < 15; i++ {
		if err := store.Record(ctx, nil, activity.TypeNotice, "Notice posted"); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	entries, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 10 {
		t.Errorf("got %d entries, want 10", len(entries))
	}
}
