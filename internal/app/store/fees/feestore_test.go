// internal/app/store/fees/feestore_test.go
package feestore_test

import (
	"testing"
	"time"

	feestore "github.com/dalemusser/campushub/internal/app/store/fees"
	"github.com/dalemusser/campushub/internal/testutil"
)

func TestLatestByStudent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	store := feestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	student := fixtures.CreateStudent(ctx, "Stu", "Dent", "stu@test.com")
	now := time.Now().UTC()

	fixtures.CreateFee(ctx, student.ID, 10000, "partial", now.AddDate(0, -1, 0))
	fixtures.CreateFee(ctx, student.ID, 50000, "paid", now)

	fee, err := store.LatestByStudent(ctx, student.ID)
	if err != nil {
		t.Fatalf("LatestByStudent failed: %v", err)
	}
	if fee == nil {
		t.Fatal("expected a fee row, got nil")
	}
	if fee.Status != "paid" {
		t.Errorf("status: got %q, want %q (newest row wins)", fee.Status, "paid")
	}
}

func TestLatestByStudent_NoRows(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	store := feestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	student := fixtures.CreateStudent(ctx, "New", "Comer", "new@test.com")

	fee, err := store.LatestByStudent(ctx, student.ID)
	if err != nil {
		t.Fatalf("LatestByStudent failed: %v", err)
	}
	if fee != nil {
		t.Errorf("expected nil for a student with no fee rows, got %+v", fee)
	}
}

func TestCollectedOn(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	store := feestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	student := fixtures.CreateStudent(ctx, "Stu", "Dent", "stu@test.com")

	// Fixed day so the UTC boundary behavior is deterministic.
	day := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	startOfDay := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	fixtures.CreateFee(ctx, student.ID, 5000, "partial", startOfDay)
	fixtures.CreateFee(ctx, student.ID, 2500, "partial", startOfDay.Add(23*time.Hour+59*time.Minute))
	fixtures.CreateFee(ctx, student.ID, 9999, "partial", startOfDay.Add(-time.Second))
	fixtures.CreateFee(ctx, student.ID, 1234, "partial", startOfDay.Add(24*time.Hour))

	sum, err := store.CollectedOn(ctx, day)
	if err != nil {
		t.Fatalf("CollectedOn failed: %v", err)
	}
	if sum != 7500 {
		t.Errorf("sum: got %v, want 7500 (rows outside the UTC day excluded)", sum)
	}
}

func TestCollectedOn_NoRows(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := feestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	sum, err := store.CollectedOn(ctx, time.Now().UTC())
	if err != nil {
		t.Fatalf("CollectedOn failed: %v", err)
	}
	if sum != 0 {
		t.Errorf("sum: got %v, want 0", sum)
	}
}
