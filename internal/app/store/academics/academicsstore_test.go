// internal/app/store/academics/academicsstore_test.go
package academicsstore_test

import (
	"testing"

	academicsstore "github.com/dalemusser/campushub/internal/app/store/academics"
	"github.com/dalemusser/campushub/internal/testutil"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStudentCGPA(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	store := academicsstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	student := fixtures.CreateStudent(ctx, "Stu", "Dent", "stu@test.com")
	sectionID := primitive.NewObjectID()

	// 8/10 and 45/50 on the 10-point scale: (8.0 + 9.0) / 2 = 8.5.
	fixtures.CreateGrade(ctx, sectionID, student.ID, testutil.FloatPtr(8), 10)
	fixtures.CreateGrade(ctx, sectionID, student.ID, testutil.FloatPtr(45), 50)
	// Pending rows are excluded.
	fixtures.CreateGrade(ctx, sectionID, student.ID, nil, 10)

	got, err := store.StudentCGPA(ctx, uuid.MustParse(student.AccountID))
	if err != nil {
		t.Fatalf("StudentCGPA failed: %v", err)
	}
	if got != 8.5 {
		t.Errorf("CGPA: got %v, want 8.5", got)
	}
}

func TestStudentCGPA_NoGradedRows(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	store := academicsstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	student := fixtures.CreateStudent(ctx, "New", "Comer", "new@test.com")

	got, err := store.StudentCGPA(ctx, uuid.MustParse(student.AccountID))
	if err != nil {
		t.Fatalf("StudentCGPA failed: %v", err)
	}
	if got != 0 {
		t.Errorf("CGPA with no rows: got %v, want 0", got)
	}
}

func TestStudentCGPA_UnknownAccount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := academicsstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.StudentCGPA(ctx, uuid.New()); err == nil {
		t.Error("expected an error for an account no user carries")
	}
}

func TestStudentAttendancePercent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	store := academicsstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	student := fixtures.CreateStudent(ctx, "Stu", "Dent", "stu@test.com")
	sectionID := primitive.NewObjectID()

	fixtures.CreateAttendance(ctx, sectionID, student.ID, "present")
	fixtures.CreateAttendance(ctx, sectionID, student.ID, "present")
	fixtures.CreateAttendance(ctx, sectionID, student.ID, "absent")

	got, err := store.StudentAttendancePercent(ctx, uuid.MustParse(student.AccountID))
	if err != nil {
		t.Fatalf("StudentAttendancePercent failed: %v", err)
	}
	if got != 67 {
		t.Errorf("attendance: got %v, want 67", got)
	}
}

func TestStudentAttendancePercent_NoRows(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	store := academicsstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	student := fixtures.CreateStudent(ctx, "New", "Comer", "new@test.com")

	got, err := store.StudentAttendancePercent(ctx, uuid.MustParse(student.AccountID))
	if err != nil {
		t.Fatalf("StudentAttendancePercent failed: %v", err)
	}
	if got != 0 {
		t.Errorf("attendance with no rows: got %v, want 0", got)
	}
}
