// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/campushub/internal/app/system/status"
	"github.com/dalemusser/campushub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FloatPtr returns a pointer to v, for optional numeric fields.
func FloatPtr(v float64) *float64 {
	return &v
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

func (f *Fixtures) insert(ctx context.Context, coll string, doc any) {
	f.t.Helper()
	if _, err := f.db.Collection(coll).InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("failed to insert test %s: %v", coll, err)
	}
}

// CreateUser creates a test user with the given name, email, and role.
// An identity-provider account UUID is generated for every user.
func (f *Fixtures) CreateUser(ctx context.Context, firstName, lastName, email, role string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:         primitive.NewObjectID(),
		AccountID:  uuid.NewString(),
		FirstName:  firstName,
		LastName:   lastName,
		FullNameCI: text.Fold(firstName + " " + lastName),
		Email:      email,
		Role:       role,
		Status:     status.Active,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	f.insert(ctx, "users", user)
	return user
}

// CreateStudent creates a test student.
func (f *Fixtures) CreateStudent(ctx context.Context, firstName, lastName, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, firstName, lastName, email, "student")
}

// CreateFaculty creates a test faculty member.
func (f *Fixtures) CreateFaculty(ctx context.Context, firstName, lastName, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, firstName, lastName, email, "faculty")
}

// CreateAdmin creates a test admin.
func (f *Fixtures) CreateAdmin(ctx context.Context, firstName, lastName, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, firstName, lastName, email, "admin")
}

// CreateDepartment creates a test department.
func (f *Fixtures) CreateDepartment(ctx context.Context, name, code string) models.Department {
	f.t.Helper()

	dept := models.Department{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Code:      code,
		CreatedAt: time.Now().UTC(),
	}
	f.insert(ctx, "departments", dept)
	return dept
}

// CreateSubject creates a test subject, optionally under a department.
func (f *Fixtures) CreateSubject(ctx context.Context, name, code string, deptID *primitive.ObjectID) models.Subject {
	f.t.Helper()

	subject := models.Subject{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Code:         code,
		Credits:      3,
		Semester:     1,
		DepartmentID: deptID,
		CreatedAt:    time.Now().UTC(),
	}
	f.insert(ctx, "subjects", subject)
	return subject
}

// CreateSection creates a taught section of a subject with the given seat
// limit and lowercase weekday names.
func (f *Fixtures) CreateSection(ctx context.Context, subjectID, facultyID primitive.ObjectID, maxStudents int, days ...string) models.Section {
	f.t.Helper()

	section := models.Section{
		ID:           primitive.NewObjectID(),
		SubjectID:    subjectID,
		FacultyID:    facultyID,
		AcademicYear: "2025-2026",
		Semester:     "1",
		RoomNumber:   "101",
		ScheduleDays: days,
		ScheduleTime: "09:00-10:00",
		MaxStudents:  maxStudents,
		CreatedAt:    time.Now().UTC(),
	}
	f.insert(ctx, "sections", section)
	return section
}

// CreateEnrollment links a student to a section with the given status.
func (f *Fixtures) CreateEnrollment(ctx context.Context, sectionID, studentID primitive.ObjectID, enrollStatus string) models.Enrollment {
	f.t.Helper()

	enrollment := models.Enrollment{
		ID:         primitive.NewObjectID(),
		SectionID:  sectionID,
		StudentID:  studentID,
		Status:     enrollStatus,
		EnrolledAt: time.Now().UTC(),
	}
	f.insert(ctx, "enrollments", enrollment)
	return enrollment
}

// CreateAttendance records one attendance row for a student in a section.
func (f *Fixtures) CreateAttendance(ctx context.Context, sectionID, studentID primitive.ObjectID, attStatus string) models.AttendanceRecord {
	f.t.Helper()

	record := models.AttendanceRecord{
		ID:        primitive.NewObjectID(),
		SectionID: sectionID,
		StudentID: studentID,
		Date:      time.Now().UTC(),
		Status:    attStatus,
	}
	f.insert(ctx, "attendance_records", record)
	return record
}

// CreateGrade records one grade row. Pass nil for grade to create a
// pending (ungraded) row.
func (f *Fixtures) CreateGrade(ctx context.Context, sectionID, studentID primitive.ObjectID, grade *float64, maxGrade float64) models.GradeRecord {
	f.t.Helper()

	record := models.GradeRecord{
		ID:        primitive.NewObjectID(),
		SectionID: sectionID,
		StudentID: studentID,
		ExamType:  "midterm",
		Grade:     grade,
		MaxGrade:  maxGrade,
		CreatedAt: time.Now().UTC(),
	}
	f.insert(ctx, "grade_records", record)
	return record
}

// CreateExam schedules an exam for a subject at the given time.
func (f *Fixtures) CreateExam(ctx context.Context, subjectID primitive.ObjectID, at time.Time) models.Exam {
	f.t.Helper()

	exam := models.Exam{
		ID:        primitive.NewObjectID(),
		SubjectID: subjectID,
		ExamDate:  at,
		StartTime: "09:00",
		Duration:  120,
		ExamType:  "final",
		CreatedAt: time.Now().UTC(),
	}
	f.insert(ctx, "exams", exam)
	return exam
}

// CreateFee creates one fee row for a student with the given paid amount
// and creation time.
func (f *Fixtures) CreateFee(ctx context.Context, studentID primitive.ObjectID, paid float64, feeStatus string, createdAt time.Time) models.FeeRecord {
	f.t.Helper()

	fee := models.FeeRecord{
		ID:           primitive.NewObjectID(),
		StudentID:    studentID,
		TuitionFee:   50000,
		TotalAmount:  50000,
		PaidAmount:   paid,
		Status:       feeStatus,
		Semester:     "1",
		AcademicYear: "2025-2026",
		DueDate:      createdAt.AddDate(0, 1, 0),
		CreatedAt:    createdAt,
	}
	f.insert(ctx, "fees", fee)
	return fee
}

// CreateHostelBlock creates a block with the given stored room counters.
func (f *Fixtures) CreateHostelBlock(ctx context.Context, name string, totalRooms, occupiedRooms int) models.HostelBlock {
	f.t.Helper()

	block := models.HostelBlock{
		ID:            primitive.NewObjectID(),
		Name:          name,
		BlockType:     models.BlockTypeBoys,
		TotalRooms:    totalRooms,
		OccupiedRooms: occupiedRooms,
		CreatedAt:     time.Now().UTC(),
	}
	f.insert(ctx, "hostel_blocks", block)
	return block
}

// CreateHostelRoom creates a room inside a block.
func (f *Fixtures) CreateHostelRoom(ctx context.Context, blockID primitive.ObjectID, roomNumber string) models.HostelRoom {
	f.t.Helper()

	room := models.HostelRoom{
		ID:         primitive.NewObjectID(),
		BlockID:    blockID,
		RoomNumber: roomNumber,
		RoomType:   "double",
		Capacity:   2,
	}
	f.insert(ctx, "hostel_rooms", room)
	return room
}

// CreateHostelAssignment places a student in a room with the given status.
func (f *Fixtures) CreateHostelAssignment(ctx context.Context, roomID, studentID primitive.ObjectID, assignStatus string) models.HostelAssignment {
	f.t.Helper()

	assignment := models.HostelAssignment{
		ID:         primitive.NewObjectID(),
		StudentID:  studentID,
		RoomID:     roomID,
		Status:     assignStatus,
		AssignedAt: time.Now().UTC(),
	}
	f.insert(ctx, "hostel_assignments", assignment)
	return assignment
}

// CreateMessage sends a message between two people.
func (f *Fixtures) CreateMessage(ctx context.Context, senderID, recipientID primitive.ObjectID, subject string) models.Message {
	f.t.Helper()

	msg := models.Message{
		ID:          primitive.NewObjectID(),
		SenderID:    senderID,
		RecipientID: recipientID,
		Subject:     subject,
		Content:     "Test message content",
		CreatedAt:   time.Now().UTC(),
	}
	f.insert(ctx, "messages", msg)
	return msg
}

// CreateAnnouncement creates an announcement targeted at the given
// audiences.
func (f *Fixtures) CreateAnnouncement(ctx context.Context, title string, audience []string, active bool) models.Announcement {
	f.t.Helper()

	ann := models.Announcement{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Content:   "Test announcement content",
		AuthorID:  primitive.NewObjectID(),
		Audience:  audience,
		Priority:  "normal",
		Active:    active,
		CreatedAt: time.Now().UTC(),
	}
	f.insert(ctx, "announcements", ann)
	return ann
}
