// internal/app/store/metrics/service_test.go
package metricsstore_test

import (
	"strings"
	"testing"
	"time"

	academicsstore "github.com/dalemusser/campushub/internal/app/store/academics"
	metricsstore "github.com/dalemusser/campushub/internal/app/store/metrics"
	"github.com/dalemusser/campushub/internal/testutil"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newService(db *mongo.Database) *metricsstore.Service {
	return metricsstore.NewService(db, academicsstore.New(db), zap.NewNop())
}

func TestStudentSnapshot(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	faculty := fixtures.CreateFaculty(ctx, "Fay", "Cult", "fay@test.com")
	student := fixtures.CreateStudent(ctx, "Stu", "Dent", "stu@test.com")
	other := fixtures.CreateStudent(ctx, "Oth", "Er", "oth@test.com")

	subject := fixtures.CreateSubject(ctx, "Algorithms", "CS301", nil)
	section := fixtures.CreateSection(ctx, subject.ID, faculty.ID, 40, "monday")
	fixtures.CreateEnrollment(ctx, section.ID, student.ID, "active")
	fixtures.CreateEnrollment(ctx, section.ID, other.ID, "active")

	// 3 of 4 sessions present: 75% in the class.
	fixtures.CreateAttendance(ctx, section.ID, student.ID, "present")
	fixtures.CreateAttendance(ctx, section.ID, student.ID, "present")
	fixtures.CreateAttendance(ctx, section.ID, student.ID, "present")
	fixtures.CreateAttendance(ctx, section.ID, student.ID, "absent")

	// 8/10 and 9/10 graded: CGPA 8.5 on the 10-point scale.
	fixtures.CreateGrade(ctx, section.ID, student.ID, testutil.FloatPtr(8), 10)
	fixtures.CreateGrade(ctx, section.ID, student.ID, testutil.FloatPtr(9), 10)

	// exam_date carries no time of day; an exam dated today stays upcoming
	// for the whole day.
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	fixtures.CreateExam(ctx, subject.ID, now.Add(48*time.Hour))
	fixtures.CreateExam(ctx, subject.ID, today)
	fixtures.CreateExam(ctx, subject.ID, now.Add(-48*time.Hour))

	fixtures.CreateFee(ctx, student.ID, 20000, "partial", now.Add(-time.Hour))
	fixtures.CreateFee(ctx, student.ID, 50000, "paid", now)

	fixtures.CreateAnnouncement(ctx, "For Students", []string{"student"}, true)
	fixtures.CreateAnnouncement(ctx, "For Everyone", []string{"all"}, true)
	fixtures.CreateAnnouncement(ctx, "For Faculty", []string{"faculty"}, true)
	fixtures.CreateAnnouncement(ctx, "Retired", []string{"student"}, false)

	block := fixtures.CreateHostelBlock(ctx, "A Block", 50, 37)
	room := fixtures.CreateHostelRoom(ctx, block.ID, "A-204")
	fixtures.CreateHostelAssignment(ctx, room.ID, student.ID, "active")

	snap := newService(db).StudentSnapshot(ctx, student.ID, uuid.MustParse(student.AccountID))

	if len(snap.Classes) != 1 {
		t.Fatalf("Classes: got %d, want 1", len(snap.Classes))
	}
	if snap.Classes[0].Subject.Code != "CS301" {
		t.Errorf("Classes[0] subject: got %s, want CS301", snap.Classes[0].Subject.Code)
	}
	if snap.Classes[0].AttendancePercent != 75 {
		t.Errorf("Classes[0].AttendancePercent: got %v, want 75", snap.Classes[0].AttendancePercent)
	}
	if snap.CGPA != 8.5 {
		t.Errorf("CGPA: got %v, want 8.5", snap.CGPA)
	}
	if snap.AttendancePercent != 75 {
		t.Errorf("AttendancePercent: got %v, want 75", snap.AttendancePercent)
	}
	if len(snap.UpcomingExams) != 2 {
		t.Fatalf("UpcomingExams: got %d, want 2 (today included, past excluded)", len(snap.UpcomingExams))
	}
	if !snap.UpcomingExams[0].ExamDate.Equal(today) {
		t.Errorf("UpcomingExams[0].ExamDate: got %v, want today's exam first", snap.UpcomingExams[0].ExamDate)
	}
	if snap.LatestFee == nil || snap.LatestFee.Status != "paid" {
		t.Errorf("LatestFee: got %+v, want the newest row with status paid", snap.LatestFee)
	}
	if snap.Residence == nil {
		t.Fatal("Residence: got nil, want active placement")
	}
	if snap.Residence.Block != "A Block" || snap.Residence.Room != "A-204" {
		t.Errorf("Residence: got %+v, want A Block / A-204", snap.Residence)
	}
	if len(snap.Announcements) != 2 {
		t.Fatalf("Announcements: got %d, want 2 (student + all)", len(snap.Announcements))
	}
	for _, ann := range snap.Announcements {
		if strings.Contains(ann.Title, "Faculty") || strings.Contains(ann.Title, "Retired") {
			t.Errorf("Announcements includes %q, want it excluded", ann.Title)
		}
	}
}

func TestStudentSnapshot_NoRecords(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	student := fixtures.CreateStudent(ctx, "New", "Comer", "new@test.com")

	snap := newService(db).StudentSnapshot(ctx, student.ID, uuid.MustParse(student.AccountID))

	if len(snap.Classes) != 0 {
		t.Errorf("Classes: got %d, want 0", len(snap.Classes))
	}
	if snap.CGPA != 0 {
		t.Errorf("CGPA with no graded rows: got %v, want 0", snap.CGPA)
	}
	if snap.AttendancePercent != 0 {
		t.Errorf("AttendancePercent with no rows: got %v, want 0", snap.AttendancePercent)
	}
	if snap.Residence != nil {
		t.Errorf("Residence: got %+v, want nil for no assignment", snap.Residence)
	}
	if snap.LatestFee != nil {
		t.Errorf("LatestFee: got %+v, want nil for no fee rows", snap.LatestFee)
	}
}

func TestFacultySnapshot(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	faculty := fixtures.CreateFaculty(ctx, "Fay", "Cult", "fay@test.com")
	s1 := fixtures.CreateStudent(ctx, "One", "Student", "s1@test.com")
	s2 := fixtures.CreateStudent(ctx, "Two", "Student", "s2@test.com")
	s3 := fixtures.CreateStudent(ctx, "Three", "Student", "s3@test.com")

	today := strings.ToLower(time.Now().Weekday().String())
	otherDay := "monday"
	if today == otherDay {
		otherDay = "tuesday"
	}
	subjA := fixtures.CreateSubject(ctx, "Algorithms", "CS301", nil)
	subjB := fixtures.CreateSubject(ctx, "Databases", "CS305", nil)
	secA := fixtures.CreateSection(ctx, subjA.ID, faculty.ID, 40, today)
	secB := fixtures.CreateSection(ctx, subjB.ID, faculty.ID, 40, otherDay)

	fixtures.CreateEnrollment(ctx, secA.ID, s1.ID, "active")
	fixtures.CreateEnrollment(ctx, secA.ID, s2.ID, "active")
	fixtures.CreateEnrollment(ctx, secA.ID, s3.ID, "dropped")
	fixtures.CreateEnrollment(ctx, secB.ID, s1.ID, "active")

	fixtures.CreateAttendance(ctx, secA.ID, s1.ID, "present")
	fixtures.CreateAttendance(ctx, secA.ID, s2.ID, "absent")

	// Graded 7, 8, 9: class average reports as exactly 8.0.
	fixtures.CreateGrade(ctx, secA.ID, s1.ID, testutil.FloatPtr(7), 10)
	fixtures.CreateGrade(ctx, secA.ID, s2.ID, testutil.FloatPtr(8), 10)
	fixtures.CreateGrade(ctx, secA.ID, s1.ID, testutil.FloatPtr(9), 10)
	fixtures.CreateGrade(ctx, secB.ID, s1.ID, nil, 10)

	fixtures.CreateMessage(ctx, s1.ID, faculty.ID, "Question about homework")
	fixtures.CreateMessage(ctx, s1.ID, s2.ID, "Study group notes")

	snap := newService(db).FacultySnapshot(ctx, faculty.ID)

	if len(snap.Classes) != 2 {
		t.Fatalf("Classes: got %d, want 2", len(snap.Classes))
	}
	// Sections sort by subject code: CS301 first.
	a := snap.Classes[0]
	if a.Subject.Code != "CS301" {
		t.Fatalf("Classes[0] subject: got %s, want CS301", a.Subject.Code)
	}
	if a.Enrolled != 2 {
		t.Errorf("Enrolled: got %d, want 2 (dropped rows excluded)", a.Enrolled)
	}
	if a.AttendancePercent != 50 {
		t.Errorf("AttendancePercent: got %v, want 50", a.AttendancePercent)
	}
	if a.GradeAverage != 8.0 {
		t.Errorf("GradeAverage: got %v, want 8.0", a.GradeAverage)
	}
	if b := snap.Classes[1]; b.GradeAverage != 0 {
		t.Errorf("GradeAverage with only pending rows: got %v, want 0", b.GradeAverage)
	}
	if snap.TotalStudents != 3 {
		t.Errorf("TotalStudents: got %d, want 3", snap.TotalStudents)
	}
	if len(snap.TodaySchedule) != 1 || snap.TodaySchedule[0].Subject.Code != "CS301" {
		t.Errorf("TodaySchedule: got %+v, want just CS301", snap.TodaySchedule)
	}
	if snap.PendingGrades != 1 {
		t.Errorf("PendingGrades: got %d, want 1", snap.PendingGrades)
	}
	if len(snap.Messages) != 1 {
		t.Fatalf("Messages: got %d, want 1", len(snap.Messages))
	}
	if snap.Messages[0].Sender.DisplayName() != "One Student" {
		t.Errorf("Messages[0] sender: got %q, want %q", snap.Messages[0].Sender.DisplayName(), "One Student")
	}
}

func TestAdminSnapshot(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateAdmin(ctx, "Ad", "Min", "admin@test.com")
	faculty := fixtures.CreateFaculty(ctx, "Fay", "Cult", "fay@test.com")
	s1 := fixtures.CreateStudent(ctx, "One", "Student", "s1@test.com")
	s2 := fixtures.CreateStudent(ctx, "Two", "Student", "s2@test.com")

	dept := fixtures.CreateDepartment(ctx, "Computer Science", "CS")
	subj := fixtures.CreateSubject(ctx, "Algorithms", "CS301", &dept.ID)
	sec := fixtures.CreateSection(ctx, subj.ID, faculty.ID, 40, "monday")
	fixtures.CreateEnrollment(ctx, sec.ID, s1.ID, "active")
	fixtures.CreateEnrollment(ctx, sec.ID, s2.ID, "dropped")
	fixtures.CreateDepartment(ctx, "History", "HIS")

	fixtures.CreateAttendance(ctx, sec.ID, s1.ID, "present")
	fixtures.CreateAttendance(ctx, sec.ID, s2.ID, "absent")
	fixtures.CreateAttendance(ctx, sec.ID, s1.ID, "present")
	fixtures.CreateAttendance(ctx, sec.ID, s2.ID, "late")

	now := time.Now().UTC()
	fixtures.CreateFee(ctx, s1.ID, 5000, "partial", now)
	fixtures.CreateFee(ctx, s2.ID, 3000, "partial", now.AddDate(0, 0, -1))

	fixtures.CreateHostelBlock(ctx, "A Block", 50, 37)
	fixtures.CreateHostelBlock(ctx, "B Block", 30, 25)
	fixtures.CreateHostelBlock(ctx, "C Block", 20, 20)

	snap := newService(db).AdminSnapshot(ctx)

	if snap.TotalStudents != 2 {
		t.Errorf("TotalStudents: got %d, want 2", snap.TotalStudents)
	}
	if snap.TotalFaculty != 1 {
		t.Errorf("TotalFaculty: got %d, want 1", snap.TotalFaculty)
	}
	if snap.TotalAdmins != 1 {
		t.Errorf("TotalAdmins: got %d, want 1", snap.TotalAdmins)
	}
	if snap.TotalSections != 1 {
		t.Errorf("TotalSections: got %d, want 1", snap.TotalSections)
	}
	if snap.FeesCollectedToday != 5000 {
		t.Errorf("FeesCollectedToday: got %v, want 5000 (yesterday excluded)", snap.FeesCollectedToday)
	}
	if snap.AttendancePercent != 50 {
		t.Errorf("AttendancePercent: got %v, want 50", snap.AttendancePercent)
	}

	if len(snap.Blocks) != 3 {
		t.Fatalf("Blocks: got %d, want 3", len(snap.Blocks))
	}
	wantVacant := []int{13, 5, 0}
	for i, want := range wantVacant {
		if snap.Blocks[i].Vacant != want {
			t.Errorf("Blocks[%d].Vacant: got %d, want %d", i, snap.Blocks[i].Vacant, want)
		}
	}
	if snap.VacantRooms != 18 {
		t.Errorf("VacantRooms: got %d, want 18", snap.VacantRooms)
	}

	if len(snap.Departments) != 2 {
		t.Fatalf("Departments: got %d, want 2", len(snap.Departments))
	}
	cs := snap.Departments[0]
	if cs.Name != "Computer Science" {
		t.Fatalf("Departments[0]: got %s, want Computer Science", cs.Name)
	}
	if cs.Students != 1 {
		t.Errorf("CS students: got %d, want 1 (dropped rows excluded)", cs.Students)
	}
	if cs.Capacity != 40 {
		t.Errorf("CS capacity: got %d, want 40", cs.Capacity)
	}
	if his := snap.Departments[1]; his.Students != 0 || his.Capacity != 0 {
		t.Errorf("History load: got %d/%d, want 0/0", his.Students, his.Capacity)
	}
}

func TestAdminSnapshot_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	snap := newService(db).AdminSnapshot(ctx)

	if snap.TotalStudents != 0 || snap.TotalFaculty != 0 || snap.TotalAdmins != 0 {
		t.Errorf("role counts: got %d/%d/%d, want all 0",
			snap.TotalStudents, snap.TotalFaculty, snap.TotalAdmins)
	}
	if snap.FeesCollectedToday != 0 {
		t.Errorf("FeesCollectedToday: got %v, want 0", snap.FeesCollectedToday)
	}
	if snap.AttendancePercent != 0 {
		t.Errorf("AttendancePercent on empty data: got %v, want 0", snap.AttendancePercent)
	}
	if snap.VacantRooms != 0 {
		t.Errorf("VacantRooms: got %d, want 0", snap.VacantRooms)
	}
}
