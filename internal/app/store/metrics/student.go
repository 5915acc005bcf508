// internal/app/store/metrics/student.go
package metricsstore

import (
	"context"
	"time"

	enrollmentstore "github.com/dalemusser/campushub/internal/app/store/enrollments"
	examstore "github.com/dalemusser/campushub/internal/app/store/exams"
	hostelstore "github.com/dalemusser/campushub/internal/app/store/hostel"
	"github.com/dalemusser/campushub/internal/app/system/authz"
	"github.com/dalemusser/campushub/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

// ClassStanding is one enrolled class annotated with the student's
// attendance percentage in that class.
type ClassStanding struct {
	enrollmentstore.EnrolledSection
	AttendancePercent int `json:"attendance_percent"`
}

// StudentSnapshot is everything the student dashboard shows.
//
// Residence and LatestFee are nil when the student has no active hostel
// assignment or no fee record; nil is how "none" is reported and must
// not be collapsed into a zero-valued struct.
type StudentSnapshot struct {
	Classes           []ClassStanding             `json:"classes"`
	CGPA              float64                     `json:"cgpa"`
	AttendancePercent float64                     `json:"attendance_percent"`
	UpcomingExams     []examstore.ExamWithSubject `json:"upcoming_exams"`
	Residence         *hostelstore.Residence      `json:"residence"`
	LatestFee         *models.FeeRecord           `json:"latest_fee"`
	Announcements     []models.Announcement       `json:"announcements"`
}

// StudentSnapshot gathers the student dashboard in one call. Sub-fetches
// run concurrently; each failure is absorbed and leaves its field zero.
func (s *Service) StudentSnapshot(ctx context.Context, studentID primitive.ObjectID, accountID uuid.UUID) StudentSnapshot {
	var snap StudentSnapshot
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := s.enrollments.ListActiveByStudent(ctx, studentID)
		if err != nil {
			s.absorb("classes", err)
			return nil
		}
		classes := make([]ClassStanding, len(rows))
		cg, cctx := errgroup.WithContext(ctx)
		for i := range rows {
			i := i
			cg.Go(func() error {
				classes[i].EnrolledSection = rows[i]
				t, err := s.attendance.TallyByStudentSection(cctx, studentID, rows[i].Section.ID)
				if err != nil {
					s.absorb("classes.attendance", err)
					return nil
				}
				classes[i].AttendancePercent = percent(t.Present, t.Total)
				return nil
			})
		}
		_ = cg.Wait()
		snap.Classes = classes
		return nil
	})

	g.Go(func() error {
		v, err := s.procs.StudentCGPA(ctx, accountID)
		if err != nil {
			s.absorb("cgpa", err)
			return nil
		}
		snap.CGPA = v
		return nil
	})

	g.Go(func() error {
		v, err := s.procs.StudentAttendancePercent(ctx, accountID)
		if err != nil {
			s.absorb("attendance_percent", err)
			return nil
		}
		snap.AttendancePercent = v
		return nil
	})

	g.Go(func() error {
		// exam_date is date-valued (time of day lives in StartTime), so the
		// cutoff is the start of the current UTC day: an exam later today is
		// still upcoming.
		now := time.Now().UTC()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		exams, err := s.exams.ListUpcoming(ctx, today, upcomingExamLimit)
		if err != nil {
			s.absorb("upcoming_exams", err)
			return nil
		}
		snap.UpcomingExams = exams
		return nil
	})

	g.Go(func() error {
		res, err := s.hostel.ActiveResidence(ctx, studentID)
		if err != nil {
			s.absorb("residence", err)
			return nil
		}
		snap.Residence = res
		return nil
	})

	g.Go(func() error {
		fee, err := s.fees.LatestByStudent(ctx, studentID)
		if err != nil {
			s.absorb("latest_fee", err)
			return nil
		}
		snap.LatestFee = fee
		return nil
	})

	g.Go(func() error {
		anns, err := s.announcements.RecentForAudience(ctx, authz.RoleStudent, announcementLimit)
		if err != nil {
			s.absorb("announcements", err)
			return nil
		}
		snap.Announcements = anns
		return nil
	})

	_ = g.Wait()
	return snap
}
