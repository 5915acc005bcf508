// internal/app/store/metrics/faculty.go
package metricsstore

import (
	"context"
	"strings"
	"time"

	messagestore "github.com/dalemusser/campushub/internal/app/store/messages"
	sectionstore "github.com/dalemusser/campushub/internal/app/store/sections"
	"github.com/dalemusser/campushub/internal/app/system/authz"
	"github.com/dalemusser/campushub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

// ClassLoad is one taught class annotated with its authoritative active
// enrollment count, class-wide attendance percentage, and grade average.
type ClassLoad struct {
	sectionstore.SectionWithSubject
	Enrolled          int64   `json:"enrolled"`
	AttendancePercent int     `json:"attendance_percent"`
	GradeAverage      float64 `json:"grade_average"`
}

// FacultySnapshot is everything the faculty dashboard shows.
type FacultySnapshot struct {
	Classes       []ClassLoad                       `json:"classes"`
	TotalStudents int64                             `json:"total_students"`
	TodaySchedule []sectionstore.SectionWithSubject `json:"today_schedule"`
	PendingGrades int64                             `json:"pending_grades"`
	Messages      []messagestore.MessageWithSender  `json:"messages"`
	Announcements []models.Announcement             `json:"announcements"`
}

// FacultySnapshot gathers the faculty dashboard in one call. The taught
// sections are fetched once and feed the per-class metrics, the day
// schedule, and the pending-grade count; everything else fans out
// concurrently with failures absorbed.
func (s *Service) FacultySnapshot(ctx context.Context, facultyID primitive.ObjectID) FacultySnapshot {
	var snap FacultySnapshot

	taught, err := s.sections.ListByFaculty(ctx, facultyID)
	if err != nil {
		s.absorb("classes", err)
	}
	snap.TodaySchedule = scheduledOn(taught, strings.ToLower(time.Now().Weekday().String()))

	sectionIDs := make([]primitive.ObjectID, len(taught))
	for i, sec := range taught {
		sectionIDs[i] = sec.ID
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		classes := make([]ClassLoad, len(taught))
		cg, cctx := errgroup.WithContext(ctx)
		for i := range taught {
			i := i
			cg.Go(func() error {
				classes[i].SectionWithSubject = taught[i]

				if n, err := s.enrollments.CountActiveBySection(cctx, taught[i].ID); err != nil {
					s.absorb("classes.enrolled", err)
				} else {
					classes[i].Enrolled = n
				}

				if t, err := s.attendance.TallyBySection(cctx, taught[i].ID); err != nil {
					s.absorb("classes.attendance", err)
				} else {
					classes[i].AttendancePercent = percent(t.Present, t.Total)
				}

				if avg, graded, err := s.grades.AverageBySection(cctx, taught[i].ID); err != nil {
					s.absorb("classes.grade_average", err)
				} else if graded > 0 {
					classes[i].GradeAverage = round1(avg)
				}
				return nil
			})
		}
		_ = cg.Wait()
		snap.Classes = classes
		for i := range classes {
			snap.TotalStudents += classes[i].Enrolled
		}
		return nil
	})

	g.Go(func() error {
		n, err := s.grades.CountPending(ctx, sectionIDs)
		if err != nil {
			s.absorb("pending_grades", err)
			return nil
		}
		snap.PendingGrades = n
		return nil
	})

	g.Go(func() error {
		msgs, err := s.messages.RecentForRecipient(ctx, facultyID, recentMessageLimit)
		if err != nil {
			s.absorb("messages", err)
			return nil
		}
		snap.Messages = msgs
		return nil
	})

	g.Go(func() error {
		anns, err := s.announcements.RecentForAudience(ctx, authz.RoleFaculty, announcementLimit)
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

// scheduledOn filters classes to those meeting on the given lowercase
// weekday name, preserving input order.
func scheduledOn(classes []sectionstore.SectionWithSubject, weekday string) []sectionstore.SectionWithSubject {
	var out []sectionstore.SectionWithSubject
	for _, c := range classes {
		for _, d := range c.ScheduleDays {
			if d == weekday {
				out = append(out, c)
				break
			}
		}
	}
	return out
}
