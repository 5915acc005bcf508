// internal/app/store/metrics/admin.go
package metricsstore

import (
	"context"
	"time"

	messagestore "github.com/dalemusser/campushub/internal/app/store/messages"
	"github.com/dalemusser/campushub/internal/app/store/queries/departmentload"
	"github.com/dalemusser/campushub/internal/app/system/authz"
	"github.com/dalemusser/campushub/internal/domain/models"
	"golang.org/x/sync/errgroup"
)

// BlockOccupancy is one hostel block's stored room counters plus the
// derived vacancy.
type BlockOccupancy struct {
	Name       string `json:"name"`
	BlockType  string `json:"block_type"`
	TotalRooms int    `json:"total_rooms"`
	Occupied   int    `json:"occupied"`
	Vacant     int    `json:"vacant"`
}

// AdminSnapshot is everything the institution dashboard shows.
type AdminSnapshot struct {
	TotalStudents      int64                            `json:"total_students"`
	TotalFaculty       int64                            `json:"total_faculty"`
	TotalAdmins        int64                            `json:"total_admins"`
	TotalSections      int64                            `json:"total_sections"`
	FeesCollectedToday float64                          `json:"fees_collected_today"`
	AttendancePercent  int                              `json:"attendance_percent"`
	Blocks             []BlockOccupancy                 `json:"blocks"`
	VacantRooms        int                              `json:"vacant_rooms"`
	Departments        []departmentload.DepartmentLoad  `json:"departments"`
	Messages           []messagestore.MessageWithSender `json:"messages"`
	Activity           []models.ActivityEntry           `json:"activity"`
}

// AdminSnapshot gathers the institution-wide dashboard in one call.
// Sub-fetches run concurrently; each failure is absorbed and leaves its
// field zero.
func (s *Service) AdminSnapshot(ctx context.Context) AdminSnapshot {
	var snap AdminSnapshot
	g, ctx := errgroup.WithContext(ctx)

	count := func(role string, dst *int64, field string) {
		g.Go(func() error {
			n, err := s.users.CountByRole(ctx, role)
			if err != nil {
				s.absorb(field, err)
				return nil
			}
			*dst = n
			return nil
		})
	}
	count(authz.RoleStudent, &snap.TotalStudents, "total_students")
	count(authz.RoleFaculty, &snap.TotalFaculty, "total_faculty")
	count(authz.RoleAdmin, &snap.TotalAdmins, "total_admins")

	g.Go(func() error {
		n, err := s.sections.CountAll(ctx)
		if err != nil {
			s.absorb("total_sections", err)
			return nil
		}
		snap.TotalSections = n
		return nil
	})

	g.Go(func() error {
		sum, err := s.fees.CollectedOn(ctx, time.Now().UTC())
		if err != nil {
			s.absorb("fees_collected_today", err)
			return nil
		}
		snap.FeesCollectedToday = sum
		return nil
	})

	g.Go(func() error {
		t, err := s.attendance.TallyAll(ctx)
		if err != nil {
			s.absorb("attendance_percent", err)
			return nil
		}
		snap.AttendancePercent = percent(t.Present, t.Total)
		return nil
	})

	g.Go(func() error {
		blocks, err := s.hostel.ListBlocks(ctx)
		if err != nil {
			s.absorb("blocks", err)
			return nil
		}
		occ := make([]BlockOccupancy, len(blocks))
		vacant := 0
		for i, b := range blocks {
			occ[i] = BlockOccupancy{
				Name:       b.Name,
				BlockType:  b.BlockType,
				TotalRooms: b.TotalRooms,
				Occupied:   b.OccupiedRooms,
				Vacant:     b.TotalRooms - b.OccupiedRooms,
			}
			vacant += occ[i].Vacant
		}
		snap.Blocks = occ
		snap.VacantRooms = vacant
		return nil
	})

	g.Go(func() error {
		depts, err := departmentload.Fetch(ctx, s.db)
		if err != nil {
			s.absorb("departments", err)
			return nil
		}
		snap.Departments = depts
		return nil
	})

	g.Go(func() error {
		msgs, err := s.messages.RecentAll(ctx, adminFeedLimit)
		if err != nil {
			s.absorb("messages", err)
			return nil
		}
		snap.Messages = msgs
		return nil
	})

	g.Go(func() error {
		entries, err := s.activity.Recent(ctx, adminFeedLimit)
		if err != nil {
			s.absorb("activity", err)
			return nil
		}
		snap.Activity = entries
		return nil
	})

	_ = g.Wait()
	return snap
}
