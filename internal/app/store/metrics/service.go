// internal/app/store/metrics/service.go

// Package metricsstore assembles the role-scoped dashboard snapshots:
// one per role, each gathering every figure its dashboard shows in a
// single call. Sub-fetches run concurrently and are intentionally
// tolerant: a failed one logs a warning and leaves its field at the zero
// value, so a snapshot call never fails outright.
package metricsstore

import (
	"context"

	"github.com/dalemusser/campushub/internal/app/store/activity"
	announcementstore "github.com/dalemusser/campushub/internal/app/store/announcements"
	attendancestore "github.com/dalemusser/campushub/internal/app/store/attendance"
	enrollmentstore "github.com/dalemusser/campushub/internal/app/store/enrollments"
	examstore "github.com/dalemusser/campushub/internal/app/store/exams"
	feestore "github.com/dalemusser/campushub/internal/app/store/fees"
	gradestore "github.com/dalemusser/campushub/internal/app/store/grades"
	hostelstore "github.com/dalemusser/campushub/internal/app/store/hostel"
	messagestore "github.com/dalemusser/campushub/internal/app/store/messages"
	sectionstore "github.com/dalemusser/campushub/internal/app/store/sections"
	userstore "github.com/dalemusser/campushub/internal/app/store/users"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Feed and list limits for the dashboard snapshots.
const (
	upcomingExamLimit  = 5
	announcementLimit  = 5
	recentMessageLimit = 5
	adminFeedLimit     = 10
)

// Aggregates is the set of precomputed cumulative statistics the student
// snapshot invokes as an opaque capability, keyed by the student's
// identity-provider UUID. The academics store provides the canonical
// implementation.
type Aggregates interface {
	StudentCGPA(ctx context.Context, accountID uuid.UUID) (float64, error)
	StudentAttendancePercent(ctx context.Context, accountID uuid.UUID) (float64, error)
}

// Service builds dashboard snapshots over the shared database handle.
type Service struct {
	db    *mongo.Database
	procs Aggregates
	log   *zap.Logger

	users         *userstore.Store
	sections      *sectionstore.Store
	enrollments   *enrollmentstore.Store
	attendance    *attendancestore.Store
	grades        *gradestore.Store
	exams         *examstore.Store
	fees          *feestore.Store
	hostel        *hostelstore.Store
	messages      *messagestore.Store
	announcements *announcementstore.Store
	activity      *activity.Store
}

func NewService(db *mongo.Database, procs Aggregates, log *zap.Logger) *Service {
	return &Service{
		db:    db,
		procs: procs,
		log:   log,

		users:         userstore.New(db),
		sections:      sectionstore.New(db),
		enrollments:   enrollmentstore.New(db),
		attendance:    attendancestore.New(db),
		grades:        gradestore.New(db),
		exams:         examstore.New(db),
		fees:          feestore.New(db),
		hostel:        hostelstore.New(db),
		messages:      messagestore.New(db),
		announcements: announcementstore.New(db),
		activity:      activity.New(db),
	}
}

// absorb records a failed sub-fetch. The owning field keeps its zero
// value and the snapshot proceeds.
func (s *Service) absorb(field string, err error) {
	if err == nil {
		return
	}
	s.log.Warn("dashboard fetch failed", zap.String("field", field), zap.Error(err))
}
