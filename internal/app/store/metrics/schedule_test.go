// internal/app/store/metrics/schedule_test.go
package metricsstore

import (
	"testing"

	sectionstore "github.com/dalemusser/campushub/internal/app/store/sections"
	"github.com/dalemusser/campushub/internal/domain/models"
)

func classOn(code string, days ...string) sectionstore.SectionWithSubject {
	return sectionstore.SectionWithSubject{
		Section: models.Section{ScheduleDays: days},
		Subject: models.Subject{Code: code},
	}
}

func TestScheduledOn(t *testing.T) {
	classes := []sectionstore.SectionWithSubject{
		classOn("CS101", "monday", "wednesday"),
		classOn("CS202", "tuesday"),
		classOn("MA150", "wednesday", "friday"),
		classOn("PH110"),
	}

	got := scheduledOn(classes, "wednesday")
	if len(got) != 2 {
		t.Fatalf("scheduledOn(wednesday): got %d classes, want 2", len(got))
	}
	if got[0].Subject.Code != "CS101" || got[1].Subject.Code != "MA150" {
		t.Errorf("scheduledOn(wednesday) order: got %s, %s; want CS101, MA150", got[0].Subject.Code, got[1].Subject.Code)
	}

	if got := scheduledOn(classes, "sunday"); len(got) != 0 {
		t.Errorf("scheduledOn(sunday): got %d classes, want 0", len(got))
	}
	if got := scheduledOn(nil, "monday"); len(got) != 0 {
		t.Errorf("scheduledOn(no classes): got %d, want 0", len(got))
	}
}
