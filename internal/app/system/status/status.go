// Package status holds the shared status sentinels used across collections.
//
// "active" is the only status counted in enrollment and occupancy totals;
// everything else is reported but never aggregated.
package status

const (
	Active     = "active"
	Dropped    = "dropped"
	Completed  = "completed"
	CheckedOut = "checked_out"
)
