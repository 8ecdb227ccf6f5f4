package domain

import "time"

// CrashRecord is one row of the crash table. Records are immutable once
// loaded; optional fields are nil (or empty strings) when the source has
// no value for them.
type CrashRecord struct {
	Borough   string // "" when unknown
	CrashDate *time.Time
	Year      *int // derived from CrashDate when the source has no year

	Injured int64
	Killed  int64

	// One entry per populated per-vehicle column on the row. A crash can
	// involve several vehicles, each with its own type and factor.
	VehicleTypes        []string
	ContributingFactors []string

	Hour      *int
	DayOfWeek string // "" when unknown
	Latitude  *float64
	Longitude *float64
}
