package domain

import "time"

// Known date type values, seeded by migrations
const (
	DateTypeChoir        = "choir"
	DateTypeOrchestra    = "orchestra"
	DateTypeChamberChoir = "chamber-choir"
)

// DateType is a category of activity governing valid voices and deadlines
type DateType struct {
	Value string
	// DisplayName translated name, empty if no translation was requested
	DisplayName string
	// ApplicationDeadline NULL = no absolute deadline
	ApplicationDeadline *time.Time
}

// HasDeadline returns true if an absolute application deadline is set
func (d *DateType) HasDeadline() bool {
	return d.ApplicationDeadline != nil
}

// DeadlinePassed returns true if the absolute deadline is reached at now
func (d *DateType) DeadlinePassed(now time.Time) bool {
	return d.HasDeadline() && !now.Before(*d.ApplicationDeadline)
}

// Voice is a part a booker selects, constrained by date type
type Voice struct {
	Value       string
	DateType    string
	DisplayName string
}
