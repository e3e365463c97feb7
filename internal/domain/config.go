package domain

import "time"

// BookingRules global availability parameters passed explicitly into the filter
type BookingRules struct {
	DatesPerDay  int // 0 = unlimited
	DaysDeadline int // 0 = only future slots
	Location     *time.Location
}

// HasDayCap returns true if the per-day cap is enabled
func (r BookingRules) HasDayCap() bool {
	return r.DatesPerDay > 0
}

// HasDaysDeadline returns true if the rolling day deadline is enabled
func (r BookingRules) HasDaysDeadline() bool {
	return r.DaysDeadline > 0
}

// Loc returns the configured time zone, UTC if unset
func (r BookingRules) Loc() *time.Location {
	if r.Location == nil {
		return time.UTC
	}
	return r.Location
}
