package domain

import "time"

// WaitingListEntry is a standing subscription for new openings of a date type
type WaitingListEntry struct {
	ID       int64
	DateType string
	Email    string
	Token    string
	Entered  time.Time
	Lang     string
}

// EnteredBefore returns true if the entry was created strictly before t
func (e *WaitingListEntry) EnteredBefore(t time.Time) bool {
	return e.Entered.Before(t)
}
