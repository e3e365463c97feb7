package domain

import "time"

// Slot is a bookable time interval at a room for a date type
type Slot struct {
	ID         int64
	From       time.Time
	To         time.Time
	RoomID     int64
	RoomNumber string
	DateType   string
}

// Duration returns the length of the slot
func (s *Slot) Duration() time.Duration {
	return s.To.Sub(s.From)
}

// HasStarted returns true if the slot has already begun at the given moment
func (s *Slot) HasStarted(now time.Time) bool {
	return !now.Before(s.From)
}

// SlotCandidate is a proposed slot that has not been persisted yet
// ID must stay nil until the candidate is stored
type SlotCandidate struct {
	ID         *int64
	From       time.Time
	To         time.Time
	RoomNumber string
	DateType   string
}

// IsValid returns true if the candidate is ordered and was never persisted
func (c *SlotCandidate) IsValid() bool {
	return c.From.Before(c.To) && c.ID == nil
}
