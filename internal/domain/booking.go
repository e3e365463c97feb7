package domain

import "time"

// Booking represents an occupancy of exactly one slot
type Booking struct {
	ID         int64
	SlotID     int64
	Email      string
	PersonName string
	Notes      string
	Voice      string
	Token      string
	Lang       string
	CreatedAt  time.Time
}

// BookedSlot is a booking joined with its slot, used for cancellation and reporting
type BookedSlot struct {
	Booking Booking
	Slot    Slot
	// VoiceName display name of the voice in the requested language
	VoiceName string
}
