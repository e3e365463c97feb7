package domain

// Room is a rehearsal room slots are held in
type Room struct {
	ID         int64
	RoomNumber string
}
