package domain

import "time"

// AnnouncementGeneral position of the announcement shown above the date type list.
// Every other position is a date type value.
const AnnouncementGeneral = "general"

// Announcement is an administrator-edited notice for one position and language
type Announcement struct {
	Position  string
	Lang      string
	Content   string
	UpdatedAt time.Time
}
