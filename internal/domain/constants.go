package domain

// Slot generation limits
const (
	MaxGeneratedSlots = 1000
)

// Languages
const (
	LangGerman      = "de"
	LangEnglish     = "en"
	DefaultLanguage = LangGerman
)

// SupportedLanguages in preference order, the first one is the fallback
var SupportedLanguages = []string{LangGerman, LangEnglish}

// Field limits
const (
	MaxEmailLength      = 254
	MaxPersonNameLength = 200
	MaxNotesLength      = 2000
	MaxRoomNumberLength = 50
	// MaxAnnouncementLength in characters
	MaxAnnouncementLength = 5000
)

// Time format constants used in mails and exports
const (
	DayFormat  = "02.01.2006"
	TimeFormat = "15:04"
)

// Booking cancellation origins (metrics label)
const (
	CancelledByUser  = "user"
	CancelledByAdmin = "admin"
)

// IsSupportedLanguage returns true for languages with a message catalog
func IsSupportedLanguage(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}
