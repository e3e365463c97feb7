package generate_slots

import (
	"time"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
)

// Request запрос на генерацию кандидатов
type Request struct {
	From            time.Time
	To              time.Time
	IntervalMinutes int
	RoomNumber      string
	DateType        string
}

// Response сгенерированные кандидаты, еще не сохраненные
type Response struct {
	Candidates []*domain.SlotCandidate
}
