package generate_slots

import (
	"time"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
)

// BuildCandidates делит [from, to) на смежные интервалы по intervalMinutes минут
func BuildCandidates(from, to time.Time, intervalMinutes int, roomNumber, dateType string) ([]*domain.SlotCandidate, error) {
	if intervalMinutes <= 0 {
		return nil, ErrInvalidInterval
	}
	if !from.Before(to) {
		return nil, ErrWrongDateOrder
	}

	step := time.Duration(intervalMinutes) * time.Minute
	total := to.Sub(from)
	if total%step != 0 {
		return nil, ErrIntervalNotEven
	}

	count := int(total / step)
	if count > domain.MaxGeneratedSlots {
		return nil, ErrTooManyDates
	}

	candidates := make([]*domain.SlotCandidate, 0, count)
	for i := 0; i < count; i++ {
		start := from.Add(step * time.Duration(i))
		candidates = append(candidates, &domain.SlotCandidate{
			From:       start,
			To:         start.Add(step),
			RoomNumber: roomNumber,
			DateType:   dateType,
		})
	}

	return candidates, nil
}
