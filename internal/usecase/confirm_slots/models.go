package confirm_slots

import "github.com/m04kA/SMC-RehearsalBooking/internal/domain"

// Request кандидаты первого шага и отметки выбора
// Длины могут отличаться, лишние элементы более длинного среза отбрасываются
type Request struct {
	Candidates []*domain.SlotCandidate
	Selected   []bool
}

// Response сохраненные слоты
type Response struct {
	Created []*domain.Slot
}
