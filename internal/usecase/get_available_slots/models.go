package get_available_slots

import "github.com/m04kA/SMC-RehearsalBooking/internal/domain"

// Request запрос списка доступных слотов
type Request struct {
	DateType string
	Token    string // токен листа ожидания (опционально)
	Lang     string
}

// Response доступные слоты типа
type Response struct {
	DateType *domain.DateType
	Slots    []*domain.Slot
	// Entry запись листа ожидания по токену, nil если токен не передан или не найден
	Entry *domain.WaitingListEntry
}

// GetRequest запрос одного доступного слота
type GetRequest struct {
	SlotID int64
	Token  string
	Lang   string
}

// GetResponse доступный слот вместе с типом и зрителем
type GetResponse struct {
	Slot     *domain.Slot
	DateType *domain.DateType
	Entry    *domain.WaitingListEntry
}
