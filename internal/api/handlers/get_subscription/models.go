package get_subscription

import (
	"time"

	"github.com/m04kA/SMC-RehearsalBooking/internal/service/waitinglist"
)

// SubscriptionResponse запись листа ожидания для страницы отписки
type SubscriptionResponse struct {
	DateType    string    `json:"dateType"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
	Entered     time.Time `json:"entered"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(s *waitinglist.Subscription) *SubscriptionResponse {
	return &SubscriptionResponse{
		DateType:    s.Entry.DateType,
		DisplayName: s.DateType.DisplayName,
		Email:       s.Entry.Email,
		Entered:     s.Entry.Entered,
	}
}
