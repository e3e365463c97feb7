package cancel_slots

import (
	cancelSlots "github.com/m04kA/SMC-RehearsalBooking/internal/usecase/cancel_slots"
)

// CancelSlotsRequest HTTP request model
type CancelSlotsRequest struct {
	SlotIDs []int64 `json:"slotIds"`
	// Explanations текст письма по языку: {"de": "...", "en": "..."}
	Explanations map[string]string `json:"explanations"`
}

// FailedMailResponse письмо, которое не удалось отправить
type FailedMailResponse struct {
	BookingID int64  `json:"bookingId"`
	Email     string `json:"email"`
}

// CancelSlotsResponse HTTP response model
type CancelSlotsResponse struct {
	DeletedSlots      int64                `json:"deletedSlots"`
	CancelledBookings int                  `json:"cancelledBookings"`
	MailsSent         int                  `json:"mailsSent"`
	FailedMails       []FailedMailResponse `json:"failedMails"`
	NotifiedDateTypes []string             `json:"notifiedDateTypes"`
	Message           string               `json:"message"`
	Key               string               `json:"key"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CancelSlotsRequest) ToUseCaseRequest() *cancelSlots.Request {
	return &cancelSlots.Request{
		SlotIDs:      r.SlotIDs,
		Explanations: r.Explanations,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelSlots.Response, message, key string) *CancelSlotsResponse {
	out := &CancelSlotsResponse{
		DeletedSlots:      resp.DeletedSlots,
		CancelledBookings: resp.CancelledBookings,
		MailsSent:         resp.MailsSent,
		FailedMails:       make([]FailedMailResponse, 0, len(resp.FailedMails)),
		NotifiedDateTypes: resp.NotifiedDateTypes,
		Message:           message,
		Key:               key,
	}
	for _, f := range resp.FailedMails {
		out.FailedMails = append(out.FailedMails, FailedMailResponse{BookingID: f.BookingID, Email: f.Email})
	}
	if out.NotifiedDateTypes == nil {
		out.NotifiedDateTypes = []string{}
	}
	return out
}
