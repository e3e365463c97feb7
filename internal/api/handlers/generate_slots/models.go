package generate_slots

import (
	"time"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
	generateSlots "github.com/m04kA/SMC-RehearsalBooking/internal/usecase/generate_slots"
)

// GenerateSlotsRequest HTTP request model
type GenerateSlotsRequest struct {
	From            time.Time `json:"from"`
	To              time.Time `json:"to"`
	IntervalMinutes int       `json:"intervalMinutes"`
	RoomNumber      string    `json:"roomNumber"`
	DateType        string    `json:"dateType"`
}

// CandidateResponse кандидат, который клиент вернет на шаг подтверждения без изменений
type CandidateResponse struct {
	ID         *int64    `json:"id"`
	From       time.Time `json:"from"`
	To         time.Time `json:"to"`
	RoomNumber string    `json:"roomNumber"`
	DateType   string    `json:"dateType"`
}

// CandidateListResponse HTTP response model
type CandidateListResponse struct {
	Candidates []CandidateResponse `json:"candidates"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *GenerateSlotsRequest) ToUseCaseRequest() *generateSlots.Request {
	return &generateSlots.Request{
		From:            r.From,
		To:              r.To,
		IntervalMinutes: r.IntervalMinutes,
		RoomNumber:      r.RoomNumber,
		DateType:        r.DateType,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateSlots.Response) *CandidateListResponse {
	out := &CandidateListResponse{Candidates: make([]CandidateResponse, 0, len(resp.Candidates))}
	for _, c := range resp.Candidates {
		out.Candidates = append(out.Candidates, fromDomainCandidate(c))
	}
	return out
}

func fromDomainCandidate(c *domain.SlotCandidate) CandidateResponse {
	return CandidateResponse{
		ID:         c.ID,
		From:       c.From,
		To:         c.To,
		RoomNumber: c.RoomNumber,
		DateType:   c.DateType,
	}
}
