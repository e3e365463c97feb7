package models

import (
	"time"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
)

// Request модели

// UpdateDeadlineRequest запрос на изменение дедлайна подачи заявок
// Deadline = nil снимает дедлайн
type UpdateDeadlineRequest struct {
	Deadline *time.Time `json:"deadline"`
}

// Response модели

// DateTypeResponse тип дат с названием на языке запроса
type DateTypeResponse struct {
	Value               string     `json:"value"`
	DisplayName         string     `json:"displayName"`
	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty"`
}

// DateTypeListResponse список типов
// Announcement общее объявление, заполняется обработчиком
type DateTypeListResponse struct {
	DateTypes    []DateTypeResponse `json:"dateTypes"`
	Announcement string             `json:"announcement"`
}

// VoiceResponse голос формы бронирования
type VoiceResponse struct {
	Value       string `json:"value"`
	DisplayName string `json:"displayName"`
}

// VoiceListResponse голоса типа
type VoiceListResponse struct {
	DateType string          `json:"dateType"`
	Voices   []VoiceResponse `json:"voices"`
}

// Методы конвертации

// FromDomainDateType конвертирует domain модель в DTO
func FromDomainDateType(dt *domain.DateType) *DateTypeResponse {
	if dt == nil {
		return nil
	}

	return &DateTypeResponse{
		Value:               dt.Value,
		DisplayName:         dt.DisplayName,
		ApplicationDeadline: dt.ApplicationDeadline,
	}
}

// FromDomainDateTypes конвертирует список типов
func FromDomainDateTypes(list []*domain.DateType) *DateTypeListResponse {
	resp := &DateTypeListResponse{DateTypes: make([]DateTypeResponse, 0, len(list))}
	for _, dt := range list {
		resp.DateTypes = append(resp.DateTypes, *FromDomainDateType(dt))
	}
	return resp
}

// FromDomainVoices конвертирует голоса типа
func FromDomainVoices(dateType string, voices []*domain.Voice) *VoiceListResponse {
	resp := &VoiceListResponse{DateType: dateType, Voices: make([]VoiceResponse, 0, len(voices))}
	for _, v := range voices {
		resp.Voices = append(resp.Voices, VoiceResponse{Value: v.Value, DisplayName: v.DisplayName})
	}
	return resp
}
