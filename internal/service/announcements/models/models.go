package models

import (
	"time"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
)

// UpdateAnnouncementRequest запрос на изменение объявления
// Пустой content скрывает объявление
type UpdateAnnouncementRequest struct {
	Content string `json:"content" validate:"max=5000"`
}

// AnnouncementResponse объявление позиции на одном языке
type AnnouncementResponse struct {
	Position  string    `json:"position"`
	Lang      string    `json:"lang"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AnnouncementListResponse все объявления
type AnnouncementListResponse struct {
	Announcements []AnnouncementResponse `json:"announcements"`
}

// FromDomainAnnouncement конвертирует domain модель в DTO
func FromDomainAnnouncement(a *domain.Announcement) *AnnouncementResponse {
	if a == nil {
		return nil
	}
	return &AnnouncementResponse{
		Position:  a.Position,
		Lang:      a.Lang,
		Content:   a.Content,
		UpdatedAt: a.UpdatedAt,
	}
}

// FromDomainAnnouncements конвертирует список объявлений
func FromDomainAnnouncements(list []*domain.Announcement) *AnnouncementListResponse {
	resp := &AnnouncementListResponse{Announcements: make([]AnnouncementResponse, 0, len(list))}
	for _, a := range list {
		resp.Announcements = append(resp.Announcements, *FromDomainAnnouncement(a))
	}
	return resp
}
