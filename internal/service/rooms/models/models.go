package models

import "github.com/m04kA/SMC-RehearsalBooking/internal/domain"

// CreateRoomRequest запрос на создание комнаты
type CreateRoomRequest struct {
	RoomNumber string `json:"roomNumber" validate:"required,max=50"`
}

// RoomResponse комната
type RoomResponse struct {
	ID         int64  `json:"id"`
	RoomNumber string `json:"roomNumber"`
}

// RoomListResponse список комнат
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}
	return &RoomResponse{ID: r.ID, RoomNumber: r.RoomNumber}
}

// FromDomainRooms конвертирует список комнат
func FromDomainRooms(list []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{Rooms: make([]RoomResponse, 0, len(list))}
	for _, r := range list {
		resp.Rooms = append(resp.Rooms, *FromDomainRoom(r))
	}
	return resp
}
