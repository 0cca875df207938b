package models

import (
	"github.com/itdept/ClassroomBookingService/internal/domain"
)

// CreateRoomRequest запрос на создание аудитории
type CreateRoomRequest struct {
	Name       string
	Type       string
	Capacity   int
	AccessCode string
}

// RoomResponse модель аудитории для ответа сервиса
type RoomResponse struct {
	ID       int64
	Name     string
	Type     string
	Capacity int
}

// RoomListResponse список аудиторий
type RoomListResponse struct {
	Rooms []*RoomResponse
}

// FromDomainRoom конвертирует domain.Room в модель ответа
func FromDomainRoom(room *domain.Room) *RoomResponse {
	return &RoomResponse{
		ID:       room.ID,
		Name:     room.Name,
		Type:     string(room.Type),
		Capacity: room.Capacity,
	}
}

// FromDomainRoomList конвертирует список domain.Room в модель ответа
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	out := make([]*RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, FromDomainRoom(r))
	}
	return &RoomListResponse{Rooms: out}
}
