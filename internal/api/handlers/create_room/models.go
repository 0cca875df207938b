package create_room

import (
	"github.com/itdept/ClassroomBookingService/internal/service/rooms/models"
)

// CreateRoomRequest тело запроса на создание аудитории
type CreateRoomRequest struct {
	Name       string `json:"name"`
	Type       string `json:"type,omitempty"`
	Capacity   int    `json:"capacity,omitempty"`
	AccessCode string `json:"accessCode"`
}

// RoomJSON созданная аудитория в ответе API
type RoomJSON struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Capacity int    `json:"capacity"`
}

func (r *CreateRoomRequest) ToServiceRequest() *models.CreateRoomRequest {
	return &models.CreateRoomRequest{
		Name:       r.Name,
		Type:       r.Type,
		Capacity:   r.Capacity,
		AccessCode: r.AccessCode,
	}
}

func FromServiceResponse(resp *models.RoomResponse) *RoomJSON {
	return &RoomJSON{
		ID:       resp.ID,
		Name:     resp.Name,
		Type:     resp.Type,
		Capacity: resp.Capacity,
	}
}
