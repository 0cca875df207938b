package list_rooms

import (
	"github.com/itdept/ClassroomBookingService/internal/service/rooms/models"
)

// RoomJSON аудитория в ответе API
type RoomJSON struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Capacity int    `json:"capacity"`
}

// RoomListJSON список аудиторий
type RoomListJSON struct {
	Rooms []*RoomJSON `json:"rooms"`
}

func FromServiceResponse(resp *models.RoomListResponse) *RoomListJSON {
	out := make([]*RoomJSON, 0, len(resp.Rooms))
	for _, room := range resp.Rooms {
		out = append(out, &RoomJSON{
			ID:       room.ID,
			Name:     room.Name,
			Type:     room.Type,
			Capacity: room.Capacity,
		})
	}
	return &RoomListJSON{Rooms: out}
}
