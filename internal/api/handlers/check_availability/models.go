package check_availability

import (
	checkAvailability "github.com/itdept/ClassroomBookingService/internal/usecase/check_availability"
)

// RoomResponse HTTP модель свободной аудитории
type RoomResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Capacity int    `json:"capacity"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Day       string          `json:"day"`
	StartTime string          `json:"startTime"`
	EndTime   string          `json:"endTime"`
	Rooms     []*RoomResponse `json:"rooms"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	rooms := make([]*RoomResponse, 0, len(resp.Rooms))
	for _, r := range resp.Rooms {
		rooms = append(rooms, &RoomResponse{
			ID:       r.ID,
			Name:     r.Name,
			Type:     r.Type,
			Capacity: r.Capacity,
		})
	}
	return &AvailabilityResponse{
		Day:       resp.Day,
		StartTime: resp.StartTime,
		EndTime:   resp.EndTime,
		Rooms:     rooms,
	}
}
