package domain

import "time"

// RoomType represents the kind of a bookable room
type RoomType string

const (
	RoomTypeLecture RoomType = "Lecture"
	RoomTypeLab     RoomType = "Lab"
)

// Validate checks that the room type is one of the known values
func (t RoomType) Validate() error {
	switch t {
	case RoomTypeLecture, RoomTypeLab:
		return nil
	}
	return ErrInvalidRoomType
}

// Room represents a bookable classroom or lab.
// Rooms are created once at setup/seeding and are read-only afterwards;
// they are never deleted while bookings reference them.
type Room struct {
	ID        int64
	Name      string // unique display name, e.g. "IT-Lab1"
	Type      RoomType
	Capacity  int // non-negative, 0 = unknown
	CreatedAt time.Time
}

// IsLab returns true if the room is a laboratory
func (r *Room) IsLab() bool {
	return r.Type == RoomTypeLab
}
