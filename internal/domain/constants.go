package domain

import "errors"

// Validation errors shared across layers
var (
	// ErrInvalidRange означает некорректный или перевернутый временной диапазон
	ErrInvalidRange = errors.New("domain: invalid time range")

	// ErrInvalidWeekday означает неизвестный день недели
	ErrInvalidWeekday = errors.New("domain: invalid weekday")

	// ErrInvalidRoomType означает неизвестный тип аудитории
	ErrInvalidRoomType = errors.New("domain: invalid room type")
)

// Time format constants
const (
	TimeFormat = "15:04" // HH:MM
)

// MaxTeacherNameLength ограничение длины имени преподавателя
const MaxTeacherNameLength = 100

// MaxRoomNameLength ограничение длины названия аудитории
const MaxRoomNameLength = 50
