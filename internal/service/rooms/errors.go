package rooms

import "errors"

var (
	// ErrUnauthorized возвращается при неверном токене доступа
	ErrUnauthorized = errors.New("rooms: invalid access token")

	// ErrDuplicateRoom возвращается при попытке создать аудиторию с занятым именем
	ErrDuplicateRoom = errors.New("rooms: room name already exists")

	// ErrRoomNotFound возвращается, когда аудитория не найдена
	ErrRoomNotFound = errors.New("rooms: room not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("rooms: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("rooms: internal error")
)
