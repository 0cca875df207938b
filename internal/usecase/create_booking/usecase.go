package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/itdept/ClassroomBookingService/internal/domain"
	"github.com/itdept/ClassroomBookingService/internal/infra/events"
	roomRepo "github.com/itdept/ClassroomBookingService/internal/infra/storage/room"
)

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	conflicts   ConflictFinder
	txManager   TransactionManager
	publisher   EventPublisher // может быть nil, если события выключены
	accessToken string
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	conflicts ConflictFinder,
	txManager TransactionManager,
	publisher EventPublisher,
	accessToken string,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		conflicts:   conflicts,
		txManager:   txManager,
		publisher:   publisher,
		accessToken: accessToken,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования.
// Порядок проверок фиксирован: токен, затем диапазон, затем аудитория,
// затем конфликт. Проверка конфликта и вставка выполняются в одной
// сериализуемой транзакции, чтобы два параллельных запроса не могли
// оба пройти проверку и оба вставить пересекающиеся бронирования.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: teacher=%s, room=%s, day=%s, time=%s-%s",
		req.TeacherName, req.RoomName, req.Day, req.StartTime, req.EndTime)

	// 1. Токен проверяется раньше любой валидации входных данных
	if err := validateAccessCode(req.AccessCode, uc.accessToken); err != nil {
		uc.logger.Warn("CreateBooking: invalid access token for teacher=%s", req.TeacherName)
		return nil, err
	}

	// 2. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 3. Валидация временного диапазона
	rng, err := parseRange(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid range: %v", err)
		return nil, err
	}

	day := domain.Weekday(req.Day)

	// 4. Разрешаем аудиторию по имени.
	// Неизвестная аудитория — ошибка, а не "нет конфликта".
	room, err := uc.roomRepo.GetByName(ctx, req.RoomName)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room %q not found", req.RoomName)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: failed to get room %q: %v", req.RoomName, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 5. Проверка конфликта + вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		conflict, err := uc.conflicts.FindConflict(txCtx, room.ID, day, rng, nil)
		if err != nil {
			uc.logger.Error("CreateBooking: conflict check failed: %v", err)
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}
		if conflict != nil {
			uc.logger.Warn("CreateBooking: room=%s day=%s %s-%s already booked by %s",
				req.RoomName, req.Day, req.StartTime, req.EndTime, conflict.TeacherName)
			return &ConflictError{TeacherName: conflict.TeacherName}
		}

		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			RoomID:      room.ID,
			TeacherName: strings.TrimSpace(req.TeacherName),
			Day:         day,
			StartTime:   rng.Start,
			EndTime:     rng.End,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 6. Публикация события после коммита, best-effort
	if uc.publisher != nil {
		if err := uc.publisher.PublishJSON(ctx, events.KeyBookingCreated, map[string]any{
			"booking_id": result.ID,
			"room_id":    result.RoomID,
			"teacher":    result.TeacherName,
			"day":        string(result.Day),
			"start":      result.StartTime.String(),
			"end":        result.EndTime.String(),
		}); err != nil {
			uc.logger.Error("CreateBooking: failed to publish event for booking id=%d: %v", result.ID, err)
		}
	}

	return &Response{
		ID:          result.ID,
		RoomID:      result.RoomID,
		RoomName:    room.Name,
		TeacherName: result.TeacherName,
		Day:         string(result.Day),
		StartTime:   result.StartTime.String(),
		EndTime:     result.EndTime.String(),
		CreatedAt:   result.CreatedAt,
	}, nil
}
