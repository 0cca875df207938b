package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/itdept/ClassroomBookingService/internal/domain"
	roomRepo "github.com/itdept/ClassroomBookingService/internal/infra/storage/room"
	"github.com/itdept/ClassroomBookingService/internal/service/bookings/models"
)

// Service сервис чтения бронирований: списки по преподавателю
// и недельное расписание аудитории
type Service struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		logger:      logger,
	}
}

// GetByTeacher возвращает бронирования преподавателя.
// Совпадение имени точное, с учетом регистра — как в исходной системе.
func (s *Service) GetByTeacher(ctx context.Context, teacherName string) (*models.BookingListResponse, error) {
	if teacherName == "" {
		return nil, fmt.Errorf("%w: teacher name is required", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByTeacher(ctx, teacherName)
	if err != nil {
		s.logger.Error("GetByTeacher: repository error for teacher=%s: %v", teacherName, err)
		return nil, fmt.Errorf("%w: GetByTeacher - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByTeacher: fetched %d bookings for teacher=%s", len(bookings), teacherName)
	return models.FromDomainBookingList(bookings), nil
}

// GetRoomTimetable возвращает недельное расписание аудитории.
// Записи сгруппированы по дням недели и отсортированы по времени начала;
// воскресенье в расписании не отображается.
func (s *Service) GetRoomTimetable(ctx context.Context, roomName string) (*models.RoomTimetableResponse, error) {
	room, err := s.roomRepo.GetByName(ctx, roomName)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetRoomTimetable: room %q not found", roomName)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetRoomTimetable: repository error for room=%s: %v", roomName, err)
		return nil, fmt.Errorf("%w: GetRoomTimetable - repository error: %v", ErrInternal, err)
	}

	schedule := make(map[string][]*models.TimetableEntry)
	for _, day := range domain.AllWeekdays {
		if day == domain.Sunday {
			continue
		}

		bookings, err := s.bookingRepo.GetByRoomAndDay(ctx, room.ID, day)
		if err != nil {
			s.logger.Error("GetRoomTimetable: repository error for room=%d day=%s: %v", room.ID, day, err)
			return nil, fmt.Errorf("%w: GetRoomTimetable - repository error: %v", ErrInternal, err)
		}
		if len(bookings) == 0 {
			continue
		}

		entries := make([]*models.TimetableEntry, 0, len(bookings))
		for _, b := range bookings {
			entries = append(entries, &models.TimetableEntry{
				StartTime:   b.StartTime.String(),
				EndTime:     b.EndTime.String(),
				TeacherName: b.TeacherName,
			})
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].StartTime < entries[j].StartTime
		})
		schedule[string(day)] = entries
	}

	return &models.RoomTimetableResponse{
		RoomName: room.Name,
		RoomType: string(room.Type),
		Schedule: schedule,
	}, nil
}
