package rooms

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/itdept/ClassroomBookingService/internal/domain"
	roomRepo "github.com/itdept/ClassroomBookingService/internal/infra/storage/room"
	"github.com/itdept/ClassroomBookingService/internal/service/rooms/models"
)

// Service сервис реестра аудиторий.
// Аудитории создаются при настройке или сидинге и далее только читаются.
type Service struct {
	roomRepo    RoomRepository
	accessToken string
	logger      Logger
}

// NewService создает новый экземпляр сервиса аудиторий
func NewService(roomRepo RoomRepository, accessToken string, logger Logger) *Service {
	return &Service{
		roomRepo:    roomRepo,
		accessToken: accessToken,
		logger:      logger,
	}
}

// Create создает новую аудиторию.
// Токен проверяется до любой валидации входных данных.
func (s *Service) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	if subtle.ConstantTimeCompare([]byte(req.AccessCode), []byte(s.accessToken)) != 1 {
		s.logger.Warn("Create: invalid access token for room=%s", req.Name)
		return nil, ErrUnauthorized
	}

	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > domain.MaxRoomNameLength {
		return nil, fmt.Errorf("%w: room name must be 1..%d characters", ErrInvalidInput, domain.MaxRoomNameLength)
	}
	if req.Capacity < 0 {
		return nil, fmt.Errorf("%w: capacity must be non-negative", ErrInvalidInput)
	}

	roomType := domain.RoomType(req.Type)
	if req.Type == "" {
		roomType = domain.RoomTypeLecture
	}
	if err := roomType.Validate(); err != nil {
		return nil, fmt.Errorf("%w: unknown room type %q", ErrInvalidInput, req.Type)
	}

	created, err := s.roomRepo.Create(ctx, &domain.Room{
		Name:     name,
		Type:     roomType,
		Capacity: req.Capacity,
	})
	if err != nil {
		if errors.Is(err, roomRepo.ErrDuplicateRoom) {
			s.logger.Warn("Create: room name %q already exists", name)
			return nil, ErrDuplicateRoom
		}
		s.logger.Error("Create: repository error for room=%s: %v", name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: room created id=%d name=%s type=%s", created.ID, created.Name, created.Type)
	return models.FromDomainRoom(created), nil
}

// GetByName получает аудиторию по имени
func (s *Service) GetByName(ctx context.Context, name string) (*models.RoomResponse, error) {
	room, err := s.roomRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByName: repository error for room=%s: %v", name, err)
		return nil, fmt.Errorf("%w: GetByName - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainRoom(room), nil
}

// List возвращает все аудитории в порядке создания
func (s *Service) List(ctx context.Context) (*models.RoomListResponse, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainRoomList(rooms), nil
}
