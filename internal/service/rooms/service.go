package rooms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	roomRepo "github.com/m04kA/SMC-RehearsalBooking/internal/infra/storage/room"
	"github.com/m04kA/SMC-RehearsalBooking/internal/service/rooms/models"
)

// Service сервис управления комнатами
type Service struct {
	roomRepo RoomRepository
	validate *validator.Validate
	logger   Logger
}

// NewService создает новый экземпляр сервиса комнат
func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		validate: validator.New(),
		logger:   logger,
	}
}

// List возвращает все комнаты по номеру
func (s *Service) List(ctx context.Context) (*models.RoomListResponse, error) {
	list, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRooms(list), nil
}

// Create создает комнату с уникальным номером
func (s *Service) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	req.RoomNumber = strings.TrimSpace(req.RoomNumber)
	s.logger.Info("Create: room=%s", req.RoomNumber)

	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, ErrInvalidRoomNumber
	}

	room, err := s.roomRepo.Create(ctx, req.RoomNumber)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomExists) {
			s.logger.Warn("Create: room=%s already exists", req.RoomNumber)
			return nil, ErrRoomAlreadyExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created room id=%d", room.ID)
	return models.FromDomainRoom(room), nil
}

// Delete удаляет комнату, на которую не ссылается ни один слот
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: room id=%d", id)

	if err := s.roomRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, roomRepo.ErrRoomNotFound):
			s.logger.Warn("Delete: room id=%d not found", id)
			return ErrRoomNotFound
		case errors.Is(err, roomRepo.ErrRoomInUse):
			s.logger.Warn("Delete: room id=%d is still used by slots", id)
			return ErrRoomInUse
		}
		s.logger.Error("Delete: repository error for room id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: room id=%d deleted", id)
	return nil
}
