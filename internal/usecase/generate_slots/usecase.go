package generate_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
	dateTypeRepo "github.com/m04kA/SMC-RehearsalBooking/internal/infra/storage/datetype"
	roomRepo "github.com/m04kA/SMC-RehearsalBooking/internal/infra/storage/room"
)

// UseCase use case первого шага создания слотов: генерация кандидатов без записи в БД
type UseCase struct {
	roomRepo     RoomRepository
	dateTypeRepo DateTypeRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomRepo RoomRepository, dateTypeRepo DateTypeRepository, logger Logger) *UseCase {
	return &UseCase{
		roomRepo:     roomRepo,
		dateTypeRepo: dateTypeRepo,
		logger:       logger,
	}
}

// Execute проверяет параметры и возвращает кандидатов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateSlots: room=%s, date_type=%s, from=%s, to=%s, interval=%d",
		req.RoomNumber, req.DateType, req.From, req.To, req.IntervalMinutes)

	// 1. Проверяем комнату
	if _, err := uc.roomRepo.GetByNumber(ctx, req.RoomNumber); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("GenerateSlots: room=%s not found", req.RoomNumber)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GenerateSlots: failed to get room=%s: %v", req.RoomNumber, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 2. Проверяем тип
	if req.DateType == "" {
		return nil, ErrDateTypeNotSelected
	}
	if _, err := uc.dateTypeRepo.Get(ctx, req.DateType, domain.DefaultLanguage); err != nil {
		if errors.Is(err, dateTypeRepo.ErrDateTypeNotFound) {
			uc.logger.Warn("GenerateSlots: date_type=%s not found", req.DateType)
			return nil, ErrDateTypeNotSelected
		}
		uc.logger.Error("GenerateSlots: failed to get date_type=%s: %v", req.DateType, err)
		return nil, fmt.Errorf("%w: failed to get date type: %v", ErrInternal, err)
	}

	// 3. Делим диапазон на слоты
	candidates, err := BuildCandidates(req.From, req.To, req.IntervalMinutes, req.RoomNumber, req.DateType)
	if err != nil {
		uc.logger.Warn("GenerateSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GenerateSlots: generated %d candidates", len(candidates))

	return &Response{Candidates: candidates}, nil
}
