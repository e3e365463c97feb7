package confirm_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
	dateTypeRepo "github.com/m04kA/SMC-RehearsalBooking/internal/infra/storage/datetype"
	roomRepo "github.com/m04kA/SMC-RehearsalBooking/internal/infra/storage/room"
	slotRepo "github.com/m04kA/SMC-RehearsalBooking/internal/infra/storage/slot"
)

// UseCase use case второго шага создания слотов: сохранение выбранных кандидатов
type UseCase struct {
	slotRepo     SlotRepository
	roomRepo     RoomRepository
	dateTypeRepo DateTypeRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	roomRepo RoomRepository,
	dateTypeRepo DateTypeRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		roomRepo:     roomRepo,
		dateTypeRepo: dateTypeRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute сохраняет выбранных кандидатов одной транзакцией
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmSlots: candidates=%d, selected=%d", len(req.Candidates), len(req.Selected))

	// 1. Оставляем только выбранных кандидатов
	selected := SelectCandidates(req.Candidates, req.Selected)

	// 2. Клиенту не доверяем: проверяем размер пакета и каждого кандидата заново
	if len(selected) > domain.MaxGeneratedSlots {
		uc.logger.Error("ConfirmSlots: %d selected candidates exceed limit %d", len(selected), domain.MaxGeneratedSlots)
		return nil, ErrInvalidBufferedState
	}
	for _, c := range selected {
		if c == nil || !c.IsValid() {
			uc.logger.Error("ConfirmSlots: invalid buffered candidate %+v", c)
			return nil, ErrInvalidBufferedState
		}
	}

	created := make([]*domain.Slot, 0, len(selected))

	// 3. Сохраняем все или ничего
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		rooms := make(map[string]int64)
		dateTypes := make(map[string]bool)

		for _, c := range selected {
			roomID, err := uc.resolveRoom(txCtx, rooms, c.RoomNumber)
			if err != nil {
				return err
			}
			if err := uc.checkDateType(txCtx, dateTypes, c.DateType); err != nil {
				return err
			}

			slot, err := uc.slotRepo.Create(txCtx, &domain.Slot{
				From:       c.From,
				To:         c.To,
				RoomID:     roomID,
				RoomNumber: c.RoomNumber,
				DateType:   c.DateType,
			})
			if err != nil {
				switch {
				case errors.Is(err, slotRepo.ErrRoomNotFound):
					return ErrRoomNotFound
				case errors.Is(err, slotRepo.ErrInvalidRange):
					return ErrInvalidBufferedState
				}
				uc.logger.Error("ConfirmSlots: failed to create slot: %v", err)
				return fmt.Errorf("%w: failed to create slot: %v", ErrInternal, err)
			}
			created = append(created, slot)
		}
		return nil
	})
	if err != nil {
		uc.logger.Warn("ConfirmSlots: batch rejected: %v", err)
		return nil, err
	}

	uc.logger.Info("ConfirmSlots: created %d slots", len(created))

	return &Response{Created: created}, nil
}

// SelectCandidates попарно сопоставляет кандидатов и отметки, длина результата не больше более короткого среза
func SelectCandidates(candidates []*domain.SlotCandidate, selected []bool) []*domain.SlotCandidate {
	n := len(candidates)
	if len(selected) < n {
		n = len(selected)
	}

	result := make([]*domain.SlotCandidate, 0, n)
	for i := 0; i < n; i++ {
		if selected[i] {
			result = append(result, candidates[i])
		}
	}
	return result
}

func (uc *UseCase) resolveRoom(ctx context.Context, cache map[string]int64, roomNumber string) (int64, error) {
	if id, ok := cache[roomNumber]; ok {
		return id, nil
	}

	room, err := uc.roomRepo.GetByNumber(ctx, roomNumber)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return 0, ErrRoomNotFound
		}
		uc.logger.Error("ConfirmSlots: failed to get room=%s: %v", roomNumber, err)
		return 0, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	cache[roomNumber] = room.ID
	return room.ID, nil
}

func (uc *UseCase) checkDateType(ctx context.Context, cache map[string]bool, value string) error {
	if cache[value] {
		return nil
	}

	if _, err := uc.dateTypeRepo.Get(ctx, value, domain.DefaultLanguage); err != nil {
		if errors.Is(err, dateTypeRepo.ErrDateTypeNotFound) {
			return ErrDateTypeNotSelected
		}
		uc.logger.Error("ConfirmSlots: failed to get date_type=%s: %v", value, err)
		return fmt.Errorf("%w: failed to get date type: %v", ErrInternal, err)
	}

	cache[value] = true
	return nil
}
