package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
	dateTypeRepo "github.com/m04kA/SMC-RehearsalBooking/internal/infra/storage/datetype"
	slotRepo "github.com/m04kA/SMC-RehearsalBooking/internal/infra/storage/slot"
	waitingListRepo "github.com/m04kA/SMC-RehearsalBooking/internal/infra/storage/waitinglist"
)

// UseCase use case для получения доступных для бронирования слотов
type UseCase struct {
	slotRepo        SlotRepository
	dateTypeRepo    DateTypeRepository
	waitingListRepo WaitingListRepository
	policy          Policy
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	dateTypeRepo DateTypeRepository,
	waitingListRepo WaitingListRepository,
	policy Policy,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:        slotRepo,
		dateTypeRepo:    dateTypeRepo,
		waitingListRepo: waitingListRepo,
		policy:          policy,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute возвращает слоты типа, видимые зрителю
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date_type=%s, with_token=%t", req.DateType, req.Token != "")

	// 1. Получаем текущее время один раз на весь запрос
	now := uc.timeProvider.Now()

	// 2. Загружаем тип и зрителя
	dateType, err := uc.getDateType(ctx, req.DateType, req.Lang)
	if err != nil {
		return nil, err
	}

	entry, err := uc.resolveViewer(ctx, req.Token)
	if err != nil {
		return nil, err
	}

	// 3. Берем свободные слоты и применяем правила доступности
	slots, err := uc.slotRepo.ListUnbooked(ctx, dateType.Value)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list slots date_type=%s: %v", dateType.Value, err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	available := FilterAvailable(slots, dateType, entry, uc.policy.Rules(), now)

	uc.logger.Info("GetAvailableSlots: date_type=%s, unbooked=%d, available=%d",
		dateType.Value, len(slots), len(available))

	return &Response{
		DateType: dateType,
		Slots:    available,
		Entry:    entry,
	}, nil
}

// GetAvailable возвращает слот, если он виден зрителю по тем же правилам, что и список
func (uc *UseCase) GetAvailable(ctx context.Context, req *GetRequest) (*GetResponse, error) {
	uc.logger.Info("GetAvailableSlot: slot=%d, with_token=%t", req.SlotID, req.Token != "")

	// 1. Находим слот, чтобы узнать его тип
	slot, err := uc.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("GetAvailableSlot: slot id=%d not found", req.SlotID)
			return nil, ErrDateGone
		}
		uc.logger.Error("GetAvailableSlot: failed to get slot id=%d: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	// 2. Занятый слот - конфликт, а не исчезнувший слот
	booked, err := uc.slotRepo.IsBooked(ctx, slot.ID)
	if err != nil {
		uc.logger.Error("GetAvailableSlot: failed to check booking slot id=%d: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to check booking: %v", ErrInternal, err)
	}
	if booked {
		uc.logger.Warn("GetAvailableSlot: slot id=%d is already booked", req.SlotID)
		return nil, ErrDateTaken
	}

	// 3. Прогоняем тот же конвейер, что и для списка
	list, err := uc.Execute(ctx, &Request{DateType: slot.DateType, Token: req.Token, Lang: req.Lang})
	if err != nil {
		if errors.Is(err, ErrDateTypeNotFound) {
			return nil, ErrDateGone
		}
		return nil, err
	}

	// 4. Ищем слот среди доступных
	for _, s := range list.Slots {
		if s.ID == req.SlotID {
			return &GetResponse{Slot: s, DateType: list.DateType, Entry: list.Entry}, nil
		}
	}

	uc.logger.Warn("GetAvailableSlot: slot id=%d is not available", req.SlotID)
	return nil, ErrDateGone
}

func (uc *UseCase) getDateType(ctx context.Context, value, lang string) (*domain.DateType, error) {
	if !uc.policy.IsDateTypeEnabled(value) {
		uc.logger.Warn("GetAvailableSlots: date_type=%s is not enabled", value)
		return nil, ErrDateTypeNotFound
	}

	dateType, err := uc.dateTypeRepo.Get(ctx, value, lang)
	if err != nil {
		if errors.Is(err, dateTypeRepo.ErrDateTypeNotFound) {
			uc.logger.Warn("GetAvailableSlots: date_type=%s not found", value)
			return nil, ErrDateTypeNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get date_type=%s: %v", value, err)
		return nil, fmt.Errorf("%w: failed to get date type: %v", ErrInternal, err)
	}

	return dateType, nil
}

// resolveViewer находит запись листа ожидания по токену, неизвестный токен равен анонимному зрителю
func (uc *UseCase) resolveViewer(ctx context.Context, token string) (*domain.WaitingListEntry, error) {
	if token == "" {
		return nil, nil
	}

	entry, err := uc.waitingListRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, waitingListRepo.ErrEntryNotFound) {
			return nil, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to resolve waiting list token: %v", err)
		return nil, fmt.Errorf("%w: failed to get waiting list entry: %v", ErrInternal, err)
	}

	return entry, nil
}
