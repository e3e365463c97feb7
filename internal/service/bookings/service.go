package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
	"github.com/m04kA/SMC-RehearsalBooking/internal/i18n"
	dateTypeRepo "github.com/m04kA/SMC-RehearsalBooking/internal/infra/storage/datetype"
	"github.com/m04kA/SMC-RehearsalBooking/internal/service/bookings/models"
)

// Service сервис отчетов по бронированиям для администратора
type Service struct {
	bookingRepo  BookingRepository
	dateTypeRepo DateTypeRepository
	translator   Translator
	location     *time.Location
	timeProvider func() time.Time
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	dateTypeRepo DateTypeRepository,
	translator Translator,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		bookingRepo:  bookingRepo,
		dateTypeRepo: dateTypeRepo,
		translator:   translator,
		location:     location,
		timeProvider: time.Now,
		logger:       logger,
	}
}

// ListBookings возвращает бронирования типа по времени слота
func (s *Service) ListBookings(ctx context.Context, dateType, lang string) (*models.BookingListResponse, error) {
	s.logger.Info("ListBookings: date_type=%s", dateType)

	_, list, err := s.load(ctx, "ListBookings", dateType, i18n.Normalize(lang))
	if err != nil {
		return nil, err
	}

	s.logger.Info("ListBookings: date_type=%s, found=%d", dateType, len(list))
	return models.FromDomainBookedSlots(dateType, list), nil
}

func (s *Service) load(ctx context.Context, op, dateType, lang string) (*domain.DateType, []*domain.BookedSlot, error) {
	dt, err := s.dateTypeRepo.Get(ctx, dateType, lang)
	if err != nil {
		if errors.Is(err, dateTypeRepo.ErrDateTypeNotFound) {
			s.logger.Warn("%s: date_type=%s not found", op, dateType)
			return nil, nil, ErrDateTypeNotFound
		}
		s.logger.Error("%s: failed to get date_type=%s: %v", op, dateType, err)
		return nil, nil, fmt.Errorf("%w: %s - date type: %v", ErrInternal, op, err)
	}

	list, err := s.bookingRepo.ListByDateType(ctx, dateType, lang)
	if err != nil {
		s.logger.Error("%s: repository error for date_type=%s: %v", op, dateType, err)
		return nil, nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	return dt, list, nil
}
