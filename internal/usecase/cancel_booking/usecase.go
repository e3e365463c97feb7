package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RehearsalBooking/internal/infra/storage/booking"
)

// UseCase use case отмены бронирования по токену из письма
type UseCase struct {
	bookingRepo  BookingRepository
	notifier     Notifier
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, notifier Notifier, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		notifier:     notifier,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute отменяет бронирование, если слот еще не начался, и оповещает лист ожидания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: cancelling by token")

	// 1. Находим бронирование
	booked, err := uc.bookingRepo.GetByToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CancelBooking: booking not found")
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CancelBooking: failed to get booking: %v", err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 2. Начавшийся слот отменить нельзя
	now := uc.timeProvider.Now()
	if booked.Slot.HasStarted(now) {
		uc.logger.Warn("CancelBooking: booking id=%d slot=%d already started", booked.Booking.ID, booked.Slot.ID)
		return nil, ErrTooLate
	}

	// 3. Удаляем бронирование, запрос повторно проверяет, что слот не начался
	if err := uc.bookingRepo.DeleteUpcomingByToken(ctx, req.Token, now); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, uc.explainMissedDelete(ctx, req.Token, booked)
		}
		uc.logger.Error("CancelBooking: failed to delete booking id=%d: %v", booked.Booking.ID, err)
		return nil, fmt.Errorf("%w: failed to delete booking: %v", ErrInternal, err)
	}

	uc.metrics.BookingCancelled(booked.Slot.DateType, domain.CancelledByUser)
	uc.logger.Info("CancelBooking: booking id=%d cancelled, slot=%d is open", booked.Booking.ID, booked.Slot.ID)

	// 4. Оповещаем лист ожидания, ошибка рассылки не отменяет отмену
	resp := &Response{Slot: booked.Slot}
	result, err := uc.notifier.Notify(ctx, booked.Slot.DateType)
	if err != nil {
		uc.logger.Error("CancelBooking: failed to notify waiting list date_type=%s: %v", booked.Slot.DateType, err)
		return resp, nil
	}
	resp.Notified = result.Sent

	return resp, nil
}

// explainMissedDelete различает удалённое параллельно бронирование и начавшийся слот
func (uc *UseCase) explainMissedDelete(ctx context.Context, token string, booked *domain.BookedSlot) error {
	if _, err := uc.bookingRepo.GetByToken(ctx, token); err == nil {
		uc.logger.Warn("CancelBooking: booking id=%d slot=%d started before delete", booked.Booking.ID, booked.Slot.ID)
		return ErrTooLate
	}
	uc.logger.Warn("CancelBooking: booking id=%d removed concurrently", booked.Booking.ID)
	return ErrBookingNotFound
}
