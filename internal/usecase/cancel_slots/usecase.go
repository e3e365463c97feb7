package cancel_slots

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
	"github.com/m04kA/SMC-RehearsalBooking/internal/integrations/mailer"
)

// UseCase use case отмены слотов администратором
type UseCase struct {
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	mailer      Mailer
	notifier    Notifier
	metrics     Metrics
	location    *time.Location
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	mailer Mailer,
	notifier Notifier,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		mailer:      mailer,
		notifier:    notifier,
		metrics:     metrics,
		location:    location,
		logger:      logger,
	}
}

// Execute удаляет слоты вместе с бронированиями, сообщает забронировавшим и оповещает листы ожидания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	ids := uniqueIDs(req.SlotIDs)
	uc.logger.Info("CancelSlots: slots=%v", ids)

	if len(ids) == 0 {
		return nil, ErrNothingSelected
	}

	var (
		bookings []*domain.BookedSlot
		deleted  int64
	)

	// 1. Блокируем слоты, читаем бронирования и удаляем слоты в одной транзакции
	// Бронирования удаляются каскадом, под блокировкой новых бронирований на эти слоты не появится
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := uc.slotRepo.LockByIDs(txCtx, ids); err != nil {
			uc.logger.Error("CancelSlots: failed to lock slots: %v", err)
			return fmt.Errorf("%w: failed to lock slots: %v", ErrInternal, err)
		}

		var err error
		bookings, err = uc.bookingRepo.ListBySlotIDs(txCtx, ids)
		if err != nil {
			uc.logger.Error("CancelSlots: failed to list bookings: %v", err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		deleted, err = uc.slotRepo.DeleteByIDs(txCtx, ids)
		if err != nil {
			uc.logger.Error("CancelSlots: failed to delete slots: %v", err)
			return fmt.Errorf("%w: failed to delete slots: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := &Response{
		DeletedSlots:      deleted,
		CancelledBookings: len(bookings),
		FailedMails:       []FailedMail{},
		NotifiedDateTypes: []string{},
	}

	// 2. Письма об отмене на языке бронирования
	for _, b := range bookings {
		uc.metrics.BookingCancelled(b.Slot.DateType, domain.CancelledByAdmin)

		explanation := strings.TrimSpace(req.Explanations[b.Booking.Lang])
		if explanation == "" {
			continue
		}

		if err := uc.mailer.Send(ctx, uc.cancellationMessage(b, explanation)); err != nil {
			uc.logger.Error("CancelSlots: failed to send cancellation booking=%d: %v", b.Booking.ID, err)
			uc.metrics.MailFailed(mailer.TemplateCancellation)
			resp.FailedMails = append(resp.FailedMails, FailedMail{BookingID: b.Booking.ID, Email: b.Booking.Email})
			continue
		}
		resp.MailsSent++
	}

	// 3. Каждый тип, потерявший бронирование, получил свободное место
	for _, dateType := range affectedDateTypes(bookings) {
		if _, err := uc.notifier.Notify(ctx, dateType); err != nil {
			uc.logger.Error("CancelSlots: failed to notify waiting list date_type=%s: %v", dateType, err)
			continue
		}
		resp.NotifiedDateTypes = append(resp.NotifiedDateTypes, dateType)
	}

	uc.logger.Info("CancelSlots: deleted=%d, bookings=%d, mails_sent=%d, mails_failed=%d",
		resp.DeletedSlots, resp.CancelledBookings, resp.MailsSent, len(resp.FailedMails))

	return resp, nil
}

func (uc *UseCase) cancellationMessage(b *domain.BookedSlot, explanation string) mailer.Message {
	return mailer.Message{
		To:         b.Booking.Email,
		Lang:       b.Booking.Lang,
		SubjectKey: mailer.SubjectCancel,
		Template:   mailer.TemplateCancellation,
		Data: map[string]string{
			"day":         b.Slot.From.In(uc.location).Format(domain.DayFormat),
			"from":        b.Slot.From.In(uc.location).Format(domain.TimeFormat),
			"to":          b.Slot.To.In(uc.location).Format(domain.TimeFormat),
			"room_number": b.Slot.RoomNumber,
			"explanation": explanation,
		},
	}
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func affectedDateTypes(bookings []*domain.BookedSlot) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, b := range bookings {
		if !seen[b.Slot.DateType] {
			seen[b.Slot.DateType] = true
			out = append(out, b.Slot.DateType)
		}
	}
	sort.Strings(out)
	return out
}
