package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
	"github.com/m04kA/SMC-RehearsalBooking/internal/i18n"
	bookingRepo "github.com/m04kA/SMC-RehearsalBooking/internal/infra/storage/booking"
	dateTypeRepo "github.com/m04kA/SMC-RehearsalBooking/internal/infra/storage/datetype"
	"github.com/m04kA/SMC-RehearsalBooking/internal/integrations/mailer"
	"github.com/m04kA/SMC-RehearsalBooking/internal/usecase/get_available_slots"
)

// UseCase use case для создания бронирования
type UseCase struct {
	availability    AvailabilityProvider
	bookingRepo     BookingRepository
	dateTypeRepo    DateTypeRepository
	waitingListRepo WaitingListRepository
	txManager       TransactionManager
	mailer          Mailer
	metrics         Metrics
	validate        *validator.Validate
	location        *time.Location
	webAddress      string
	newToken        func() string
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availability AvailabilityProvider,
	bookingRepo BookingRepository,
	dateTypeRepo DateTypeRepository,
	waitingListRepo WaitingListRepository,
	txManager TransactionManager,
	mailer Mailer,
	metrics Metrics,
	location *time.Location,
	webAddress string,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		availability:    availability,
		bookingRepo:     bookingRepo,
		dateTypeRepo:    dateTypeRepo,
		waitingListRepo: waitingListRepo,
		txManager:       txManager,
		mailer:          mailer,
		metrics:         metrics,
		validate:        validator.New(),
		location:        location,
		webAddress:      webAddress,
		newToken:        uuid.NewString,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Бронирование и удаление из листа ожидания выполняются в одной транзакции, письмо уходит после коммита
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: slot=%d, voice=%s, with_token=%t", req.SlotID, req.Voice, req.Token != "")

	lang := i18n.Normalize(req.Lang)
	req.Email = strings.TrimSpace(req.Email)
	req.PersonName = strings.TrimSpace(req.PersonName)

	// 1. Повторно проверяем доступность слота для этого зрителя
	available, err := uc.availability.GetAvailable(ctx, &get_available_slots.GetRequest{
		SlotID: req.SlotID,
		Token:  req.Token,
		Lang:   lang,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrDateGone):
			uc.logger.Warn("CreateBooking: slot=%d is gone", req.SlotID)
			return nil, ErrDateGone
		case errors.Is(err, ErrDateTaken):
			uc.logger.Warn("CreateBooking: slot=%d is already booked", req.SlotID)
			return nil, ErrDateTaken
		}
		uc.logger.Error("CreateBooking: failed to check availability slot=%d: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to check availability: %v", ErrInternal, err)
	}
	slot := available.Slot

	// 2. Валидация формы
	if err := validateRequest(uc.validate, req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 3. Голос должен относиться к типу слота и иметь перевод
	voice, err := uc.dateTypeRepo.GetVoice(ctx, slot.DateType, req.Voice, lang)
	if err != nil {
		switch {
		case errors.Is(err, dateTypeRepo.ErrVoiceNotFound):
			uc.logger.Warn("CreateBooking: voice=%s does not belong to date_type=%s", req.Voice, slot.DateType)
			return nil, ErrVoiceMismatch
		case errors.Is(err, dateTypeRepo.ErrTranslationMissing):
			uc.logger.Error("CreateBooking: voice=%s has no translation lang=%s", req.Voice, lang)
			return nil, ErrVoiceTranslationMissing
		}
		uc.logger.Error("CreateBooking: failed to get voice=%s: %v", req.Voice, err)
		return nil, fmt.Errorf("%w: failed to get voice: %v", ErrInternal, err)
	}

	// 4. Токен листа ожидания привязан к адресу
	if available.Entry != nil && available.Entry.Email != req.Email {
		uc.logger.Warn("CreateBooking: waiting list token email mismatch slot=%d", req.SlotID)
		return nil, ErrDateGone
	}

	var created *domain.Booking

	// 5. Бронирование и удаление из листа ожидания атомарно
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			SlotID:     slot.ID,
			Email:      req.Email,
			PersonName: req.PersonName,
			Notes:      req.Notes,
			Voice:      voice.Value,
			Token:      uc.newToken(),
			Lang:       lang,
		}, slot.DateType)
		if err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrSlotAlreadyBooked):
				uc.logger.Warn("CreateBooking: slot=%d was booked concurrently", slot.ID)
				return ErrDateTaken
			case errors.Is(err, bookingRepo.ErrSlotNotFound):
				uc.logger.Warn("CreateBooking: slot=%d was deleted concurrently", slot.ID)
				return ErrDateGone
			case errors.Is(err, bookingRepo.ErrVoiceNotFound):
				return ErrVoiceMismatch
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		if err := uc.waitingListRepo.DeleteByEmail(txCtx, req.Email, slot.DateType); err != nil {
			uc.logger.Error("CreateBooking: failed to remove waiting list entry: %v", err)
			return fmt.Errorf("%w: failed to remove waiting list entry: %v", ErrInternal, err)
		}

		created = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.BookingCreated(slot.DateType)
	uc.logger.Info("CreateBooking: successfully created booking id=%d slot=%d", created.ID, slot.ID)

	// 6. Письмо с подтверждением после коммита
	mailErr := uc.mailer.Send(ctx, mailer.Message{
		To:         created.Email,
		Lang:       lang,
		SubjectKey: mailer.SubjectBooking,
		Template:   mailer.TemplateBooking,
		Data: map[string]string{
			"day":         slot.From.In(uc.location).Format(domain.DayFormat),
			"from":        slot.From.In(uc.location).Format(domain.TimeFormat),
			"to":          slot.To.In(uc.location).Format(domain.TimeFormat),
			"room_number": slot.RoomNumber,
			"voice":       voice.DisplayName,
			"link":        domain.BookingDeleteLink(uc.webAddress, created.Token),
		},
	})
	if mailErr != nil {
		uc.logger.Error("CreateBooking: failed to send confirmation booking=%d: %v", created.ID, mailErr)
		uc.metrics.MailFailed(mailer.TemplateBooking)
	}

	return &Response{
		Booking:   created,
		Slot:      slot,
		VoiceName: voice.DisplayName,
		MailSent:  mailErr == nil,
	}, nil
}
