package waitinglist

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
	"github.com/m04kA/SMC-RehearsalBooking/internal/i18n"
	dateTypeRepo "github.com/m04kA/SMC-RehearsalBooking/internal/infra/storage/datetype"
	entryRepo "github.com/m04kA/SMC-RehearsalBooking/internal/infra/storage/waitinglist"
	"github.com/m04kA/SMC-RehearsalBooking/internal/integrations/mailer"
)

// Service сервис листа ожидания: подписка, отписка и рассылка приглашений
type Service struct {
	entryRepo    EntryRepository
	dateTypeRepo DateTypeRepository
	policy       Policy
	mailer       Mailer
	metrics      Metrics
	validate     *validator.Validate
	webAddress   string
	newToken     func() string
	logger       Logger
}

// NewService создает новый экземпляр сервиса листа ожидания
func NewService(
	entryRepo EntryRepository,
	dateTypeRepo DateTypeRepository,
	policy Policy,
	mailer Mailer,
	metrics Metrics,
	webAddress string,
	logger Logger,
) *Service {
	return &Service{
		entryRepo:    entryRepo,
		dateTypeRepo: dateTypeRepo,
		policy:       policy,
		mailer:       mailer,
		metrics:      metrics,
		validate:     validator.New(),
		webAddress:   webAddress,
		newToken:     uuid.NewString,
		logger:       logger,
	}
}

// Subscribe добавляет адрес в лист ожидания типа
// Повторная подписка возвращает существующую запись, письмо с подтверждением отправляется в обоих случаях
func (s *Service) Subscribe(ctx context.Context, dateType, email, lang string) (*SubscribeResult, error) {
	s.logger.Info("Subscribe: date_type=%s", dateType)

	if err := s.validate.Var(email, fmt.Sprintf("required,email,max=%d", domain.MaxEmailLength)); err != nil {
		s.logger.Warn("Subscribe: invalid email for date_type=%s", dateType)
		return nil, ErrInvalidEmail
	}

	dt, err := s.getDateType(ctx, dateType, i18n.Normalize(lang))
	if err != nil {
		return nil, err
	}

	entry, created, err := s.entryRepo.Upsert(ctx, &domain.WaitingListEntry{
		DateType: dt.Value,
		Email:    email,
		Token:    s.newToken(),
		Lang:     i18n.Normalize(lang),
	})
	if err != nil {
		if errors.Is(err, entryRepo.ErrDateTypeNotFound) {
			return nil, ErrDateTypeNotFound
		}
		s.logger.Error("Subscribe: failed to upsert entry date_type=%s: %v", dateType, err)
		return nil, fmt.Errorf("%w: Subscribe - repository error: %v", ErrInternal, err)
	}

	if created {
		s.metrics.WaitingListSubscription(dt.Value)
	}

	err = s.mailer.Send(ctx, mailer.Message{
		To:          entry.Email,
		Lang:        entry.Lang,
		SubjectKey:  mailer.SubjectWaitingList,
		SubjectArgs: map[string]string{"datetype": dt.DisplayName},
		Template:    mailer.TemplateWaitingListConfirmation,
		Data: map[string]string{
			"unsubscribe": domain.UnsubscribeLink(s.webAddress, entry.Token),
		},
	})
	if err != nil {
		s.logger.Error("Subscribe: failed to send confirmation entry=%d: %v", entry.ID, err)
		s.metrics.MailFailed(mailer.TemplateWaitingListConfirmation)
	}

	s.logger.Info("Subscribe: entry=%d, created=%t", entry.ID, created)
	return &SubscribeResult{Entry: entry, Created: created, MailSent: err == nil}, nil
}

// Unsubscribe удаляет запись по токену, неизвестный токен игнорируется
func (s *Service) Unsubscribe(ctx context.Context, token string) error {
	if err := s.entryRepo.DeleteByToken(ctx, token); err != nil {
		if errors.Is(err, entryRepo.ErrEntryNotFound) {
			s.logger.Info("Unsubscribe: token not found, nothing to do")
			return nil
		}
		s.logger.Error("Unsubscribe: repository error: %v", err)
		return fmt.Errorf("%w: Unsubscribe - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Unsubscribe: entry removed")
	return nil
}

// GetSubscription возвращает запись и тип для страницы отписки
func (s *Service) GetSubscription(ctx context.Context, token, lang string) (*Subscription, error) {
	entry, err := s.entryRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, entryRepo.ErrEntryNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		s.logger.Error("GetSubscription: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetSubscription - repository error: %v", ErrInternal, err)
	}

	dt, err := s.dateTypeRepo.Get(ctx, entry.DateType, i18n.Normalize(lang))
	if err != nil {
		s.logger.Error("GetSubscription: failed to get date_type=%s: %v", entry.DateType, err)
		return nil, fmt.Errorf("%w: GetSubscription - date type: %v", ErrInternal, err)
	}

	return &Subscription{Entry: entry, DateType: dt}, nil
}

// Notify рассылает приглашение каждой записи типа на языке записи
// Ошибка отправки одному адресату не прерывает рассылку, записи не удаляются
func (s *Service) Notify(ctx context.Context, dateType string) (*NotifyResult, error) {
	s.logger.Info("Notify: date_type=%s", dateType)

	entries, err := s.entryRepo.ListByDateType(ctx, dateType)
	if err != nil {
		s.logger.Error("Notify: failed to list entries date_type=%s: %v", dateType, err)
		return nil, fmt.Errorf("%w: Notify - repository error: %v", ErrInternal, err)
	}

	result := &NotifyResult{}
	names := make(map[string]string)

	for _, entry := range entries {
		name, ok := names[entry.Lang]
		if !ok {
			dt, err := s.dateTypeRepo.Get(ctx, dateType, entry.Lang)
			if err != nil {
				s.logger.Error("Notify: failed to get date_type=%s lang=%s: %v", dateType, entry.Lang, err)
				result.Failed++
				s.metrics.WaitingListNotification(dateType, false)
				continue
			}
			name = dt.DisplayName
			names[entry.Lang] = name
		}

		err := s.mailer.Send(ctx, mailer.Message{
			To:          entry.Email,
			Lang:        entry.Lang,
			SubjectKey:  mailer.SubjectWaitingList,
			SubjectArgs: map[string]string{"datetype": name},
			Template:    mailer.TemplateWaitingListInvite,
			Data: map[string]string{
				"link":        domain.DateOverviewLink(s.webAddress, dateType),
				"unsubscribe": domain.UnsubscribeLink(s.webAddress, entry.Token),
			},
		})
		if err != nil {
			s.logger.Error("Notify: failed to send invite entry=%d: %v", entry.ID, err)
			result.Failed++
			s.metrics.WaitingListNotification(dateType, false)
			s.metrics.MailFailed(mailer.TemplateWaitingListInvite)
			continue
		}

		result.Sent++
		s.metrics.WaitingListNotification(dateType, true)
	}

	s.logger.Info("Notify: date_type=%s, sent=%d, failed=%d", dateType, result.Sent, result.Failed)
	return result, nil
}

func (s *Service) getDateType(ctx context.Context, value, lang string) (*domain.DateType, error) {
	if !s.policy.IsDateTypeEnabled(value) {
		s.logger.Warn("Subscribe: date_type=%s is not enabled", value)
		return nil, ErrDateTypeNotFound
	}

	dt, err := s.dateTypeRepo.Get(ctx, value, lang)
	if err != nil {
		if errors.Is(err, dateTypeRepo.ErrDateTypeNotFound) {
			return nil, ErrDateTypeNotFound
		}
		s.logger.Error("Subscribe: failed to get date_type=%s: %v", value, err)
		return nil, fmt.Errorf("%w: Subscribe - date type: %v", ErrInternal, err)
	}

	return dt, nil
}
