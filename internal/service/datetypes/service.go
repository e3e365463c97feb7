package datetypes

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RehearsalBooking/internal/i18n"
	dateTypeRepo "github.com/m04kA/SMC-RehearsalBooking/internal/infra/storage/datetype"
	"github.com/m04kA/SMC-RehearsalBooking/internal/service/datetypes/models"
)

// Service сервис типов дат: публичный список, голоса и дедлайны
type Service struct {
	dateTypeRepo DateTypeRepository
	enabled      []string
	logger       Logger
}

// NewService создает новый экземпляр сервиса типов
// enabled типы, доступные в публичной части
func NewService(dateTypeRepo DateTypeRepository, enabled []string, logger Logger) *Service {
	return &Service{
		dateTypeRepo: dateTypeRepo,
		enabled:      enabled,
		logger:       logger,
	}
}

// ListEnabled возвращает включенные типы с названиями на языке lang
func (s *Service) ListEnabled(ctx context.Context, lang string) (*models.DateTypeListResponse, error) {
	list, err := s.dateTypeRepo.List(ctx, s.enabled, i18n.Normalize(lang))
	if err != nil {
		s.logger.Error("ListEnabled: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListEnabled - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDateTypes(list), nil
}

// ListVoices возвращает голоса формы бронирования для включенного типа
func (s *Service) ListVoices(ctx context.Context, dateType, lang string) (*models.VoiceListResponse, error) {
	if !s.isEnabled(dateType) {
		s.logger.Warn("ListVoices: date_type=%s is not enabled", dateType)
		return nil, ErrDateTypeNotFound
	}

	lang = i18n.Normalize(lang)
	if _, err := s.dateTypeRepo.Get(ctx, dateType, lang); err != nil {
		return nil, s.mapRepoError("ListVoices", dateType, err)
	}

	voices, err := s.dateTypeRepo.ListVoices(ctx, dateType, lang)
	if err != nil {
		s.logger.Error("ListVoices: repository error for date_type=%s: %v", dateType, err)
		return nil, fmt.Errorf("%w: ListVoices - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainVoices(dateType, voices), nil
}

// UpdateDeadline меняет или снимает дедлайн подачи заявок
// Доступно только администратору, включенность типа не проверяется
func (s *Service) UpdateDeadline(ctx context.Context, dateType string, req *models.UpdateDeadlineRequest) (*models.DateTypeResponse, error) {
	s.logger.Info("UpdateDeadline: date_type=%s, deadline=%v", dateType, req.Deadline)

	updated, err := s.dateTypeRepo.UpdateDeadline(ctx, dateType, req.Deadline)
	if err != nil {
		return nil, s.mapRepoError("UpdateDeadline", dateType, err)
	}

	s.logger.Info("UpdateDeadline: date_type=%s updated", dateType)
	return models.FromDomainDateType(updated), nil
}

func (s *Service) isEnabled(dateType string) bool {
	for _, v := range s.enabled {
		if v == dateType {
			return true
		}
	}
	return false
}

func (s *Service) mapRepoError(op, dateType string, err error) error {
	if errors.Is(err, dateTypeRepo.ErrDateTypeNotFound) {
		s.logger.Warn("%s: date_type=%s not found", op, dateType)
		return ErrDateTypeNotFound
	}
	s.logger.Error("%s: repository error for date_type=%s: %v", op, dateType, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
