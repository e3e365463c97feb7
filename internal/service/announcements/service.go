package announcements

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
	"github.com/m04kA/SMC-RehearsalBooking/internal/i18n"
	announcementRepo "github.com/m04kA/SMC-RehearsalBooking/internal/infra/storage/announcement"
	dateTypeRepo "github.com/m04kA/SMC-RehearsalBooking/internal/infra/storage/datetype"
	"github.com/m04kA/SMC-RehearsalBooking/internal/service/announcements/models"
)

// Service сервис объявлений над списком типов, списком слотов и формой бронирования
type Service struct {
	announcementRepo AnnouncementRepository
	dateTypeRepo     DateTypeRepository
	validate         *validator.Validate
	logger           Logger
}

// NewService создает новый экземпляр сервиса объявлений
func NewService(announcementRepo AnnouncementRepository, dateTypeRepo DateTypeRepository, logger Logger) *Service {
	return &Service{
		announcementRepo: announcementRepo,
		dateTypeRepo:     dateTypeRepo,
		validate:         validator.New(),
		logger:           logger,
	}
}

// Content возвращает текст объявления позиции на языке lang
// Отсутствующее объявление дает пустую строку, ошибка хранилища только логируется
func (s *Service) Content(ctx context.Context, position, lang string) string {
	lang = i18n.Normalize(lang)

	announcement, err := s.announcementRepo.Get(ctx, position, lang)
	if err != nil {
		if !errors.Is(err, announcementRepo.ErrAnnouncementNotFound) {
			s.logger.Error("Content: repository error for position=%s, lang=%s: %v", position, lang, err)
		}
		return ""
	}

	return announcement.Content
}

// List возвращает все объявления для администратора
func (s *Service) List(ctx context.Context) (*models.AnnouncementListResponse, error) {
	list, err := s.announcementRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAnnouncements(list), nil
}

// Update создает или заменяет объявление позиции на языке lang
func (s *Service) Update(ctx context.Context, position, lang string, req *models.UpdateAnnouncementRequest) (*models.AnnouncementResponse, error) {
	s.logger.Info("Update: position=%s, lang=%s", position, lang)

	// 1. Язык должен иметь каталог сообщений, подстановки языка по умолчанию здесь нет
	if !domain.IsSupportedLanguage(lang) {
		s.logger.Warn("Update: unsupported lang=%s", lang)
		return nil, ErrInvalidLanguage
	}

	// 2. Позиция: general или существующий тип дат
	if err := s.checkPosition(ctx, position, lang); err != nil {
		return nil, err
	}

	// 3. Длина текста
	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, ErrContentTooLong
	}

	// 4. Сохранение
	announcement, err := s.announcementRepo.Upsert(ctx, position, lang, req.Content)
	if err != nil {
		s.logger.Error("Update: repository error for position=%s, lang=%s: %v", position, lang, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: position=%s, lang=%s saved", position, lang)
	return models.FromDomainAnnouncement(announcement), nil
}

func (s *Service) checkPosition(ctx context.Context, position, lang string) error {
	if position == domain.AnnouncementGeneral {
		return nil
	}

	_, err := s.dateTypeRepo.Get(ctx, position, lang)
	if errors.Is(err, dateTypeRepo.ErrDateTypeNotFound) {
		s.logger.Warn("Update: unknown position=%s", position)
		return ErrInvalidPosition
	}
	if err != nil {
		s.logger.Error("Update: date type lookup failed for position=%s: %v", position, err)
		return fmt.Errorf("%w: Update - date type lookup: %v", ErrInternal, err)
	}

	return nil
}
