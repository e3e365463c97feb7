package announcement

import "errors"

var (
	// ErrAnnouncementNotFound возвращается, когда объявления для позиции и языка нет
	ErrAnnouncementNotFound = errors.New("announcement.repository: announcement not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("announcement.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("announcement.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("announcement.repository: failed to scan row")
)
