package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotAlreadyBooked возвращается при нарушении UNIQUE(date_id): слот уже занят
	ErrSlotAlreadyBooked = errors.New("booking.repository: slot already booked")

	// ErrSlotNotFound возвращается, когда слот бронирования не существует
	ErrSlotNotFound = errors.New("booking.repository: slot not found")

	// ErrVoiceNotFound возвращается, когда голос не относится к типу слота
	ErrVoiceNotFound = errors.New("booking.repository: voice not found for date type")

	// ErrDuplicateToken возвращается при коллизии токена
	ErrDuplicateToken = errors.New("booking.repository: duplicate token")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
