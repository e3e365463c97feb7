package rooms

import (
	"errors"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
)

var (
	// ErrInvalidRoomNumber номер комнаты пустой или слишком длинный
	ErrInvalidRoomNumber = domain.NewError(domain.KindValidation, "validation-room-number")

	// ErrRoomAlreadyExists комната с таким номером уже есть
	ErrRoomAlreadyExists = domain.NewError(domain.KindConflict, "room-already-exists")

	// ErrRoomInUse на комнату ссылаются слоты
	ErrRoomInUse = domain.NewError(domain.KindConflict, "room-in-use")

	// ErrRoomNotFound комната не найдена
	ErrRoomNotFound = domain.NewError(domain.KindNotFound, "room-not-found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("rooms.service: internal error")
)
