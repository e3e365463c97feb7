package room

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("room.repository: room not found")

	// ErrRoomExists возвращается при нарушении UNIQUE(room_number)
	ErrRoomExists = errors.New("room.repository: room already exists")

	// ErrRoomInUse возвращается, если на комнату ссылаются слоты
	ErrRoomInUse = errors.New("room.repository: room is referenced by dates")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("room.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("room.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("room.repository: failed to scan row")
)
