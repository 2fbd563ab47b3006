package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("session.repository: session not found")

	// ErrSlotConflict возвращается, когда вставка нарушила ограничение занятости
	// (конкурирующая запись успела занять тот же интервал)
	ErrSlotConflict = errors.New("session.repository: slot conflict")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("session.repository: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("session.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("session.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("session.repository: failed to scan row")
)
