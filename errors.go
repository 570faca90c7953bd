package ots

import "errors"

// Ошибки клиента.
var (
	// ErrMissingKey — действию не передан metadata или secret key.
	ErrMissingKey = errors.New("metadata or secret key required")

	// ErrAuthRequired — действие требует учётных данных, а они не заданы.
	// Возвращается до какого-либо сетевого ввода-вывода.
	ErrAuthRequired = errors.New("authentication required")

	// ErrDryRun — запрос не отправлен из-за режима отладки.
	ErrDryRun = errors.New("dry run: request not sent")
)

// Ошибки разбора конфигурации.
var (
	// ErrUnknownFormat — неизвестный режим вывода в --format.
	ErrUnknownFormat = errors.New("unknown output format")
)
