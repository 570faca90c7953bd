// Package telemetry настраивает логирование через log/slog.
//
// Логгер пишет текстом в stderr вызова: stdout зарезервирован под
// данные, чтобы вывод можно было передавать по конвейеру. Уровень
// задаётся переменной LOG_LEVEL (DEBUG, INFO, WARN, ERROR; по
// умолчанию WARN) или флагом --debug.
package telemetry
