// Package ots реализует клиент сервиса одноразового обмена секретами
// (one-time secret sharing).
//
// # Обзор
//
// Секрет публикуется на сервере один раз и может быть получен ровно один
// раз; после получения (или явного сжигания) сервер удаляет значение.
// Клиент покрывает весь REST API сервиса: публикацию, генерацию,
// получение, метаданные, сжигание, список недавних секретов и статус
// сервера.
//
// # Ключевые компоненты
//
// ## Config
//
// Неизменяемая конфигурация одного вызова: хост, версия API, учётные
// данные, формат вывода. Собирается один раз (ConfigFromEnv + флаги CLI)
// и передаётся явно — глобального состояния нет.
//
//	cfg := ots.ConfigFromEnv()
//	cfg.Username = "user@example.com"
//	cfg.APIKey = "..."
//
// ## Client
//
// HTTP-клиент API. Один вызов — один синхронный запрос; без retry,
// пулов и фонового состояния. Basic Auth подставляется, когда заданы
// обе учётные записи. В режиме Debug запрос логируется и не
// отправляется (dry run, ErrDryRun).
//
//	client := ots.New(cfg)
//	secret, err := client.Share(ctx, "the password", nil)
//
// Ответы сервера не валидируются по схеме: каждый результат хранит
// типизированные поля best-effort и исходное тело (Raw) для форматтеров.
//
// Терминология:
//   - metadata key — приватный идентификатор создателя секрета;
//   - secret key — публичный идентификатор из ссылки для получателя.
package ots
