// Package cli реализует командную поверхность клиента ots.
//
// # Обзор
//
// Пакет превращает плоский список аргументов командной строки в один
// вызов API и печатает результат. Он же — встраиваемая поверхность:
// Run можно вызывать из чужого процесса с явными Config и потоками
// ввода-вывода, каждый вызов синхронный и независимый.
//
// # Ключевые компоненты
//
// ## Классификатор аргументов
//
// Parse за один проход слева направо раскладывает токены по корзинам:
// флаги конфигурации, ключевое слово действия (последнее выигрывает),
// поля формы name=value (порядок и дубликаты сохраняются), значение
// секрета и позиционные аргументы. Токен "--" завершает разбор флагов:
// всё после него — текст секрета как есть.
//
// Неизвестные флаги не фатальны: предупреждение в stderr, токен
// пропускается. Это осознанная мягкость разбора, а не упущение.
//
// ## Диспетчер действий
//
// Закрытое перечисление Action и исчерпывающий switch: каждому
// действию — один запрос API и одна цепочка fallback-полей ответа
// (например state → message → "unknown").
//
// ## Вывод
//
// Output печатает результат в выбранном формате: извлечённая строка
// (по умолчанию), pretty JSON, yaml-строки "key: value", printf-шаблон
// или сырые байты. Данные идут в stdout, диагностика — в stderr.
package cli
