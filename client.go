package ots

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Field — одна пара имя/значение multipart-формы.
type Field struct {
	Name  string
	Value string
}

// FormFields — упорядоченный набор полей формы, пересылаемых серверу
// как есть. Дубликаты не схлопываются: сервер получает все значения
// в исходном порядке.
type FormFields []Field

// Add добавляет поле в конец набора.
func (f *FormFields) Add(name, value string) {
	*f = append(*f, Field{Name: name, Value: value})
}

// Client — HTTP-клиент API одноразовых секретов.
// Клиент не хранит состояния между вызовами и может использоваться
// повторно с разными Config через ots.New.
type Client struct {
	// HTTPClient переопределяет транспорт; по умолчанию клиент
	// с таймаутом 30 секунд.
	HTTPClient *http.Client

	// Logger переопределяет логгер; по умолчанию slog.Default.
	Logger *slog.Logger

	cfg Config
}

// New создаёт клиент для заданной конфигурации.
func New(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Config возвращает конфигурацию клиента.
func (c *Client) Config() Config {
	return c.cfg
}

func (c *Client) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// do выполняет один запрос к API и возвращает тело ответа.
// Тело возвращается и для не-2xx статусов: ошибочные payload сервера
// проходят через цепочку fallback-полей, а не через ошибку Go.
// В режиме Debug запрос логируется и не отправляется (ErrDryRun).
func (c *Client) do(ctx context.Context, method, path string, fields FormFields) ([]byte, error) {
	url := c.cfg.apiURL(path)
	requestID := uuid.NewString()
	log := c.logger().With("request_id", requestID)

	if c.cfg.Debug {
		names := make([]string, len(fields))
		for i, f := range fields {
			names[i] = f.Name
		}
		log.Info("dry run, request not sent",
			"method", method,
			"url", url,
			"fields", names,
			"authenticated", c.cfg.Authenticated(),
		)
		return nil, ErrDryRun
	}

	var body io.Reader
	contentType := ""
	if method == http.MethodPost && len(fields) > 0 {
		buf := &bytes.Buffer{}
		mw := multipart.NewWriter(buf)
		for _, f := range fields {
			if err := mw.WriteField(f.Name, f.Value); err != nil {
				return nil, fmt.Errorf("failed to encode form field %q: %w", f.Name, err)
			}
		}
		if err := mw.Close(); err != nil {
			return nil, fmt.Errorf("failed to finish form body: %w", err)
		}
		body = buf
		contentType = mw.FormDataContentType()
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.cfg.Authenticated() {
		req.SetBasicAuth(c.cfg.Username, c.cfg.APIKey)
	}

	log.Debug("api request", "method", method, "url", url)
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s %s failed: %w", method, url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	log.Debug("api response", "status", resp.StatusCode, "bytes", len(data))
	return data, nil
}

// decode разбирает тело ответа best-effort. API не даёт гарантий схемы,
// поэтому неожиданная форма — не ошибка транспорта: поля остаются
// пустыми, а обработчики работают через цепочку fallback. Режим raw
// обещает не разбирать тело, в нём диагностика уходит только в Debug.
func (c *Client) decode(data []byte, v any) {
	if err := json.Unmarshal(data, v); err != nil {
		log := c.logger().Warn
		if c.cfg.Format == FormatRaw {
			log = c.logger().Debug
		}
		log("response is not the expected JSON shape", "error", err)
	}
}
