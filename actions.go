package ots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// StatusResult — ответ эндпоинта /status.
type StatusResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`

	raw json.RawMessage
}

// Raw возвращает исходное тело ответа.
func (r *StatusResult) Raw() json.RawMessage { return r.raw }

// Secret — метаданные секрета, как их отдаёт сервер.
// Share, Generate, Retrieve и Metadata возвращают подмножества одних
// и тех же полей; отсутствующие остаются нулевыми.
type Secret struct {
	Custid             string `json:"custid"`
	MetadataKey        string `json:"metadata_key"`
	SecretKey          string `json:"secret_key"`
	TTL                int64  `json:"ttl"`
	MetadataTTL        int64  `json:"metadata_ttl"`
	SecretTTL          int64  `json:"secret_ttl"`
	State              string `json:"state"`
	Value              string `json:"value"`
	PassphraseRequired bool   `json:"passphrase_required"`
	Message            string `json:"message"`

	raw json.RawMessage
}

// Raw возвращает исходное тело ответа.
func (s *Secret) Raw() json.RawMessage { return s.raw }

// BurnResult — ответ эндпоинта сжигания. Состояние здесь вложенное:
// {"state": {"state": "burned"}}, в отличие от плоского поля Metadata.
type BurnResult struct {
	State struct {
		State string `json:"state"`
	} `json:"state"`
	Message string `json:"message"`

	raw json.RawMessage
}

// Raw возвращает исходное тело ответа.
func (r *BurnResult) Raw() json.RawMessage { return r.raw }

// RecentResult — список недавно созданных секретов.
type RecentResult struct {
	Secrets []Secret
	Message string

	raw json.RawMessage
}

// Raw возвращает исходное тело ответа.
func (r *RecentResult) Raw() json.RawMessage { return r.raw }

// Status запрашивает состояние сервера.
func (c *Client) Status(ctx context.Context) (*StatusResult, error) {
	data, err := c.do(ctx, http.MethodGet, "/status", nil)
	if err != nil {
		return nil, err
	}
	r := &StatusResult{raw: data}
	c.decode(data, r)
	return r, nil
}

// Share публикует секрет. Дополнительные поля формы (ttl, passphrase,
// recipient и любые другие) пересылаются серверу как есть.
func (c *Client) Share(ctx context.Context, secret string, fields FormFields) (*Secret, error) {
	form := append(FormFields{}, fields...)
	form.Add("secret", secret)
	data, err := c.do(ctx, http.MethodPost, "/share", form)
	if err != nil {
		return nil, err
	}
	s := &Secret{raw: data}
	c.decode(data, s)
	return s, nil
}

// Generate просит сервер создать секрет со случайным значением.
func (c *Client) Generate(ctx context.Context, fields FormFields) (*Secret, error) {
	data, err := c.do(ctx, http.MethodPost, "/generate", fields)
	if err != nil {
		return nil, err
	}
	s := &Secret{raw: data}
	c.decode(data, s)
	return s, nil
}

// Retrieve получает значение секрета. Принимает secret key или полную
// ссылку на секрет; получение одноразовое, повторный вызов вернёт
// сообщение об ошибке сервера.
func (c *Client) Retrieve(ctx context.Context, key string, fields FormFields) (*Secret, error) {
	key = c.cfg.NormalizeKey(key)
	if key == "" {
		return nil, ErrMissingKey
	}
	data, err := c.do(ctx, http.MethodPost, "/secret/"+url.PathEscape(key), fields)
	if err != nil {
		return nil, err
	}
	s := &Secret{raw: data}
	c.decode(data, s)
	return s, nil
}

// Metadata запрашивает приватные метаданные секрета по metadata key.
func (c *Client) Metadata(ctx context.Context, metadataKey string) (*Secret, error) {
	if metadataKey == "" {
		return nil, ErrMissingKey
	}
	data, err := c.do(ctx, http.MethodPost, "/private/"+url.PathEscape(metadataKey), nil)
	if err != nil {
		return nil, err
	}
	s := &Secret{raw: data}
	c.decode(data, s)
	return s, nil
}

// Burn сжигает секрет до его получения.
func (c *Client) Burn(ctx context.Context, metadataKey string) (*BurnResult, error) {
	if metadataKey == "" {
		return nil, ErrMissingKey
	}
	data, err := c.do(ctx, http.MethodPost, "/private/"+url.PathEscape(metadataKey)+"/burn", nil)
	if err != nil {
		return nil, err
	}
	r := &BurnResult{raw: data}
	c.decode(data, r)
	return r, nil
}

// Recent возвращает метаданные недавно созданных секретов.
// Требует учётных данных; без них завершается ErrAuthRequired
// до какого-либо сетевого ввода-вывода.
func (c *Client) Recent(ctx context.Context) (*RecentResult, error) {
	if !c.cfg.Authenticated() {
		return nil, ErrAuthRequired
	}
	data, err := c.do(ctx, http.MethodGet, "/private/recent", nil)
	if err != nil {
		return nil, err
	}
	r := &RecentResult{raw: data}
	if err := json.Unmarshal(data, &r.Secrets); err != nil {
		// не массив: вероятно, объект с сообщением об ошибке
		var m struct {
			Message string `json:"message"`
		}
		c.decode(data, &m)
		r.Message = m.Message
	}
	return r, nil
}
