package ots

import (
	"fmt"
	"os"
	"strings"
)

// Значения по умолчанию для публичного сервиса.
const (
	DefaultHost    = "https://onetimesecret.com"
	DefaultAPIBase = "api/v1"
)

// Format — режим вывода результата.
type Format string

const (
	// FormatDefault — извлечённое значение действия (URL, value, state).
	FormatDefault Format = ""

	// FormatJSON — всё тело ответа как pretty JSON.
	FormatJSON Format = "json"

	// FormatYAML — тело ответа построчно как "key: value".
	FormatYAML Format = "yaml"

	// FormatFmt — printf-шаблон, заполняемый извлечёнными значениями.
	FormatFmt Format = "fmt"

	// FormatRaw — байты ответа без разбора.
	FormatRaw Format = "raw"
)

// ParseFormat разбирает значение флага --format (или OTS_FORMAT).
// Форма "fmt:<шаблон>" задаёт printf-шаблон: --format 'fmt:link: %s'.
func ParseFormat(s string) (Format, string, error) {
	name, tmpl, hasTmpl := strings.Cut(s, ":")
	switch Format(name) {
	case FormatJSON, FormatYAML, FormatRaw:
		if hasTmpl {
			return FormatDefault, "", fmt.Errorf("%w: format %q does not take a template", ErrUnknownFormat, name)
		}
		return Format(name), "", nil
	case FormatFmt:
		return FormatFmt, tmpl, nil
	default:
		return FormatDefault, "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Config — конфигурация одного вызова клиента.
// Заполняется до первого запроса и дальше не меняется.
type Config struct {
	// Host — базовый URL сервиса, например https://onetimesecret.com.
	Host string

	// APIBase — сегмент версии API, например "api/v1".
	APIBase string

	// Username и APIKey — учётные данные Basic Auth.
	// Запросы аутентифицируются только когда заданы оба.
	Username string
	APIKey   string

	// Format и FmtTemplate — режим вывода CLI.
	Format      Format
	FmtTemplate string

	// Debug включает dry run: запросы логируются и не отправляются.
	Debug bool
}

// String возвращает представление конфигурации с закрытым API-ключом.
func (c Config) String() string {
	key := ""
	if c.APIKey != "" {
		key = "[REDACTED]"
	}
	return fmt.Sprintf("Config{Host: %q, Username: %q, APIKey: %s}", c.Host, c.Username, key)
}

// ConfigFromEnv собирает конфигурацию из переменных окружения
// OTS_HOST, OTS_USER, OTS_KEY и OTS_FORMAT. Незаданные переменные
// заменяются значениями по умолчанию; некорректный OTS_FORMAT
// игнорируется (строгая проверка есть только у флага --format).
func ConfigFromEnv() Config {
	cfg := Config{
		Host:     DefaultHost,
		APIBase:  DefaultAPIBase,
		Username: os.Getenv("OTS_USER"),
		APIKey:   os.Getenv("OTS_KEY"),
	}
	if host := os.Getenv("OTS_HOST"); host != "" {
		cfg.Host = host
	}
	if format := os.Getenv("OTS_FORMAT"); format != "" {
		if f, tmpl, err := ParseFormat(format); err == nil {
			cfg.Format = f
			cfg.FmtTemplate = tmpl
		}
	}
	return cfg
}

// Authenticated сообщает, заданы ли обе части учётных данных.
func (c Config) Authenticated() bool {
	return c.Username != "" && c.APIKey != ""
}

// SecretURL возвращает публичную ссылку на секрет для получателя.
func (c Config) SecretURL(secretKey string) string {
	return c.host() + "/secret/" + secretKey
}

// MetadataURL возвращает приватную ссылку на метаданные секрета.
func (c Config) MetadataURL(metadataKey string) string {
	return c.host() + "/private/" + metadataKey
}

// NormalizeKey принимает ключ секрета или полную ссылку на него.
// Ссылка с настроенным хостом сводится к последнему сегменту пути;
// любой другой токен возвращается как есть.
func (c Config) NormalizeKey(s string) string {
	if !strings.HasPrefix(s, c.host()+"/") {
		return s
	}
	return s[strings.LastIndex(s, "/")+1:]
}

// apiURL собирает адрес эндпоинта: {host}/{APIBase}{path}.
func (c Config) apiURL(path string) string {
	base := c.APIBase
	if base == "" {
		base = DefaultAPIBase
	}
	return c.host() + "/" + strings.Trim(base, "/") + path
}

func (c Config) host() string {
	host := c.Host
	if host == "" {
		host = DefaultHost
	}
	return strings.TrimRight(host, "/")
}
