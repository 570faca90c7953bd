package ots

import (
	"errors"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in       string
		format   Format
		template string
		wantErr  bool
	}{
		{in: "json", format: FormatJSON},
		{in: "yaml", format: FormatYAML},
		{in: "raw", format: FormatRaw},
		{in: "fmt", format: FormatFmt},
		{in: "fmt:link: %s", format: FormatFmt, template: "link: %s"},
		{in: "xml", wantErr: true},
		{in: "", wantErr: true},
		{in: "json:nope", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			format, template, err := ParseFormat(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Fatalf("expected ErrUnknownFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if format != tt.format {
				t.Errorf("expected format %q, got %q", tt.format, format)
			}
			if template != tt.template {
				t.Errorf("expected template %q, got %q", tt.template, template)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("OTS_HOST", "https://example.com")
	t.Setenv("OTS_USER", "user@example.com")
	t.Setenv("OTS_KEY", "apikey")
	t.Setenv("OTS_FORMAT", "yaml")

	cfg := ConfigFromEnv()
	if cfg.Host != "https://example.com" {
		t.Errorf("unexpected host: %q", cfg.Host)
	}
	if cfg.Username != "user@example.com" || cfg.APIKey != "apikey" {
		t.Errorf("unexpected credentials: %q %q", cfg.Username, cfg.APIKey)
	}
	if cfg.Format != FormatYAML {
		t.Errorf("unexpected format: %q", cfg.Format)
	}
	if !cfg.Authenticated() {
		t.Error("expected authenticated config")
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("OTS_HOST", "")
	t.Setenv("OTS_USER", "")
	t.Setenv("OTS_KEY", "")
	t.Setenv("OTS_FORMAT", "bogus") // некорректный формат игнорируется

	cfg := ConfigFromEnv()
	if cfg.Host != DefaultHost {
		t.Errorf("expected default host, got %q", cfg.Host)
	}
	if cfg.Format != FormatDefault {
		t.Errorf("expected default format, got %q", cfg.Format)
	}
	if cfg.Authenticated() {
		t.Error("expected unauthenticated config")
	}
}

func TestConfigURLs(t *testing.T) {
	cfg := Config{Host: "https://example.com/"}

	if got := cfg.SecretURL("abc123"); got != "https://example.com/secret/abc123" {
		t.Errorf("unexpected secret URL: %q", got)
	}
	if got := cfg.MetadataURL("m1"); got != "https://example.com/private/m1" {
		t.Errorf("unexpected metadata URL: %q", got)
	}
	if got := cfg.apiURL("/status"); got != "https://example.com/api/v1/status" {
		t.Errorf("unexpected api URL: %q", got)
	}
}

func TestNormalizeKey(t *testing.T) {
	cfg := Config{Host: "https://example.com"}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "bare key", in: "abc123", want: "abc123"},
		{name: "secret URL", in: "https://example.com/secret/abc123", want: "abc123"},
		{name: "trailing segment", in: "https://example.com/private/m1", want: "m1"},
		{name: "other host untouched", in: "https://other.example/secret/abc123", want: "https://other.example/secret/abc123"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.NormalizeKey(tt.in); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestConfigString_RedactsKey(t *testing.T) {
	cfg := Config{Host: "https://example.com", Username: "u", APIKey: "verysecret"}
	s := cfg.String()
	if !strings.Contains(s, "[REDACTED]") {
		t.Errorf("expected redacted key in %q", s)
	}
	if strings.Contains(s, "verysecret") {
		t.Errorf("api key leaked in %q", s)
	}
}
