package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shaiso/ots"
)

func newTestOutput(format ots.Format, template string) (*Output, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := ots.Config{Format: format, FmtTemplate: template}
	return NewOutput(cfg, &buf, &bytes.Buffer{}), &buf
}

func TestOutput_Default(t *testing.T) {
	out, buf := newTestOutput(ots.FormatDefault, "")
	if err := out.Emit([]byte(`{"value":"hello"}`), "hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "hello\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestOutput_YAML(t *testing.T) {
	out, buf := newTestOutput(ots.FormatYAML, "")
	if err := out.Emit([]byte(`{"status":"ok"}`), "ok"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "status: ok\n" {
		t.Errorf("expected single yaml line, got %q", buf.String())
	}
}

func TestOutput_JSON(t *testing.T) {
	out, buf := newTestOutput(ots.FormatJSON, "")
	if err := out.Emit([]byte(`{"status":"ok"}`), "ok"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "{\n  \"status\": \"ok\"\n}\n"
	if buf.String() != want {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestOutput_Fmt(t *testing.T) {
	out, buf := newTestOutput(ots.FormatFmt, "link: %s\n")
	if err := out.Emit([]byte(`{}`), "https://example.com/secret/abc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "link: https://example.com/secret/abc\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestOutput_FmtExtraArgs(t *testing.T) {
	out, buf := newTestOutput(ots.FormatFmt, "%[2]s %[3]s\n")
	err := out.Emit([]byte(`{}`), "line", "line", "abc", "m1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "abc m1\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestOutput_PrintlnHonorsFmtTemplate(t *testing.T) {
	tests := []struct {
		name     string
		format   ots.Format
		template string
		want     string
	}{
		{"default", ots.FormatDefault, "", "https://example.com/private/m1\n"},
		{"fmt", ots.FormatFmt, "link: %s\n", "link: https://example.com/private/m1\n"},
		{"json prints plain line", ots.FormatJSON, "", "https://example.com/private/m1\n"},
		{"raw prints plain line", ots.FormatRaw, "", "https://example.com/private/m1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, buf := newTestOutput(tt.format, tt.template)
			if err := out.Println("https://example.com/private/m1"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("unexpected output: %q", buf.String())
			}
		})
	}
}

func TestOutput_RawNeverParses(t *testing.T) {
	out, buf := newTestOutput(ots.FormatRaw, "")
	malformed := []byte("not json at all")
	if err := out.Emit(malformed, "ignored"); err != nil {
		t.Fatalf("raw mode must not fail: %v", err)
	}
	if buf.String() != "not json at all" {
		t.Errorf("raw bytes changed: %q", buf.String())
	}
}

func TestOutput_ParsedModesRejectMalformed(t *testing.T) {
	for _, format := range []ots.Format{ots.FormatJSON, ots.FormatYAML, ots.FormatFmt} {
		t.Run(string(format), func(t *testing.T) {
			out, buf := newTestOutput(format, "%s")
			err := out.Emit([]byte("not json"), "line")
			if err == nil || !strings.Contains(err.Error(), "not valid JSON") {
				t.Fatalf("expected deterministic JSON error, got %v", err)
			}
			if buf.Len() != 0 {
				t.Errorf("nothing must be printed on error, got %q", buf.String())
			}
		})
	}
}
