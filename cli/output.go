package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/shaiso/ots"
)

// Output форматирует результат действия. Данные идут в w (stdout),
// диагностика — в errW (stderr), чтобы вывод можно было передавать
// по конвейеру.
type Output struct {
	format   ots.Format
	template string
	w        io.Writer
	errW     io.Writer
}

// NewOutput создаёт Output для конфигурации вызова.
func NewOutput(cfg ots.Config, w, errW io.Writer) *Output {
	return &Output{
		format:   cfg.Format,
		template: cfg.FmtTemplate,
		w:        w,
		errW:     errW,
	}
}

// Emit печатает результат действия. raw — тело ответа сервера,
// line — извлечённое значение для режима по умолчанию, fmtArgs —
// значения printf-шаблона (если пусто, подставляется line).
//
// Режим raw никогда не разбирает raw и не может упасть на битом JSON;
// json, yaml и fmt требуют корректного JSON и падают детерминированно.
func (o *Output) Emit(raw []byte, line string, fmtArgs ...any) error {
	switch o.format {
	case ots.FormatRaw:
		_, err := o.w.Write(raw)
		return err

	case ots.FormatJSON:
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return fmt.Errorf("response is not valid JSON: %w", err)
		}
		buf.WriteByte('\n')
		_, err := o.w.Write(buf.Bytes())
		return err

	case ots.FormatYAML:
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("response is not valid JSON: %w", err)
		}
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to render yaml: %w", err)
		}
		_, err = o.w.Write(data)
		return err

	case ots.FormatFmt:
		if !json.Valid(raw) {
			return fmt.Errorf("response is not valid JSON")
		}
		return o.printf(line, fmtArgs...)

	default:
		_, err := fmt.Fprintln(o.w, line)
		return err
	}
}

// Println печатает строку, собранную без ответа сервера (производные
// ссылки). Тела нет, поэтому json, yaml и raw печатают строку как есть;
// fmt применяет printf-шаблон.
func (o *Output) Println(line string) error {
	if o.format == ots.FormatFmt {
		return o.printf(line)
	}
	_, err := fmt.Fprintln(o.w, line)
	return err
}

// printf применяет printf-шаблон режима fmt; пустой шаблон — "%s\n".
func (o *Output) printf(line string, fmtArgs ...any) error {
	args := fmtArgs
	if len(args) == 0 {
		args = []any{line}
	}
	template := o.template
	if template == "" {
		template = "%s\n"
	}
	_, err := fmt.Fprintf(o.w, template, args...)
	return err
}

// Error печатает диагностику в stderr.
func (o *Output) Error(msg string) {
	fmt.Fprintln(o.errW, "Error: "+msg)
}
