package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/shaiso/ots"
	"github.com/shaiso/ots/internal/telemetry"
)

// Fallback-сообщения для ответов без ожидаемого поля.
const (
	unknownError = "Unknown Error"
	unknownState = "unknown"
)

// Run выполняет один вызов CLI: классифицирует argv, делает один
// запрос API и печатает результат. Встраиваемая точка входа: все
// потоки и конфигурация передаются явно, вызов полностью синхронный.
//
// Dry run (--debug), --help и --version завершаются без ошибки. Остальные ошибки
// возвращаются вызывающему; в stdout при этом ничего не печатается.
func Run(ctx context.Context, base ots.Config, argv []string, stdin io.Reader, stdout, stderr io.Writer) error {
	inv := Parse(argv, base)
	log := telemetry.New(inv.Config.Debug, stderr)
	for _, w := range inv.Warnings {
		log.Warn(w)
	}
	if inv.Help {
		fmt.Fprint(stdout, usageText)
		return nil
	}
	if inv.Version {
		fmt.Fprintln(stdout, "ots "+Version)
		return nil
	}

	client := ots.New(inv.Config)
	client.Logger = log

	r := &runner{
		client: client,
		inv:    inv,
		out:    NewOutput(inv.Config, stdout, stderr),
		stdin:  stdin,
		stderr: stderr,
	}
	err := r.dispatch(ctx)
	if errors.Is(err, ots.ErrDryRun) {
		return nil
	}
	return err
}

// runner — состояние одного вызова CLI.
type runner struct {
	client *ots.Client
	inv    *Invocation
	out    *Output
	stdin  io.Reader
	stderr io.Writer
}

// dispatch выбирает обработчик действия. Switch исчерпывающий:
// новое действие без обработчика — ошибка программы, не молчание.
func (r *runner) dispatch(ctx context.Context) error {
	switch r.inv.Action {
	case ActionStatus:
		return r.runStatus(ctx)
	case ActionShare, ActionMetashare:
		return r.runShare(ctx)
	case ActionGenerate, ActionMetagenerate:
		return r.runGenerate(ctx)
	case ActionRetrieve:
		return r.runRetrieve(ctx)
	case ActionMetadata:
		return r.runMetadata(ctx)
	case ActionState:
		return r.runState(ctx)
	case ActionBurn:
		return r.runBurn(ctx)
	case ActionRecent:
		return r.runRecent(ctx)
	case ActionKey, ActionURL:
		return r.runDerived(ctx)
	case ActionMetaURL:
		return r.runMetaURL()
	default:
		return fmt.Errorf("no handler for action %q", r.inv.Action)
	}
}

func (r *runner) runStatus(ctx context.Context) error {
	res, err := r.client.Status(ctx)
	if err != nil {
		return err
	}
	line := firstNonEmpty(res.Status, res.Message, unknownError)
	return r.out.Emit(res.Raw(), line)
}

func (r *runner) runShare(ctx context.Context) error {
	secret, ok := r.inv.SecretPayload()
	if !ok {
		var err error
		secret, err = r.readSecret()
		if err != nil {
			return err
		}
	}
	res, err := r.client.Share(ctx, secret, r.inv.Fields)
	if err != nil {
		return err
	}
	return r.emitCreated(res)
}

func (r *runner) runGenerate(ctx context.Context) error {
	res, err := r.client.Generate(ctx, r.inv.Fields)
	if err != nil {
		return err
	}
	return r.emitCreated(res)
}

// emitCreated печатает результат создания секрета: публичную ссылку
// для share/generate, приватную — для meta-вариантов.
func (r *runner) emitCreated(res *ots.Secret) error {
	cfg := r.client.Config()
	line := cfg.SecretURL(res.SecretKey)
	if r.inv.Action == ActionMetashare || r.inv.Action == ActionMetagenerate {
		line = cfg.MetadataURL(res.MetadataKey)
	}
	return r.out.Emit(res.Raw(), line, line, res.SecretKey, res.MetadataKey)
}

func (r *runner) runRetrieve(ctx context.Context) error {
	key, err := r.requireKey()
	if err != nil {
		return err
	}
	res, err := r.client.Retrieve(ctx, key, r.inv.Fields)
	if err != nil {
		return err
	}
	line := firstNonEmpty(res.Value, res.Message, unknownError)
	return r.out.Emit(res.Raw(), line)
}

func (r *runner) runMetadata(ctx context.Context) error {
	key, err := r.requireKey()
	if err != nil {
		return err
	}
	res, err := r.client.Metadata(ctx, key)
	if err != nil {
		return err
	}
	line := res.Message
	if line == "" {
		// нет сообщения — показываем весь объект
		line = prettyJSON(res.Raw())
	}
	return r.out.Emit(res.Raw(), line)
}

func (r *runner) runState(ctx context.Context) error {
	key, err := r.requireKey()
	if err != nil {
		return err
	}
	res, err := r.client.Metadata(ctx, key)
	if err != nil {
		return err
	}
	line := firstNonEmpty(res.State, res.Message, unknownState)
	return r.out.Emit(res.Raw(), line)
}

func (r *runner) runBurn(ctx context.Context) error {
	key, err := r.requireKey()
	if err != nil {
		return err
	}
	res, err := r.client.Burn(ctx, key)
	if err != nil {
		return err
	}
	line := firstNonEmpty(res.State.State, res.Message, unknownError)
	return r.out.Emit(res.Raw(), line)
}

func (r *runner) runRecent(ctx context.Context) error {
	res, err := r.client.Recent(ctx)
	if err != nil {
		return err
	}
	if len(res.Secrets) > 0 {
		keys := make([]string, len(res.Secrets))
		for i, s := range res.Secrets {
			keys[i] = s.MetadataKey
		}
		return r.out.Emit(res.Raw(), strings.Join(keys, "\n"))
	}
	return r.out.Emit(res.Raw(), firstNonEmpty(res.Message, unknownError))
}

// runDerived обрабатывает key и url: secret key берётся из вложенного
// запроса метаданных, наружу уходит ключ или публичная ссылка.
func (r *runner) runDerived(ctx context.Context) error {
	key, err := r.requireKey()
	if err != nil {
		return err
	}
	res, err := r.client.Metadata(ctx, key)
	if err != nil {
		return err
	}
	line := firstNonEmpty(res.SecretKey, res.Message, unknownError)
	if r.inv.Action == ActionURL && res.SecretKey != "" {
		line = r.client.Config().SecretURL(res.SecretKey)
	}
	return r.out.Emit(res.Raw(), line)
}

// runMetaURL собирает приватную ссылку локально, без запроса.
func (r *runner) runMetaURL() error {
	key, err := r.requireKey()
	if err != nil {
		return err
	}
	return r.out.Println(r.client.Config().MetadataURL(key))
}

// requireKey возвращает обязательный ключ действия или ErrMissingKey
// до какого-либо сетевого ввода-вывода.
func (r *runner) requireKey() (string, error) {
	key := r.inv.KeyArg()
	if key == "" {
		return "", fmt.Errorf("%s: %w", r.inv.Action, ots.ErrMissingKey)
	}
	return key, nil
}

// readSecret читает секрет из stdin до конца потока. Приглашение
// печатается только на интерактивном терминале, никогда при pipe.
func (r *runner) readSecret() (string, error) {
	if f, ok := r.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprintln(r.stderr, "Enter secret, end with Ctrl-D:")
	}
	data, err := io.ReadAll(r.stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read secret from stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// firstNonEmpty возвращает первое непустое значение цепочки fallback.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// prettyJSON печатает тело с отступами; битый JSON возвращается как есть.
func prettyJSON(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
