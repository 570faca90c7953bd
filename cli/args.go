package cli

import (
	"fmt"
	"strings"

	"github.com/shaiso/ots"
)

// Invocation — результат классификации аргументов: всё, что нужно
// для одного вызова API.
type Invocation struct {
	// Action — выбранное действие; по умолчанию share.
	Action Action

	// Config — конфигурация после применения флагов.
	Config ots.Config

	// Fields — поля формы name=value в исходном порядке, с дубликатами.
	Fields ots.FormFields

	// Secret — явные значения секрета: --secret и всё после "--".
	Secret []string

	// Args — позиционные аргументы (ключ для действий с ключом,
	// текст секрета для share).
	Args []string

	// Help — встретился --help; действие не выполняется.
	Help bool

	// Version — встретился --version; действие не выполняется.
	Version bool

	// Warnings — нефатальные замечания разбора (неизвестные флаги).
	Warnings []string
}

// Parse классифицирует аргументы за один проход слева направо.
// Каждый токен попадает ровно в одну корзину; правила в порядке
// приоритета: разделитель "--", известные флаги, ключевые слова
// действий, ключевые слова форматов, поля name=value, позиционные.
// Неизвестные флаги записываются в Warnings и пропускаются.
func Parse(argv []string, base ots.Config) *Invocation {
	inv := &Invocation{
		Action: ActionShare,
		Config: base,
	}

	secretText := false
	for i := 0; i < len(argv); i++ {
		tok := argv[i]

		if secretText {
			inv.Secret = append(inv.Secret, tok)
			continue
		}
		if tok == "--" {
			secretText = true
			continue
		}

		if strings.HasPrefix(tok, "-") && tok != "-" {
			name, val, hasVal := tok, "", false
			if n, v, ok := strings.Cut(tok, "="); ok {
				name, val, hasVal = n, v, true
			}

			// value забирает значение флага: из формы --flag=value
			// или из следующего токена.
			value := func() (string, bool) {
				if hasVal {
					return val, true
				}
				if i+1 < len(argv) {
					i++
					return argv[i], true
				}
				inv.warnf("option %s requires a value", name)
				return "", false
			}

			switch name {
			case "-H", "--help":
				inv.Help = true
				return inv
			case "-V", "--version":
				inv.Version = true
				return inv
			case "-D", "--debug":
				inv.Config.Debug = true
			case "-h", "--host":
				if v, ok := value(); ok {
					inv.Config.Host = v
				}
			case "-u", "--user":
				if v, ok := value(); ok {
					inv.Config.Username = v
				}
			case "-k", "--key":
				if v, ok := value(); ok {
					inv.Config.APIKey = v
				}
			case "-f", "--format":
				if v, ok := value(); ok {
					f, tmpl, err := ots.ParseFormat(v)
					if err != nil {
						inv.warnf("%v", err)
						continue
					}
					inv.Config.Format = f
					inv.Config.FmtTemplate = tmpl
				}
			case "-s", "--secret":
				if v, ok := value(); ok {
					inv.Secret = append(inv.Secret, v)
				}
			default:
				inv.warnf("unknown option: %s", tok)
			}
			continue
		}

		if action, ok := actionKeywords[tok]; ok {
			// последнее ключевое слово выигрывает, это не ошибка
			inv.Action = action
			continue
		}
		switch tok {
		case "json", "yaml", "raw":
			f, _, _ := ots.ParseFormat(tok)
			inv.Config.Format = f
			continue
		}
		if name, val, ok := strings.Cut(tok, "="); ok {
			inv.Fields.Add(name, val)
			continue
		}
		inv.Args = append(inv.Args, tok)
	}

	return inv
}

func (inv *Invocation) warnf(format string, args ...any) {
	inv.Warnings = append(inv.Warnings, fmt.Sprintf(format, args...))
}

// SecretPayload собирает значение секрета из явных флагов или
// позиционных аргументов, в обоих случаях через пробел.
// false означает, что секрет нужно читать из stdin.
func (inv *Invocation) SecretPayload() (string, bool) {
	if len(inv.Secret) > 0 {
		return strings.Join(inv.Secret, " "), true
	}
	if len(inv.Args) > 0 {
		return strings.Join(inv.Args, " "), true
	}
	return "", false
}

// KeyArg возвращает первый позиционный аргумент — metadata или
// secret key действия.
func (inv *Invocation) KeyArg() string {
	if len(inv.Args) == 0 {
		return ""
	}
	return inv.Args[0]
}
