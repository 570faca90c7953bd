package cli

// Action — действие одного вызова CLI.
type Action string

const (
	// ActionStatus — запросить состояние сервера.
	ActionStatus Action = "status"

	// ActionShare — опубликовать секрет, напечатать публичную ссылку.
	ActionShare Action = "share"

	// ActionMetashare — опубликовать секрет, напечатать приватную ссылку.
	ActionMetashare Action = "metashare"

	// ActionGenerate — сгенерировать случайный секрет.
	ActionGenerate Action = "generate"

	// ActionMetagenerate — сгенерировать, напечатать приватную ссылку.
	ActionMetagenerate Action = "metagenerate"

	// ActionRetrieve — получить значение секрета (одноразово).
	ActionRetrieve Action = "retrieve"

	// ActionBurn — сжечь секрет до получения.
	ActionBurn Action = "burn"

	// ActionMetadata — напечатать метаданные секрета.
	ActionMetadata Action = "metadata"

	// ActionRecent — список недавних секретов (требует учётных данных).
	ActionRecent Action = "recent"

	// ActionState — состояние секрета из его метаданных.
	ActionState Action = "state"

	// ActionKey — secret key, полученный из метаданных.
	ActionKey Action = "key"

	// ActionURL — публичная ссылка, полученная из метаданных.
	ActionURL Action = "url"

	// ActionMetaURL — приватная ссылка по metadata key, без запроса.
	ActionMetaURL Action = "metaurl"
)

// actionKeywords — таблица ключевых слов командной строки.
// Несколько слов могут вести к одному действию (get/retrieve,
// key/secret_key).
var actionKeywords = map[string]Action{
	"status":       ActionStatus,
	"share":        ActionShare,
	"metashare":    ActionMetashare,
	"generate":     ActionGenerate,
	"metagenerate": ActionMetagenerate,
	"get":          ActionRetrieve,
	"retrieve":     ActionRetrieve,
	"burn":         ActionBurn,
	"metadata":     ActionMetadata,
	"recent":       ActionRecent,
	"state":        ActionState,
	"key":          ActionKey,
	"secret_key":   ActionKey,
	"url":          ActionURL,
	"metaurl":      ActionMetaURL,
}

// NeedsKey сообщает, требует ли действие metadata или secret key
// первым позиционным аргументом.
func (a Action) NeedsKey() bool {
	switch a {
	case ActionRetrieve, ActionBurn, ActionMetadata, ActionState,
		ActionKey, ActionURL, ActionMetaURL:
		return true
	default:
		return false
	}
}
