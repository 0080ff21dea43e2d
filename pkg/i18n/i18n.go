// Package i18n хранит статические словари интерфейсных строк (ru/en).
// Словари загружаются один раз при старте процесса и неизменяемы.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed locales/*.json
var localeFS embed.FS

// DefaultLocale используется для отсутствующего или неизвестного сегмента.
const DefaultLocale = "ru"

// Bundle — словарь строк одного языка.
type Bundle struct {
	Code     string
	messages map[string]string
}

// T возвращает строку по ключу; для неизвестного ключа — сам ключ,
// чтобы рендер не падал из-за недостающего перевода.
func (b *Bundle) T(key string) string {
	if v, ok := b.messages[key]; ok {
		return v
	}
	return key
}

var bundles = map[string]*Bundle{}

func init() {
	for _, code := range []string{"ru", "en"} {
		raw, err := localeFS.ReadFile("locales/" + code + ".json")
		if err != nil {
			panic(fmt.Sprintf("i18n: missing bundle %q: %v", code, err))
		}
		var msgs map[string]string
		if err := json.Unmarshal(raw, &msgs); err != nil {
			panic(fmt.Sprintf("i18n: malformed bundle %q: %v", code, err))
		}
		bundles[code] = &Bundle{Code: code, messages: msgs}
	}
}

// Resolve отображает сегмент пути в словарь. Неизвестный или пустой
// сегмент даёт словарь по умолчанию (ru). Чистая функция без побочных
// эффектов.
func Resolve(segment string) *Bundle {
	if b, ok := bundles[segment]; ok {
		return b
	}
	return bundles[DefaultLocale]
}
