package i18n

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
)

//go:embed locales/*.toml
var locales embed.FS

// Catalog переводы сообщений по языкам
type Catalog struct {
	messages map[string]map[string]string
	fallback string
}

// New загружает встроенные каталоги
func New() (*Catalog, error) {
	c := &Catalog{
		messages: make(map[string]map[string]string, len(domain.SupportedLanguages)),
		fallback: domain.DefaultLanguage,
	}

	for _, lang := range domain.SupportedLanguages {
		data, err := locales.ReadFile(path.Join("locales", lang+".toml"))
		if err != nil {
			return nil, fmt.Errorf("i18n: read catalog %s: %w", lang, err)
		}

		messages := make(map[string]string)
		if _, err := toml.Decode(string(data), &messages); err != nil {
			return nil, fmt.Errorf("i18n: decode catalog %s: %w", lang, err)
		}
		c.messages[lang] = messages
	}

	return c, nil
}

// MustNew как New, но паникует при ошибке
func MustNew() *Catalog {
	c, err := New()
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup возвращает перевод без подстановки аргументов
func (c *Catalog) Lookup(lang, key string) (string, bool) {
	if messages, ok := c.messages[lang]; ok {
		if msg, ok := messages[key]; ok {
			return msg, true
		}
	}
	return "", false
}

// Translate переводит ключ и подставляет аргументы {name}
// Если перевода нет, используется язык по умолчанию, затем сам ключ
func (c *Catalog) Translate(lang, key string, args map[string]string) string {
	msg, ok := c.Lookup(lang, key)
	if !ok {
		msg, ok = c.Lookup(c.fallback, key)
	}
	if !ok {
		return key
	}

	if len(args) == 0 {
		return msg
	}

	pairs := make([]string, 0, len(args)*2)
	for name, value := range args {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

var matcher = language.NewMatcher([]language.Tag{language.German, language.English})

// MatchLanguage выбирает язык запроса: cookie, затем Accept-Language, затем язык по умолчанию
func MatchLanguage(cookie, acceptLanguage string) string {
	if domain.IsSupportedLanguage(cookie) {
		return cookie
	}

	if acceptLanguage == "" {
		return domain.DefaultLanguage
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return domain.DefaultLanguage
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return domain.DefaultLanguage
	}
	return domain.SupportedLanguages[index]
}

// Normalize возвращает поддерживаемый язык или язык по умолчанию
func Normalize(lang string) string {
	if domain.IsSupportedLanguage(lang) {
		return lang
	}
	return domain.DefaultLanguage
}
