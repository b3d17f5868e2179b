// Package i18n resolves the clock's labels (weekdays, months, greetings) for
// the configured language code.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Codes that are not BCP 47 tags as written.
var codeTags = map[string]language.Tag{
	"jp":    language.Japanese,
	"zh_CN": language.MustParse("zh-CN"),
	"zh_HK": language.MustParse("zh-HK"),
}

var cat = buildCatalog()

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for code, msgs := range translations {
		tag := Tag(code)
		for key, msg := range msgs {
			// SetString only fails on malformed messages; these are literals.
			_ = b.SetString(tag, key, msg)
		}
	}
	return b
}

// Tag maps a language code such as "fr" or "zh_CN" to a language tag,
// falling back to English.
func Tag(code string) language.Tag {
	if t, ok := codeTags[code]; ok {
		return t
	}
	t, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil {
		return language.English
	}
	return t
}

// Translator looks up labels for one language.
type Translator struct {
	lang    string
	tag     language.Tag
	printer *message.Printer
}

func New(lang string) *Translator {
	if lang == "" {
		lang = "en"
	}
	tag := Tag(lang)
	return &Translator{
		lang:    lang,
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(cat)),
	}
}

// Lang returns the code the translator was built with.
func (t *Translator) Lang() string { return t.lang }

func (t *Translator) Tag() language.Tag { return t.tag }

// Trad returns the localized label, or text itself when no translation exists.
func (t *Translator) Trad(text string) string {
	return t.printer.Sprintf(text)
}
