// Package i18n renders the bot's texts in English and Amharic and maps
// button labels back to canonical values.
package i18n

import (
	"DVBot/model"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// MissingText is returned for keys absent from the catalog.
const MissingText = "Text Missing"

var tags = map[model.Language]language.Tag{
	model.LanguageEnglish: language.English,
	model.LanguageAmharic: language.Amharic,
}

// Texts is the localized text provider. It is safe for concurrent use
// once built.
type Texts struct {
	printers map[model.Language]*message.Printer
	keys     map[string]struct{}
}

// New builds the catalog from the built-in English and Amharic tables.
func New() *Texts {
	return newTexts(map[model.Language]map[string]string{
		model.LanguageEnglish: english,
		model.LanguageAmharic: amharic,
	})
}

func newTexts(tables map[model.Language]map[string]string) *Texts {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	keys := make(map[string]struct{})
	for lang, table := range tables {
		for key, msg := range table {
			if err := b.SetString(tags[lang], key, msg); err != nil {
				panic("i18n: " + err.Error())
			}
			keys[key] = struct{}{}
		}
	}

	t := &Texts{
		printers: make(map[model.Language]*message.Printer, len(tags)),
		keys:     keys,
	}
	for lang, tag := range tags {
		t.printers[lang] = message.NewPrinter(tag, message.Catalog(b))
	}
	return t
}

// Text renders key in lang, substituting args into its placeholders.
// Unsupported languages fall back to English.
func (t *Texts) Text(lang model.Language, key string, args ...any) string {
	if _, ok := t.keys[key]; !ok {
		return MissingText
	}
	p, ok := t.printers[lang]
	if !ok {
		p = t.printers[model.LanguageEnglish]
	}
	return p.Sprintf(key, args...)
}
