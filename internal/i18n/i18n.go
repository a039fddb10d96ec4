// Package i18n holds the translations of holiday names and labels.
//
// Message ids are the holiday names in a country's default language.
// Countries register tables for their other languages at init; an id with
// no translation is returned unchanged.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var messages = catalog.NewBuilder()

// Register adds translations for lang, e.g. "en_US" or "zh-CN".
func Register(lang string, translations map[string]string) error {
	tag, err := Parse(lang)
	if err != nil {
		return err
	}
	for id, text := range translations {
		if err := messages.SetString(tag, id, text); err != nil {
			return fmt.Errorf("register %s %q: %w", lang, id, err)
		}
	}
	return nil
}

// MustRegister is Register for package init.
func MustRegister(lang string, translations map[string]string) {
	if err := Register(lang, translations); err != nil {
		panic(err)
	}
}

// Parse reads a language tag, accepting "_" as a separator.
func Parse(lang string) (language.Tag, error) {
	tag, err := language.Parse(strings.ReplaceAll(lang, "_", "-"))
	if err != nil {
		return language.Und, fmt.Errorf("parse language %q: %w", lang, err)
	}
	return tag, nil
}

// Match returns the entry of supported that best fits requested, which may
// be a single tag or an Accept-Language header. It returns fallback when
// nothing matches.
func Match(requested string, supported []string, fallback string) string {
	if requested == "" || len(supported) == 0 {
		return fallback
	}

	// The fallback goes first so that it wins ties.
	candidates := []string{fallback}
	for _, s := range supported {
		if s != fallback {
			candidates = append(candidates, s)
		}
	}
	tags := make([]language.Tag, 0, len(candidates))
	for _, c := range candidates {
		tag, err := Parse(c)
		if err != nil {
			tag = language.Und
		}
		tags = append(tags, tag)
	}

	desired, _, err := language.ParseAcceptLanguage(strings.ReplaceAll(requested, "_", "-"))
	if err != nil || len(desired) == 0 {
		return fallback
	}
	_, index, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence == language.No {
		return fallback
	}
	return candidates[index]
}

// Translator renders message ids in one language.
type Translator struct {
	lang    string
	printer *message.Printer
}

// New returns a translator for lang. An unparsable lang leaves ids
// untranslated.
func New(lang string) *Translator {
	tag, err := Parse(lang)
	if err != nil {
		tag = language.Und
	}
	return &Translator{
		lang:    lang,
		printer: message.NewPrinter(tag, message.Catalog(messages)),
	}
}

// Language returns the language the translator was created for.
func (t *Translator) Language() string { return t.lang }

// T returns the translation of msgID.
func (t *Translator) T(msgID string) string {
	return t.printer.Sprintf(msgID)
}

// Sprintf translates the format msgID and applies args.
func (t *Translator) Sprintf(msgID string, args ...any) string {
	return t.printer.Sprintf(msgID, args...)
}
