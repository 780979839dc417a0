package render

import (
	"errors"
	"strings"

	"github.com/goliatone/go-formbs/pkg/element"
)

// Translator resolves a message key for a locale. Args carry optional
// context; label lookups pass a map with "default" and "domain" entries.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a function to Translator.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

// Translate implements Translator.
func (fn TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	return fn(locale, key, args...)
}

// MissingTranslationHandler decides the text used when a key cannot be
// resolved. err is ErrMissingTranslator when no translator is configured.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// ErrMissingTranslator is reported to MissingTranslationHandler when a
// translation was requested without a translator.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Translate resolves key through t, falling back to onMissing, then to
// fallback, then to the key itself.
func Translate(t Translator, locale, key, fallback string, onMissing MissingTranslationHandler, args ...any) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}
	params := append([]any{map[string]any{"default": fallback}}, args...)

	if t == nil {
		if onMissing != nil {
			return onMissing(locale, key, params, ErrMissingTranslator)
		}
		return missingTranslationDefault(locale, key, params, ErrMissingTranslator)
	}

	result, err := t.Translate(locale, key, params...)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	if onMissing != nil {
		return onMissing(locale, key, params, err)
	}
	return missingTranslationDefault(locale, key, params, err)
}

// LocalizeForm translates label keys on every element in place. Elements
// without a LabelKey keep their label untouched.
func LocalizeForm(form *element.Form, opts RenderOptions) {
	if form == nil {
		return
	}
	for _, el := range form.Elements {
		if el == nil {
			continue
		}
		key := strings.TrimSpace(el.Options.LabelKey)
		if key == "" {
			continue
		}
		el.Label = Translate(opts.Translator, opts.Locale, key, strings.TrimSpace(el.Label), opts.OnMissing)
	}
	if form.Title != "" && opts.Translator != nil {
		if translated, err := opts.Translator.Translate(opts.Locale, form.Title); err == nil && strings.TrimSpace(translated) != "" {
			form.Title = translated
		}
	}
}

func missingTranslationDefault(_ string, key string, args []any, _ error) string {
	if fallback := defaultFromArgs(args); strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}

func defaultFromArgs(args []any) string {
	for _, arg := range args {
		values, ok := arg.(map[string]any)
		if !ok {
			continue
		}
		if fallback, ok := values["default"].(string); ok {
			return fallback
		}
	}
	return ""
}
