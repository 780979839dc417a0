package render

import (
	"fmt"
	"strings"
)

// TemplateI18nConfig configures template-level translation helpers.
type TemplateI18nConfig struct {
	// FuncName customizes the translator helper name (defaults to "translate").
	FuncName string
	// OnMissing controls the string returned when a translation is missing.
	OnMissing MissingTranslationHandler
}

// TemplateI18nFuncs returns helpers suitable for template engines:
//
//	translate(localeSrc, key) string
//	current_locale(localeSrc) string
//
// localeSrc can be a locale string or a map carrying a "locale" entry. A
// missing translation renders the key itself.
func TemplateI18nFuncs(t Translator, cfg TemplateI18nConfig) map[string]any {
	translateName := strings.TrimSpace(cfg.FuncName)
	if translateName == "" {
		translateName = "translate"
	}

	return map[string]any{
		translateName: func(localeSrc any, key string) string {
			if strings.TrimSpace(key) == "" {
				return ""
			}
			return Translate(t, resolveLocale(localeSrc), key, key, cfg.OnMissing)
		},
		"current_locale": func(localeSrc any) string {
			return resolveLocale(localeSrc)
		},
	}
}

func resolveLocale(src any) string {
	switch data := src.(type) {
	case nil:
		return ""
	case string:
		return data
	case map[string]any:
		if v, ok := data["locale"]; ok && v != nil {
			return strings.TrimSpace(fmt.Sprint(v))
		}
	case map[string]string:
		return data["locale"]
	}
	return ""
}
