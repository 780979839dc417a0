package bootstrap

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"
)

// Theme manifest keys read by WithTheme. Variant templates and tokens take
// precedence over the manifest defaults.
const (
	ThemeGroupWrapperKey   = "bootstrap.group"
	ThemeControlWrapperKey = "bootstrap.control"
	ThemeLabelClassKey     = "bootstrap.labelClass"
	ThemeInlineKey         = "bootstrap.inline"
)

// ThemeOption selects a theme through selector and converts it into a
// FormElement option.
func ThemeOption(selector theme.ThemeSelector, name, variant string) (Option, error) {
	if selector == nil {
		return nil, fmt.Errorf("bootstrap: theme selector is required")
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: select theme %q: %w", name, err)
	}
	return WithTheme(selection), nil
}

func applyTheme(r *FormElement, selection *theme.Selection) {
	if selection == nil || selection.Manifest == nil {
		return
	}

	if group := strings.TrimSpace(selection.Template(ThemeGroupWrapperKey, "")); group != "" {
		r.groupWrapper = group
	}
	if control := strings.TrimSpace(selection.Template(ThemeControlWrapperKey, "")); control != "" {
		r.controlWrapper = control
	}

	tokens := selection.Tokens()
	if class, ok := tokens[ThemeLabelClassKey]; ok {
		r.labelClass = strings.TrimSpace(class)
	}
	if inline, ok := tokens[ThemeInlineKey]; ok {
		r.inline = strings.EqualFold(strings.TrimSpace(inline), "true")
	}
	r.theme = selection
}

func (r *FormElement) logTheme() {
	if r.theme == nil {
		return
	}
	r.logger.Debug("applied bootstrap theme",
		zap.String("theme", r.theme.Theme),
		zap.String("variant", r.theme.Variant),
	)
}
