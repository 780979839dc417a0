package viewhelper

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formbs/pkg/element"
)

var (
	descriptionPolicyOnce sync.Once
	descriptionPolicy     *bluemonday.Policy
)

// FormDescription renders the help text below a control. Descriptions may
// carry inline markup (links, emphasis); anything outside the UGC policy is
// stripped.
type FormDescription struct {
	// Class overrides the default "form-text text-muted".
	Class string
}

// NewFormDescription builds a description helper with Bootstrap defaults.
func NewFormDescription() *FormDescription {
	return &FormDescription{Class: "form-text text-muted"}
}

// Render returns `<small ...>description</small>` or "".
func (h *FormDescription) Render(el *element.Element) (string, error) {
	if el == nil {
		return "", nil
	}
	desc := SanitizeMarkup(el.Options.Description)
	if desc == "" {
		return "", nil
	}

	class := h.Class
	if class == "" {
		class = "form-text text-muted"
	}
	var b strings.Builder
	b.WriteString("<small")
	if id := el.ID(); id != "" {
		b.WriteString(` id="`)
		b.WriteString(html.EscapeString(id + "-help"))
		b.WriteString(`"`)
	}
	b.WriteString(` class="`)
	b.WriteString(html.EscapeString(class))
	b.WriteString(`">`)
	b.WriteString(desc)
	b.WriteString("</small>")
	return b.String(), nil
}

// SanitizeMarkup strips markup not allowed in user generated content.
func SanitizeMarkup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	descriptionPolicyOnce.Do(func() {
		descriptionPolicy = bluemonday.UGCPolicy()
	})
	return strings.TrimSpace(descriptionPolicy.Sanitize(trimmed))
}
