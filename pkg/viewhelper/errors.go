package viewhelper

import (
	"html"
	"strings"

	"github.com/goliatone/go-formbs/pkg/element"
	"github.com/goliatone/go-formbs/pkg/render"
)

// FormElementErrors renders an element's validation messages as a list.
type FormElementErrors struct {
	// Attributes are added to the opening <ul>.
	Attributes []element.Attr
	Translator render.Translator
	Locale     string
}

// NewFormElementErrors builds an error helper with no list attributes.
func NewFormElementErrors() *FormElementErrors {
	return &FormElementErrors{}
}

// Render returns `<ul><li>…</li></ul>`, or "" when there are no messages.
func (h *FormElementErrors) Render(el *element.Element) (string, error) {
	if el == nil || len(el.Messages) == 0 {
		return "", nil
	}

	items := make([]string, 0, len(el.Messages))
	for _, message := range el.Messages {
		message = strings.TrimSpace(message)
		if message == "" {
			continue
		}
		if h.Translator != nil {
			message = render.Translate(h.Translator, h.Locale, message, message, nil)
		}
		items = append(items, html.EscapeString(message))
	}
	if len(items) == 0 {
		return "", nil
	}

	var b strings.Builder
	b.WriteString("<ul")
	b.WriteString(AttributeString(h.Attributes))
	b.WriteString("><li>")
	b.WriteString(strings.Join(items, "</li><li>"))
	b.WriteString("</li></ul>")
	return b.String(), nil
}
