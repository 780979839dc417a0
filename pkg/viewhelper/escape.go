package viewhelper

import "html"

// EscapeHTML escapes text for HTML element content and attribute values.
type EscapeHTML func(string) string

// Escape implements the escaper contract of the bootstrap renderer.
func (fn EscapeHTML) Escape(value string) string {
	if fn == nil {
		return html.EscapeString(value)
	}
	return fn(value)
}

// DefaultEscaper escapes with html.EscapeString.
var DefaultEscaper = EscapeHTML(html.EscapeString)
