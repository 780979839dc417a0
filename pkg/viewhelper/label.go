package viewhelper

import (
	"github.com/goliatone/go-formbs/pkg/element"
	"github.com/goliatone/go-formbs/pkg/render"
)

// LabelOption configures a FormLabel.
type LabelOption func(*FormLabel)

// WithTranslator translates label text before it is escaped.
func WithTranslator(t render.Translator) LabelOption {
	return func(l *FormLabel) {
		l.translator = t
	}
}

// WithTextDomain passes a translation domain along with every lookup.
func WithTextDomain(domain string) LabelOption {
	return func(l *FormLabel) {
		l.textDomain = domain
	}
}

// WithLocale sets the locale used for label translation.
func WithLocale(locale string) LabelOption {
	return func(l *FormLabel) {
		l.locale = locale
	}
}

// FormLabel renders <label> open and close tags.
type FormLabel struct {
	translator render.Translator
	textDomain string
	locale     string
}

// NewFormLabel builds a label helper.
func NewFormLabel(options ...LabelOption) *FormLabel {
	label := &FormLabel{}
	for _, opt := range options {
		if opt != nil {
			opt(label)
		}
	}
	return label
}

// OpenTag renders `<label ...>` keeping the attribute order given. Empty
// values are dropped so a blank class does not emit class="".
func (l *FormLabel) OpenTag(attrs ...element.Attr) string {
	return "<label" + AttributeString(attrs) + ">"
}

// CloseTag renders `</label>`.
func (l *FormLabel) CloseTag() string {
	return "</label>"
}

// Translator returns the configured translator, nil when labels are not
// translated.
func (l *FormLabel) Translator() render.Translator {
	return l.translator
}

// TextDomain returns the translation domain.
func (l *FormLabel) TextDomain() string {
	return l.textDomain
}

// Locale returns the translation locale.
func (l *FormLabel) Locale() string {
	return l.locale
}
