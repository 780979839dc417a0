package element

import (
	"maps"
	"slices"
	"strings"
)

// ValueOption is one choice of a select, radio or multi-checkbox element.
type ValueOption struct {
	Label    string `json:"label" yaml:"label"`
	Value    string `json:"value" yaml:"value"`
	Selected bool   `json:"selected,omitempty" yaml:"selected,omitempty"`
	Disabled bool   `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// Options are the rendering switches an element carries alongside its
// attributes.
type Options struct {
	// Inline collapses the control wrapper into bare control+description+error.
	Inline bool `json:"inline,omitempty" yaml:"inline,omitempty"`
	// Label is used when Element.Label is empty.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	// LabelKey is a translation key resolved by render.LocalizeForm.
	LabelKey            string `json:"labelKey,omitempty" yaml:"labelKey,omitempty"`
	SkipLabel           bool   `json:"skipLabel,omitempty" yaml:"skipLabel,omitempty"`
	SkipLabelEscape     bool   `json:"skipLabelEscape,omitempty" yaml:"skipLabelEscape,omitempty"`
	WrapCheckboxInLabel bool   `json:"wrapCheckboxInLabel,omitempty" yaml:"wrapCheckboxInLabel,omitempty"`
	Description         string `json:"description,omitempty" yaml:"description,omitempty"`

	ValueOptions []ValueOption  `json:"valueOptions,omitempty" yaml:"valueOptions,omitempty"`
	Extra        map[string]any `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// Element describes one form field: its attributes, options, current value
// and validation messages.
type Element struct {
	Name       string            `json:"name" yaml:"name"`
	Label      string            `json:"label,omitempty" yaml:"label,omitempty"`
	Kind       Kind              `json:"kind" yaml:"kind"`
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Options    Options           `json:"options" yaml:"options"`
	Messages   []string          `json:"messages,omitempty" yaml:"messages,omitempty"`
	Value      string            `json:"value,omitempty" yaml:"value,omitempty"`

	// CheckedValue applies to single checkboxes. UncheckedValue is carried by
	// the companion hidden input of a checkbox or, when UseHiddenElement is
	// set, a multi-checkbox.
	CheckedValue     string `json:"checkedValue,omitempty" yaml:"checkedValue,omitempty"`
	UncheckedValue   string `json:"uncheckedValue,omitempty" yaml:"uncheckedValue,omitempty"`
	UseHiddenElement bool   `json:"useHiddenElement,omitempty" yaml:"useHiddenElement,omitempty"`
}

// Option configures an Element built with New.
type Option func(*Element)

// WithLabel sets the element label.
func WithLabel(label string) Option {
	return func(el *Element) {
		el.Label = label
	}
}

// WithAttribute sets a single HTML attribute.
func WithAttribute(key, value string) Option {
	return func(el *Element) {
		el.SetAttribute(key, value)
	}
}

// WithOptions replaces the element options.
func WithOptions(opts Options) Option {
	return func(el *Element) {
		el.Options = opts
	}
}

// WithMessages attaches validation messages.
func WithMessages(messages ...string) Option {
	return func(el *Element) {
		el.Messages = append(el.Messages, messages...)
	}
}

// WithValue sets the current value.
func WithValue(value string) Option {
	return func(el *Element) {
		el.Value = value
	}
}

// WithHiddenElement toggles the checkbox companion hidden input.
func WithHiddenElement(enabled bool) Option {
	return func(el *Element) {
		el.UseHiddenElement = enabled
	}
}

// New builds an element. The name attribute mirrors the element name, and
// single checkboxes default to "1"/"0" with the companion input enabled.
func New(name string, kind Kind, options ...Option) *Element {
	el := &Element{
		Name: strings.TrimSpace(name),
		Kind: kind,
	}
	if el.Name != "" {
		el.SetAttribute("name", el.Name)
	}
	if kind == KindCheckbox {
		el.CheckedValue = "1"
		el.UncheckedValue = "0"
		el.UseHiddenElement = true
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(el)
	}
	return el
}

// Attribute returns the attribute value or "".
func (e *Element) Attribute(key string) string {
	if e == nil || e.Attributes == nil {
		return ""
	}
	return e.Attributes[key]
}

// HasAttribute reports whether the attribute is set, even to "".
func (e *Element) HasAttribute(key string) bool {
	if e == nil || e.Attributes == nil {
		return false
	}
	_, ok := e.Attributes[key]
	return ok
}

// SetAttribute sets an attribute, allocating the map on first use.
func (e *Element) SetAttribute(key, value string) {
	key = strings.TrimSpace(key)
	if key == "" {
		return
	}
	if e.Attributes == nil {
		e.Attributes = make(map[string]string)
	}
	e.Attributes[key] = value
}

// ID resolves the DOM id: the id attribute, else the name attribute, else the
// element name.
func (e *Element) ID() string {
	if e == nil {
		return ""
	}
	if id := e.Attribute("id"); id != "" {
		return id
	}
	if name := e.Attribute("name"); name != "" {
		return name
	}
	return e.Name
}

// HasMessages reports whether validation messages are attached.
func (e *Element) HasMessages() bool {
	return e != nil && len(e.Messages) > 0
}

// Clone returns a deep copy so renderers can adjust attributes without
// touching the caller's element.
func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}
	out := *e
	out.Attributes = maps.Clone(e.Attributes)
	out.Messages = slices.Clone(e.Messages)
	out.Options.ValueOptions = slices.Clone(e.Options.ValueOptions)
	out.Options.Extra = maps.Clone(e.Options.Extra)
	return &out
}

// Form groups elements under a single <form>.
type Form struct {
	Name     string     `json:"name,omitempty" yaml:"name,omitempty"`
	Title    string     `json:"title,omitempty" yaml:"title,omitempty"`
	Action   string     `json:"action,omitempty" yaml:"action,omitempty"`
	Method   string     `json:"method,omitempty" yaml:"method,omitempty"`
	Elements []*Element `json:"elements" yaml:"elements"`
}

// Lookup returns the element with the given name.
func (f Form) Lookup(name string) (*Element, bool) {
	name = strings.TrimSpace(name)
	for _, el := range f.Elements {
		if el != nil && el.Name == name {
			return el, true
		}
	}
	return nil, false
}

// Clone deep-copies the form and its elements.
func (f Form) Clone() Form {
	out := f
	out.Elements = make([]*Element, 0, len(f.Elements))
	for _, el := range f.Elements {
		out.Elements = append(out.Elements, el.Clone())
	}
	return out
}

// Attr is a single attribute in an ordered attribute list.
type Attr struct {
	Key   string
	Value string
}
