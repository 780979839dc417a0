package openapi

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/goliatone/go-formbs/pkg/element"
)

// Vendor extensions read while building forms.
const (
	ExtensionNamespace   = "x-formbs"
	ExtensionWidget      = "x-formbs-widget"
	ExtensionOrder       = "x-formbs-order"
	ExtensionLabelKey    = "x-formbs-label-key"
	ExtensionPlaceholder = "x-formbs-placeholder"
	ExtensionInline      = "x-formbs-inline"
	ExtensionSubmit      = "x-formbs-submit"
)

// DefaultSubmitLabel labels the submit button appended to every form.
const DefaultSubmitLabel = "Submit"

// maxInputLength is the longest string rendered as a single line input.
const maxInputLength = 255

// FormFromOperation builds a form from the operation's request body. Nested
// objects are flattened into bracket names (address[street]) and a submit
// element closes the form.
func FormFromOperation(op Operation) element.Form {
	form := element.Form{
		Name:   op.ID,
		Title:  op.Summary,
		Action: op.Path,
		Method: op.Method,
	}
	form.Elements = appendElements(nil, op.RequestBody, "")

	submit := DefaultSubmitLabel
	if label, ok := op.Extensions[ExtensionSubmit].(string); ok && strings.TrimSpace(label) != "" {
		submit = strings.TrimSpace(label)
	}
	form.Elements = append(form.Elements, element.New("submit", element.KindSubmit,
		element.WithLabel(submit),
		element.WithAttribute("class", "btn btn-primary"),
	))
	return form
}

func appendElements(out []*element.Element, parent Schema, prefix string) []*element.Element {
	for _, name := range parent.PropertyNames() {
		property := parent.Properties[name]
		path := fieldPath(prefix, name)
		if property.Type == "object" && len(property.Properties) > 0 {
			out = appendElements(out, property, path)
			continue
		}
		out = append(out, buildElement(path, name, property, parent.IsRequired(name)))
	}
	return out
}

func buildElement(path, name string, property Schema, required bool) *element.Element {
	kind := KindFor(property)
	el := element.New(path, kind,
		element.WithLabel(labelFor(name, property)),
		element.WithAttribute("id", elementID(path)),
	)
	el.Options.Description = strings.TrimSpace(property.Description)
	if key, ok := property.Extensions[ExtensionLabelKey].(string); ok {
		el.Options.LabelKey = strings.TrimSpace(key)
	}
	if inline, ok := property.Extensions[ExtensionInline].(bool); ok {
		el.Options.Inline = inline
	}

	if required && !kind.Bare() {
		el.SetAttribute("required", "")
	}
	if placeholder, ok := property.Extensions[ExtensionPlaceholder].(string); ok && acceptsText(kind) {
		el.SetAttribute("placeholder", placeholder)
	}
	if property.MaxLength != nil && acceptsText(kind) {
		el.SetAttribute("maxlength", fmt.Sprint(*property.MaxLength))
	}

	values, multiple := enumValues(property)
	for _, value := range values {
		text := fmt.Sprint(value)
		el.Options.ValueOptions = append(el.Options.ValueOptions, element.ValueOption{Label: text, Value: text})
	}
	if multiple && kind == element.KindSelect {
		el.SetAttribute("multiple", "")
	}

	applyDefault(el, property.Default)
	return el
}

// KindFor picks the element kind for a property schema. readOnly wins, then
// the x-formbs-widget extension, then type and format.
func KindFor(property Schema) element.Kind {
	if property.ReadOnly {
		return element.KindHidden
	}
	if widget, ok := property.Extensions[ExtensionWidget].(string); ok && strings.TrimSpace(widget) != "" {
		return element.ParseKind(widget)
	}

	_, multiple := enumValues(property)
	switch {
	case property.Type == "boolean":
		return element.KindCheckbox
	case len(property.Enum) > 0, multiple:
		return element.KindSelect
	case property.Format == "email":
		return element.KindEmail
	case property.Format == "password":
		return element.KindPassword
	case property.Type == "integer", property.Type == "number":
		return element.KindNumber
	case property.MaxLength != nil && *property.MaxLength > maxInputLength:
		return element.KindTextarea
	default:
		return element.KindText
	}
}

// enumValues returns the allowed values and whether several may be chosen.
func enumValues(property Schema) ([]any, bool) {
	if len(property.Enum) > 0 {
		return property.Enum, false
	}
	if property.Type == "array" && property.Items != nil && len(property.Items.Enum) > 0 {
		return property.Items.Enum, true
	}
	return nil, false
}

func applyDefault(el *element.Element, value any) {
	switch v := value.(type) {
	case nil:
	case bool:
		if el.Kind == element.KindCheckbox {
			if v {
				el.Value = el.CheckedValue
			}
			return
		}
		el.Value = fmt.Sprint(v)
	case []any:
		selected := make(map[string]struct{}, len(v))
		for _, item := range v {
			selected[fmt.Sprint(item)] = struct{}{}
		}
		for i := range el.Options.ValueOptions {
			_, el.Options.ValueOptions[i].Selected = selected[el.Options.ValueOptions[i].Value]
		}
	default:
		el.Value = fmt.Sprint(v)
	}
}

func acceptsText(kind element.Kind) bool {
	switch kind {
	case element.KindText, element.KindEmail, element.KindPassword, element.KindTextarea:
		return true
	default:
		return false
	}
}

func fieldPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "[" + name + "]"
}

// elementID turns address[street] into address-street.
func elementID(path string) string {
	return strings.NewReplacer("[", "-", "]", "").Replace(path)
}

func labelFor(name string, property Schema) string {
	if title := strings.TrimSpace(property.Title); title != "" {
		return title
	}
	return Humanize(name)
}

// Humanize turns first_name, first-name and firstName into "First name".
func Humanize(name string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range strings.TrimSpace(name) {
		switch {
		case r == '_' || r == '-' || r == '.':
			b.WriteByte(' ')
			prevLower = false
			continue
		case unicode.IsUpper(r) && prevLower:
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
	}
	words := strings.Fields(cases.Lower(language.Und).String(b.String()))
	if len(words) == 0 {
		return ""
	}
	words[0] = cases.Title(language.Und).String(words[0])
	return strings.Join(words, " ")
}
