package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-formbs/pkg/element"
)

// HiddenField is a hidden input emitted ahead of the visible elements.
type HiddenField struct {
	Name  string
	Value string
}

// Hidden returns a HiddenField for an arbitrary name/value pair.
func Hidden(name string, value any) HiddenField {
	return HiddenField{
		Name:  strings.TrimSpace(name),
		Value: fmt.Sprint(value),
	}
}

// CSRFToken constructs a hidden field carrying the provided token.
func CSRFToken(name, token string) HiddenField {
	return Hidden(name, token)
}

// VersionField constructs a hidden field used for optimistic locking.
func VersionField(name string, version any) HiddenField {
	return Hidden(name, version)
}

// MergeHiddenFields returns a copy of base with the provided fields applied.
// Empty names are ignored; later fields win on name collisions.
func MergeHiddenFields(base map[string]string, fields ...HiddenField) map[string]string {
	out := make(map[string]string, len(base)+len(fields))
	for key, value := range base {
		if trimmed := strings.TrimSpace(key); trimmed != "" {
			out[trimmed] = value
		}
	}
	for _, field := range fields {
		if field.Name == "" {
			continue
		}
		out[field.Name] = field.Value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// HiddenElements converts hidden fields into sorted hidden elements so form
// renderers emit them deterministically.
func HiddenElements(fields map[string]string) []*element.Element {
	if len(fields) == 0 {
		return nil
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		if strings.TrimSpace(name) == "" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*element.Element, 0, len(names))
	for _, name := range names {
		out = append(out, element.New(strings.TrimSpace(name), element.KindHidden, element.WithValue(fields[name])))
	}
	return out
}

// ApplyValues prefills element values. Checkable elements compare the value
// against their checked value (single checkbox) or their value options.
func ApplyValues(form *element.Form, values map[string]any) {
	if form == nil || len(values) == 0 {
		return
	}
	for _, el := range form.Elements {
		if el == nil {
			continue
		}
		raw, ok := values[el.Name]
		if !ok {
			continue
		}
		applyValue(el, raw)
	}
}

func applyValue(el *element.Element, raw any) {
	switch v := raw.(type) {
	case nil:
		el.Value = ""
	case []string:
		selectOptions(el, v)
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			items = append(items, fmt.Sprint(item))
		}
		selectOptions(el, items)
	case bool:
		if el.Kind == element.KindCheckbox {
			if v {
				el.Value = el.CheckedValue
			} else {
				el.Value = el.UncheckedValue
			}
			return
		}
		el.Value = fmt.Sprint(v)
	default:
		el.Value = fmt.Sprint(v)
		if len(el.Options.ValueOptions) > 0 {
			selectOptions(el, []string{el.Value})
		}
	}
}

func selectOptions(el *element.Element, selected []string) {
	set := make(map[string]struct{}, len(selected))
	for _, value := range selected {
		set[value] = struct{}{}
	}
	for i := range el.Options.ValueOptions {
		_, ok := set[el.Options.ValueOptions[i].Value]
		el.Options.ValueOptions[i].Selected = ok
	}
	if len(selected) == 1 {
		el.Value = selected[0]
	}
}
