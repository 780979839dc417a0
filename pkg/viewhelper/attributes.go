package viewhelper

import (
	"html"
	"sort"
	"strings"

	"github.com/goliatone/go-formbs/pkg/element"
)

// leadingAttributes render first, in this order; the remaining attributes
// follow sorted by key so output stays deterministic.
var leadingAttributes = []string{"type", "name", "id", "class"}

// skippedAttributes never reach the markup: "label" feeds the label helper
// and "value" is driven by the element value.
var skippedAttributes = map[string]struct{}{
	"label": {},
	"value": {},
}

var booleanAttributes = map[string]struct{}{
	"autofocus": {},
	"checked":   {},
	"disabled":  {},
	"multiple":  {},
	"readonly":  {},
	"required":  {},
	"selected":  {},
}

// AttributeString renders attrs as ` key="value"` pairs with a leading space.
// Boolean attributes with an empty value render as a bare key; other empty
// values are omitted.
func AttributeString(attrs []element.Attr) string {
	var b strings.Builder
	for _, attr := range attrs {
		key := strings.TrimSpace(attr.Key)
		if key == "" {
			continue
		}
		if _, boolean := booleanAttributes[key]; boolean && attr.Value == "" {
			b.WriteByte(' ')
			b.WriteString(html.EscapeString(key))
			continue
		}
		if attr.Value == "" {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(html.EscapeString(key))
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(attr.Value))
		b.WriteByte('"')
	}
	return b.String()
}

// orderedAttributes flattens element attributes into render order with
// overrides applied on top (an empty override value removes the key).
func orderedAttributes(el *element.Element, overrides ...element.Attr) []element.Attr {
	values := make(map[string]string, len(el.Attributes)+len(overrides))
	for key, value := range el.Attributes {
		if _, skip := skippedAttributes[key]; skip {
			continue
		}
		values[key] = value
	}
	for _, attr := range overrides {
		values[attr.Key] = attr.Value
	}

	out := make([]element.Attr, 0, len(values))
	for _, key := range leadingAttributes {
		if value, ok := values[key]; ok {
			out = append(out, element.Attr{Key: key, Value: value})
			delete(values, key)
		}
	}
	rest := make([]string, 0, len(values))
	for key := range values {
		rest = append(rest, key)
	}
	sort.Strings(rest)
	for _, key := range rest {
		out = append(out, element.Attr{Key: key, Value: values[key]})
	}
	return out
}
