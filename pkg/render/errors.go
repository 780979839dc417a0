package render

import (
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-formbs/pkg/element"
)

// ErrorMapping splits a server error payload into element-level messages,
// keyed by element name, and form-level messages.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// MergeFormErrors concatenates form-level messages, trimming whitespace and
// dropping duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

// MapErrors normalises error payload keys (JSON pointers, dotted paths,
// bracket notation, request wrappers such as "body" or "data") onto element
// names. Unknown paths are treated as form-level errors so messages are not
// lost. Payload keys are visited in sorted order so merged messages are
// stable.
func MapErrors(form element.Form, payload map[string][]string) ErrorMapping {
	mapping := ErrorMapping{
		Fields: make(map[string][]string),
	}
	if len(payload) == 0 {
		mapping.Fields = nil
		return mapping
	}

	paths := elementPaths(form)

	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, rawPath := range keys {
		normalized := normalizeMessages(payload[rawPath])
		if len(normalized) == 0 {
			continue
		}

		name, formLevel := mapErrorPath(rawPath, paths)
		if formLevel {
			mapping.Form = append(mapping.Form, normalized...)
			continue
		}
		mapping.Fields[name] = append(mapping.Fields[name], normalized...)
	}

	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

// ApplyErrors attaches mapped messages to the matching elements and returns
// the form-level messages.
func ApplyErrors(form *element.Form, payload map[string][]string) []string {
	if form == nil {
		return nil
	}
	mapping := MapErrors(*form, payload)
	for name, messages := range mapping.Fields {
		el, ok := form.Lookup(name)
		if !ok {
			continue
		}
		el.Messages = normalizeMessages(append(el.Messages, messages...))
	}
	return mapping.Form
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// elementPaths indexes elements by their dotted path ("author[email]" and
// "author.email" both become "author.email").
func elementPaths(form element.Form) map[string]string {
	paths := make(map[string]string, len(form.Elements))
	for _, el := range form.Elements {
		if el == nil || strings.TrimSpace(el.Name) == "" {
			continue
		}
		segments := parsePathSegments(el.Name)
		if len(segments) == 0 {
			continue
		}
		paths[strings.Join(segments, ".")] = el.Name
	}
	return paths
}

func mapErrorPath(raw string, paths map[string]string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if isFormLevelKey(trimmed) {
		return "", true
	}

	segments := parsePathSegments(trimmed)
	if len(segments) == 0 {
		return "", true
	}

	bestPath := ""
	for _, variant := range segmentVariants(segments) {
		path := longestMatchingPath(variant, paths)
		if path == "" {
			continue
		}
		if strings.Count(path, ".") > strings.Count(bestPath, ".") || bestPath == "" {
			bestPath = path
		}
	}
	if bestPath == "" {
		return "", true
	}
	return paths[bestPath], false
}

func parsePathSegments(path string) []string {
	clean := strings.TrimSpace(path)
	if clean == "" {
		return nil
	}
	clean = strings.TrimLeft(clean, "#$/.")

	replacer := strings.NewReplacer("[", ".", "]", "", "//", "/")
	clean = strings.Trim(replacer.Replace(clean), "./")
	if clean == "" {
		return nil
	}

	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.TrimSpace(part)
		if segment == "" {
			continue
		}
		segment = strings.ReplaceAll(segment, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		out = append(out, segment)
	}
	return out
}

func segmentVariants(segments []string) [][]string {
	var variants [][]string
	seen := make(map[string]struct{}, 4)

	add := func(candidate []string) {
		if len(candidate) == 0 {
			return
		}
		key := strings.Join(candidate, ".")
		if _, exists := seen[key]; exists {
			return
		}
		seen[key] = struct{}{}
		variants = append(variants, append([]string(nil), candidate...))
	}

	unwrapped := dropWrapperSegments(segments)
	add(segments)
	add(unwrapped)
	add(stripNumericSegments(segments))
	add(stripNumericSegments(unwrapped))
	return variants
}

func dropWrapperSegments(segments []string) []string {
	out := segments
	for len(out) > 0 {
		switch strings.ToLower(out[0]) {
		case "body", "request", "payload", "data", "attributes":
			out = out[1:]
			continue
		}
		break
	}
	return out
}

func stripNumericSegments(segments []string) []string {
	out := make([]string, 0, len(segments))
	for _, segment := range segments {
		if _, err := strconv.Atoi(segment); err == nil {
			continue
		}
		out = append(out, segment)
	}
	return out
}

func longestMatchingPath(segments []string, paths map[string]string) string {
	for end := len(segments); end > 0; end-- {
		candidate := strings.Join(segments[:end], ".")
		if _, ok := paths[candidate]; ok {
			return candidate
		}
	}
	return ""
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "/", "#", "$", "form", "base", "__all__", "non_field_errors", "non-field-errors":
		return true
	default:
		return false
	}
}
