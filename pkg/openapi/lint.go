package openapi

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-formbs/pkg/element"
)

// Violation describes an x-formbs extension that the form builder would
// ignore or misread.
type Violation struct {
	Location string
	Message  string
}

func (v Violation) String() string {
	return v.Location + " -> " + v.Message
}

var (
	operationExtensions = []string{ExtensionSubmit}
	schemaExtensions    = []string{
		ExtensionInline,
		ExtensionLabelKey,
		ExtensionOrder,
		ExtensionPlaceholder,
		ExtensionWidget,
	}
)

// LintOperations checks the vendor extensions of every operation. Results are
// sorted by location then message.
func LintOperations(operations []Operation) []Violation {
	var result []Violation
	for _, op := range operations {
		result = append(result, LintOperation(op)...)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Location == result[j].Location {
			return result[i].Message < result[j].Message
		}
		return result[i].Location < result[j].Location
	})
	return result
}

// LintOperation checks the operation extensions and the request body schema.
func LintOperation(op Operation) []Violation {
	base := []string{"operation", op.ID}
	result := lintExtensions(base, op.Extensions, operationExtensions)
	result = append(result, lintSchema(appendPath(base, "requestBody"), op.RequestBody)...)
	return result
}

func lintSchema(path []string, schema Schema) []Violation {
	result := lintExtensions(path, schema.Extensions, schemaExtensions)

	if order, ok := schema.Extensions[ExtensionOrder]; ok {
		for _, name := range stringList(order) {
			if _, exists := schema.Properties[name]; !exists {
				result = append(result, Violation{
					Location: formatLocation(path),
					Message:  fmt.Sprintf("%s names unknown property %q", ExtensionOrder, name),
				})
			}
		}
	}

	keys := make([]string, 0, len(schema.Properties))
	for key := range schema.Properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		result = append(result, lintSchema(appendPath(path, "properties."+key), schema.Properties[key])...)
	}

	if schema.Items != nil {
		result = append(result, lintSchema(appendPath(path, "items"), *schema.Items)...)
	}
	return result
}

func lintExtensions(path []string, extensions map[string]any, allowed []string) []Violation {
	if len(extensions) == 0 {
		return nil
	}

	keys := make([]string, 0, len(extensions))
	for key := range extensions {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var result []Violation
	for _, key := range keys {
		location := formatLocation(path)
		switch {
		case key == ExtensionNamespace:
			result = append(result, Violation{
				Location: location,
				Message:  fmt.Sprintf("%s object form is not read; use %s-<key> entries", ExtensionNamespace, ExtensionNamespace),
			})
		case !contains(allowed, key):
			result = append(result, Violation{
				Location: location,
				Message:  fmt.Sprintf("unsupported extension %q here (supported: %s)", key, strings.Join(allowed, ", ")),
			})
		default:
			if message := validateHint(key, extensions[key]); message != "" {
				result = append(result, Violation{Location: location, Message: message})
			}
		}
	}
	return result
}

func validateHint(key string, value any) string {
	switch key {
	case ExtensionInline:
		if _, ok := value.(bool); !ok {
			return fmt.Sprintf("value for %q must be a boolean (got %T)", key, value)
		}
	case ExtensionOrder:
		list, ok := value.([]any)
		if !ok {
			if _, isStrings := value.([]string); isStrings {
				return ""
			}
			return fmt.Sprintf("value for %q must be a list of property names (got %T)", key, value)
		}
		for _, item := range list {
			if _, ok := item.(string); !ok {
				return fmt.Sprintf("value for %q must only hold strings (got %T)", key, item)
			}
		}
	case ExtensionWidget:
		name, ok := value.(string)
		if !ok {
			return fmt.Sprintf("value for %q must be a string (got %T)", key, value)
		}
		if _, known := element.LookupKind(name); !known {
			return fmt.Sprintf("unknown widget %q", name)
		}
	default:
		text, ok := value.(string)
		if !ok {
			return fmt.Sprintf("value for %q must be a string (got %T)", key, value)
		}
		if strings.TrimSpace(text) == "" {
			return fmt.Sprintf("value for %q is empty", key)
		}
	}
	return ""
}

func contains(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}

func appendPath(path []string, segment string) []string {
	next := append([]string(nil), path...)
	return append(next, segment)
}

func formatLocation(path []string) string {
	return strings.Join(path, " > ")
}
