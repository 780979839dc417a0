package bootstrap

import (
	"fmt"

	"github.com/goliatone/go-formbs/pkg/element"
)

// ElementFuncName is the template helper registered by TemplateFuncs.
const ElementFuncName = "bs4_element"

// TemplateFuncs exposes the renderer to template engines:
//
//	{{ bs4_element(field)|safe }}
//	{{ bs4_element(field, groupFormat, controlFormat)|safe }}
//
// Called without an element (or with nil) the helper returns the
// *FormElement itself so templates can reach its configuration.
func (r *FormElement) TemplateFuncs() map[string]any {
	return map[string]any{
		ElementFuncName: r.invoke,
	}
}

func (r *FormElement) invoke(args ...any) (any, error) {
	if len(args) == 0 || args[0] == nil {
		return r, nil
	}

	var el *element.Element
	switch v := args[0].(type) {
	case *element.Element:
		if v == nil {
			return r, nil
		}
		el = v
	case element.Element:
		el = &v
	default:
		return nil, fmt.Errorf("bootstrap: %s expects an element, got %T", ElementFuncName, args[0])
	}

	var options []RenderOption
	if len(args) > 1 {
		if group, ok := args[1].(string); ok && group != "" {
			options = append(options, WithGroup(group))
		}
	}
	if len(args) > 2 {
		if control, ok := args[2].(string); ok && control != "" {
			options = append(options, WithControl(control))
		}
	}
	return r.Render(el, options...)
}
