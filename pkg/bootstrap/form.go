package bootstrap

import (
	"context"
	"fmt"
	"html"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-formbs/pkg/element"
	"github.com/goliatone/go-formbs/pkg/render"
)

// Renderer names registered by the root package.
const (
	RendererName       = "bootstrap4"
	InlineRendererName = "bootstrap4-inline"
)

// FormRenderer renders a complete element.Form with a FormElement.
type FormRenderer struct {
	name     string
	elements *FormElement
	logger   *zap.Logger
}

var _ render.Renderer = (*FormRenderer)(nil)

// NewFormRenderer registers elements under name.
func NewFormRenderer(name string, elements *FormElement, logger *zap.Logger) (*FormRenderer, error) {
	if elements == nil {
		return nil, fmt.Errorf("bootstrap: form renderer %q: element renderer is required", name)
	}
	if strings.TrimSpace(name) == "" {
		name = RendererName
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FormRenderer{name: name, elements: elements, logger: logger}, nil
}

// Name implements render.Renderer.
func (r *FormRenderer) Name() string {
	return r.name
}

// ContentType implements render.Renderer.
func (r *FormRenderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Elements returns the element renderer, for wrapper configuration.
func (r *FormRenderer) Elements() *FormElement {
	return r.elements
}

// Render implements render.Renderer. The form is cloned before values,
// errors and translations are applied.
func (r *FormRenderer) Render(ctx context.Context, form element.Form, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	working := form.Clone()
	render.LocalizeForm(&working, opts)
	render.ApplyValues(&working, opts.Values)
	formErrors := render.ApplyErrors(&working, opts.Errors)

	method := strings.ToUpper(strings.TrimSpace(opts.Method))
	if method == "" {
		method = strings.ToUpper(strings.TrimSpace(working.Method))
	}
	if method == "" {
		method = "POST"
	}
	hidden := opts.HiddenFields
	if method != "GET" && method != "POST" {
		hidden = render.MergeHiddenFields(hidden, render.Hidden("_method", method))
		method = "POST"
	}

	var b strings.Builder
	b.WriteString(`<form method="`)
	b.WriteString(strings.ToLower(method))
	b.WriteString(`"`)
	if action := strings.TrimSpace(working.Action); action != "" {
		b.WriteString(` action="`)
		b.WriteString(html.EscapeString(action))
		b.WriteString(`"`)
	}
	if name := strings.TrimSpace(working.Name); name != "" {
		b.WriteString(` name="`)
		b.WriteString(html.EscapeString(name))
		b.WriteString(`"`)
	}
	if r.elements.Inline() {
		b.WriteString(` class="form-inline"`)
	}
	b.WriteString(" novalidate>\n")

	if title := strings.TrimSpace(working.Title); title != "" {
		b.WriteString("<legend>")
		b.WriteString(html.EscapeString(title))
		b.WriteString("</legend>\n")
	}

	if len(formErrors) > 0 {
		b.WriteString(`<div class="alert alert-danger" role="alert"><ul>`)
		for _, message := range formErrors {
			b.WriteString("<li>")
			b.WriteString(html.EscapeString(message))
			b.WriteString("</li>")
		}
		b.WriteString("</ul></div>\n")
	}

	elements := append(render.HiddenElements(hidden), working.Elements...)
	for _, el := range elements {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if el == nil {
			continue
		}
		markup, err := r.elements.Render(el)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: render element %q: %w", el.Name, err)
		}
		b.WriteString(markup)
		b.WriteByte('\n')
	}
	b.WriteString("</form>\n")

	r.logger.Debug("rendered form",
		zap.String("renderer", r.name),
		zap.String("form", working.Name),
		zap.Int("elements", len(elements)),
		zap.Int("form_errors", len(formErrors)),
	)
	return []byte(b.String()), nil
}
