package viewhelper

import (
	"errors"
	"fmt"
	"html"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-formbs/pkg/element"
	"github.com/goliatone/go-formbs/pkg/render"
	rendertemplate "github.com/goliatone/go-formbs/pkg/render/template"
	"github.com/goliatone/go-formbs/pkg/render/template/gotemplate"
)

const (
	templateInput    = "input"
	templateTextarea = "textarea"
	templateSelect   = "select"
	templateOptions  = "options"
	templateButton   = "button"
)

// ControlOption configures a FormControl.
type ControlOption func(*controlConfig)

type controlConfig struct {
	templateFS fs.FS
	templates  rendertemplate.TemplateRenderer
	translator render.Translator
	locale     string
}

// WithTemplatesFS supplies an alternate control template bundle.
func WithTemplatesFS(files fs.FS) ControlOption {
	return func(cfg *controlConfig) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads control templates from a directory on disk.
func WithTemplatesDir(path string) ControlOption {
	return func(cfg *controlConfig) {
		if strings.TrimSpace(path) == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template engine.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) ControlOption {
	return func(cfg *controlConfig) {
		if renderer != nil {
			cfg.templates = renderer
		}
	}
}

// WithControlTranslator translates value option labels (select, radio,
// multi-checkbox) through the template "translate" helper.
func WithControlTranslator(t render.Translator, locale string) ControlOption {
	return func(cfg *controlConfig) {
		cfg.translator = t
		cfg.locale = locale
	}
}

// FormControl renders the bare control markup for an element: inputs,
// selects, textareas, buttons and option lists. Labels, errors and wrappers
// are left to the caller.
type FormControl struct {
	templates rendertemplate.TemplateRenderer
	locale    string
}

// NewFormControl builds a template-backed control helper. Without a custom
// engine it loads the embedded templates through the pongo2 adapter.
func NewFormControl(options ...ControlOption) (*FormControl, error) {
	cfg := controlConfig{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	engine := cfg.templates
	if engine == nil {
		built, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tpl"),
			gotemplate.WithTemplateFunc(render.TemplateI18nFuncs(cfg.translator, render.TemplateI18nConfig{})),
		)
		if err != nil {
			return nil, fmt.Errorf("viewhelper: configure control templates: %w", err)
		}
		engine = built
	}

	return &FormControl{templates: engine, locale: cfg.locale}, nil
}

// Render returns the control markup. The companion hidden input of a
// checkbox is not included, see RenderCompanion.
func (c *FormControl) Render(el *element.Element) (string, error) {
	if el == nil {
		return "", errors.New("viewhelper: element is required")
	}
	if c == nil || c.templates == nil {
		return "", errors.New("viewhelper: control templates not configured")
	}

	name, data := c.templateData(el)
	out, err := c.templates.RenderTemplate(name, data)
	if err != nil {
		return "", fmt.Errorf("viewhelper: render %s control %q: %w", el.Kind, el.Name, err)
	}
	return out, nil
}

// RenderCompanion returns the hidden input that carries the unchecked value
// of a checkbox or multi-checkbox, or "" when the element does not use one.
// The multi-checkbox companion posts under the bare name so an empty
// selection still submits the field.
func (c *FormControl) RenderCompanion(el *element.Element) (string, error) {
	if el == nil {
		return "", errors.New("viewhelper: element is required")
	}
	if !el.UseHiddenElement {
		return "", nil
	}

	var attrs string
	switch el.Kind {
	case element.KindCheckbox:
		attrs = AttributeString([]element.Attr{
			{Key: "type", Value: "hidden"},
			{Key: "name", Value: el.Attribute("name")},
			{Key: "value", Value: el.UncheckedValue},
		})
	case element.KindMultiCheckbox:
		attrs = AttributeString([]element.Attr{
			{Key: "type", Value: "hidden"},
			{Key: "name", Value: strings.TrimSuffix(el.Attribute("name"), "[]")},
		}) + ` value="` + html.EscapeString(el.UncheckedValue) + `"`
	default:
		return "", nil
	}

	out, err := c.templates.RenderTemplate(templateInput, map[string]any{"attrs": attrs})
	if err != nil {
		return "", fmt.Errorf("viewhelper: render companion for %q: %w", el.Name, err)
	}
	return out, nil
}

func (c *FormControl) templateData(el *element.Element) (string, map[string]any) {
	data := map[string]any{"locale": c.locale}

	switch el.Kind {
	case element.KindTextarea:
		data["attrs"] = AttributeString(orderedAttributes(el))
		data["value"] = controlValue(el)
		return templateTextarea, data
	case element.KindSelect:
		multiple := el.HasAttribute("multiple")
		overrides := []element.Attr{{Key: "name", Value: optionName(el, multiple)}}
		data["attrs"] = AttributeString(orderedAttributes(el, overrides...))
		data["options"] = selectOptions(el)
		return templateSelect, data
	case element.KindRadio, element.KindMultiCheckbox:
		data["options"] = checkableOptions(el)
		return templateOptions, data
	case element.KindButton:
		overrides := []element.Attr{{Key: "type", Value: "button"}, {Key: "value", Value: el.Value}}
		data["attrs"] = AttributeString(orderedAttributes(el, overrides...))
		data["content"] = buttonContent(el)
		return templateButton, data
	case element.KindCheckbox:
		overrides := []element.Attr{
			{Key: "type", Value: "checkbox"},
			{Key: "value", Value: el.CheckedValue},
		}
		if el.Value != "" && el.Value == el.CheckedValue {
			overrides = append(overrides, element.Attr{Key: "checked", Value: ""})
		}
		data["attrs"] = AttributeString(orderedAttributes(el, overrides...))
		return templateInput, data
	default:
		value := controlValue(el)
		if el.Kind == element.KindSubmit && value == "" {
			value = buttonContent(el)
		}
		if el.Kind == element.KindPassword {
			value = ""
		}
		overrides := []element.Attr{
			{Key: "type", Value: el.Kind.InputType()},
			{Key: "value", Value: value},
		}
		data["attrs"] = AttributeString(orderedAttributes(el, overrides...))
		return templateInput, data
	}
}

func selectOptions(el *element.Element) []map[string]any {
	out := make([]map[string]any, 0, len(el.Options.ValueOptions))
	for _, opt := range el.Options.ValueOptions {
		attrs := []element.Attr{{Key: "value", Value: opt.Value}}
		if opt.Selected || (el.Value != "" && opt.Value == el.Value) {
			attrs = append(attrs, element.Attr{Key: "selected", Value: ""})
		}
		if opt.Disabled {
			attrs = append(attrs, element.Attr{Key: "disabled", Value: ""})
		}
		out = append(out, map[string]any{
			"attrs": attrsWithEmptyValue(attrs),
			"label": opt.Label,
		})
	}
	return out
}

func checkableOptions(el *element.Element) []map[string]any {
	multi := el.Kind == element.KindMultiCheckbox
	name := optionName(el, multi)
	out := make([]map[string]any, 0, len(el.Options.ValueOptions))
	for idx, opt := range el.Options.ValueOptions {
		overrides := []element.Attr{
			{Key: "type", Value: el.Kind.InputType()},
			{Key: "name", Value: name},
			{Key: "value", Value: opt.Value},
		}
		if id := el.Attribute("id"); id != "" {
			overrides = append(overrides, element.Attr{Key: "id", Value: fmt.Sprintf("%s-%d", id, idx)})
		}
		if opt.Selected || (el.Value != "" && opt.Value == el.Value) {
			overrides = append(overrides, element.Attr{Key: "checked", Value: ""})
		}
		if opt.Disabled {
			overrides = append(overrides, element.Attr{Key: "disabled", Value: ""})
		}
		out = append(out, map[string]any{
			"attrs": AttributeString(orderedAttributes(el, overrides...)),
			"label": opt.Label,
		})
	}
	return out
}

// attrsWithEmptyValue keeps value="" on options, which browsers treat
// differently from a missing value attribute.
func attrsWithEmptyValue(attrs []element.Attr) string {
	if len(attrs) > 0 && attrs[0].Key == "value" && attrs[0].Value == "" {
		return ` value=""` + AttributeString(attrs[1:])
	}
	return AttributeString(attrs)
}

func optionName(el *element.Element, multiple bool) string {
	name := el.Attribute("name")
	if multiple && name != "" && !strings.HasSuffix(name, "[]") {
		return name + "[]"
	}
	return name
}

func controlValue(el *element.Element) string {
	if el.Value != "" {
		return el.Value
	}
	return el.Attribute("value")
}

func buttonContent(el *element.Element) string {
	switch {
	case el.Label != "":
		return el.Label
	case el.Options.Label != "":
		return el.Options.Label
	case el.Value != "":
		return el.Value
	default:
		return el.Name
	}
}
