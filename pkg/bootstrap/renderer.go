package bootstrap

import (
	"fmt"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-formbs/pkg/element"
	"github.com/goliatone/go-formbs/pkg/render"
)

// Option configures a FormElement at construction.
type Option func(*FormElement)

// WithGroupWrapper sets the default group wrapper format.
func WithGroupWrapper(format string) Option {
	return func(r *FormElement) {
		r.groupWrapper = format
	}
}

// WithControlWrapper sets the default control wrapper format.
func WithControlWrapper(format string) Option {
	return func(r *FormElement) {
		r.controlWrapper = format
	}
}

// WithInline drops the "row" modifier from the group wrapper.
func WithInline(inline bool) Option {
	return func(r *FormElement) {
		r.inline = inline
	}
}

// WithLabelClass overrides DefaultLabelClass.
func WithLabelClass(class string) Option {
	return func(r *FormElement) {
		r.labelClass = strings.TrimSpace(class)
	}
}

// WithLabelSanitizer filters labels rendered with SkipLabelEscape. Without
// one, unescaped labels are written verbatim.
func WithLabelSanitizer(fn func(string) string) Option {
	return func(r *FormElement) {
		r.sanitizeRaw = fn
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *FormElement) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithTheme applies wrapper templates and the inline token from a go-theme
// selection. Explicit wrapper options applied after it win.
func WithTheme(selection *theme.Selection) Option {
	return func(r *FormElement) {
		applyTheme(r, selection)
	}
}

// RenderOption overrides wrappers for a single call.
type RenderOption func(*renderCall)

type renderCall struct {
	group   string
	control string
}

// WithGroup overrides the group wrapper for one call.
func WithGroup(format string) RenderOption {
	return func(c *renderCall) {
		c.group = format
	}
}

// WithControl overrides the control wrapper for one call.
func WithControl(format string) RenderOption {
	return func(c *renderCall) {
		c.control = format
	}
}

// Result is the outcome of rendering one element.
type Result struct {
	HTML string
	// Class is the class list applied to the control.
	Class string
	// Companion is the hidden input emitted ahead of a checkbox label.
	Companion string
}

// FormElement renders one form element with Bootstrap 4 markup. Rendering
// never mutates the element passed in; wrapper configuration is guarded so a
// FormElement can be shared between goroutines.
type FormElement struct {
	label       LabelHelper
	control     ControlHelper
	errors      ErrorHelper
	description DescriptionHelper
	escaper     Escaper

	mu             sync.RWMutex
	groupWrapper   string
	controlWrapper string
	inline         bool

	labelClass  string
	sanitizeRaw func(string) string
	logger      *zap.Logger
	theme       *theme.Selection
}

// New builds a FormElement from explicit collaborators.
func New(helpers Collaborators, options ...Option) (*FormElement, error) {
	if err := helpers.validate(); err != nil {
		return nil, err
	}

	r := &FormElement{
		label:          helpers.Label,
		control:        helpers.Control,
		errors:         helpers.Errors,
		description:    helpers.Description,
		escaper:        helpers.Escaper,
		groupWrapper:   DefaultGroupWrapper,
		controlWrapper: DefaultControlWrapper,
		labelClass:     DefaultLabelClass,
		logger:         zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	r.logTheme()

	if err := ValidateWrapper(r.groupWrapper); err != nil {
		return nil, fmt.Errorf("bootstrap: group wrapper: %w", err)
	}
	if err := ValidateWrapper(r.controlWrapper); err != nil {
		return nil, fmt.Errorf("bootstrap: control wrapper: %w", err)
	}
	return r, nil
}

// GroupWrapper returns the configured group wrapper format.
func (r *FormElement) GroupWrapper() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.groupWrapper
}

// SetGroupWrapper replaces the group wrapper format.
func (r *FormElement) SetGroupWrapper(format string) error {
	if err := ValidateWrapper(format); err != nil {
		return err
	}
	r.mu.Lock()
	r.groupWrapper = format
	r.mu.Unlock()
	return nil
}

// ControlWrapper returns the configured control wrapper format.
func (r *FormElement) ControlWrapper() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.controlWrapper
}

// SetControlWrapper replaces the control wrapper format.
func (r *FormElement) SetControlWrapper(format string) error {
	if err := ValidateWrapper(format); err != nil {
		return err
	}
	r.mu.Lock()
	r.controlWrapper = format
	r.mu.Unlock()
	return nil
}

// Inline reports whether the renderer targets inline forms.
func (r *FormElement) Inline() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.inline
}

// SetInline toggles inline form rendering.
func (r *FormElement) SetInline(inline bool) {
	r.mu.Lock()
	r.inline = inline
	r.mu.Unlock()
}

// Render returns the markup for el.
func (r *FormElement) Render(el *element.Element, options ...RenderOption) (string, error) {
	result, err := r.RenderResult(el, options...)
	if err != nil {
		return "", err
	}
	return result.HTML, nil
}

// RenderResult renders el and reports the computed class list and companion
// input alongside the markup.
func (r *FormElement) RenderResult(el *element.Element, options ...RenderOption) (Result, error) {
	if el == nil {
		return Result{}, ErrNilElement
	}

	r.mu.RLock()
	call := renderCall{group: r.groupWrapper, control: r.controlWrapper}
	inline := r.inline
	r.mu.RUnlock()

	for _, opt := range options {
		if opt != nil {
			opt(&call)
		}
	}
	if err := ValidateWrapper(call.group); err != nil {
		return Result{}, fmt.Errorf("bootstrap: group wrapper: %w", err)
	}
	if err := ValidateWrapper(call.control); err != nil {
		return Result{}, fmt.Errorf("bootstrap: control wrapper: %w", err)
	}

	view := el.Clone()

	companion := ""
	if view.UseHiddenElement {
		out, err := r.control.RenderCompanion(view)
		if err != nil {
			return Result{}, fmt.Errorf("bootstrap: render companion for %q: %w", view.Name, err)
		}
		companion = out
	}

	id := view.ID()
	controlWrapper := call.control
	if view.Options.Inline {
		controlWrapper = InlineControlWrapper
	}

	class := classList(view)
	if class != "" || view.HasAttribute("class") {
		view.SetAttribute("class", class)
	}

	labelMarkup := ""
	if text := labelText(view); text != "" && !view.Options.SkipLabel {
		out, err := r.renderLabel(view, text)
		if err != nil {
			return Result{}, err
		}
		labelMarkup = out
	}

	var controls string
	if view.Options.WrapCheckboxInLabel && labelMarkup != "" {
		controls = labelMarkup
		labelMarkup = ""
	} else {
		out, err := r.control.Render(view)
		if err != nil {
			return Result{}, fmt.Errorf("bootstrap: render control %q: %w", view.Name, err)
		}
		controls = out
	}

	if view.Kind.WrapsOptionLabels() {
		controls = wrapFormCheck(view, controls)
	}

	errorMarkup, err := r.errors.Render(view)
	if err != nil {
		return Result{}, fmt.Errorf("bootstrap: render errors for %q: %w", view.Name, err)
	}

	if view.Kind.Bare() {
		return Result{HTML: controls + errorMarkup, Class: class}, nil
	}

	if errorMarkup != "" {
		errorMarkup = fmt.Sprintf(invalidFeedback, errorMarkup)
	}

	description, err := r.description.Render(view)
	if err != nil {
		return Result{}, fmt.Errorf("bootstrap: render description for %q: %w", view.Name, err)
	}

	inner := companion + labelMarkup + fmt.Sprintf(controlWrapper, controls, description, errorMarkup)

	modifier := rowModifier
	if inline {
		modifier = ""
	}

	r.logger.Debug("rendered form element",
		zap.String("name", view.Name),
		zap.Stringer("kind", view.Kind),
		zap.String("class", class),
		zap.Bool("invalid", view.HasMessages()),
	)

	return Result{
		HTML:      fmt.Sprintf(call.group, modifier, id, inner),
		Class:     class,
		Companion: companion,
	}, nil
}

func (r *FormElement) renderLabel(view *element.Element, text string) (string, error) {
	class := r.labelClass
	if view.Options.WrapCheckboxInLabel {
		class = ""
	}
	attrs := []element.Attr{{Key: "class", Value: class}}
	// Radio and multi-checkbox inputs take per-option ids, so no control
	// matches the element id.
	if view.HasAttribute("id") && view.Kind != element.KindRadio && view.Kind != element.KindMultiCheckbox {
		attrs = append(attrs, element.Attr{Key: "for", Value: view.ID()})
	}

	var b strings.Builder
	b.WriteString(r.label.OpenTag(attrs...))

	if t := r.label.Translator(); t != nil {
		text = render.Translate(t, r.label.Locale(), text, text, nil, map[string]any{"domain": r.label.TextDomain()})
	}

	if view.Options.WrapCheckboxInLabel {
		control, err := r.control.Render(view)
		if err != nil {
			return "", fmt.Errorf("bootstrap: render control %q: %w", view.Name, err)
		}
		b.WriteString(control)
		b.WriteByte(' ')
	}

	switch {
	case !view.Options.SkipLabelEscape:
		b.WriteString(r.escaper.Escape(text))
	case r.sanitizeRaw != nil:
		b.WriteString(r.sanitizeRaw(text))
	default:
		b.WriteString(text)
	}

	b.WriteString(r.label.CloseTag())
	return b.String(), nil
}

const (
	formCheckOpen  = `<div class="form-check">`
	formCheckClose = `</div>`
)

var formCheckReplacer = strings.NewReplacer(
	"<label", formCheckOpen+`<label class="form-check-label"`,
	"</label>", "</label>"+formCheckClose,
)

// wrapFormCheck turns option labels into form-check blocks. A lone checkbox
// without a label still needs the form-check container for Bootstrap to
// position it.
func wrapFormCheck(el *element.Element, controls string) string {
	if strings.Contains(controls, "<label") {
		return formCheckReplacer.Replace(controls)
	}
	if el.Kind == element.KindCheckbox && controls != "" {
		return formCheckOpen + controls + formCheckClose
	}
	return controls
}

// classList merges the element's own classes with the kind specific
// Bootstrap class and is-invalid. Duplicates collapse, order is kept.
func classList(el *element.Element) string {
	tokens := strings.Fields(el.Attribute("class"))
	switch {
	case el.Kind.Checkable():
		tokens = append(tokens, "form-check-input")
	case el.Kind.Bare():
	default:
		tokens = append(tokens, "form-control")
	}
	if el.HasMessages() {
		tokens = append(tokens, "is-invalid")
	}

	seen := make(map[string]struct{}, len(tokens))
	out := tokens[:0]
	for _, token := range tokens {
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	return strings.Join(out, " ")
}

// labelText resolves the label: element label, then the label option, then
// the label attribute.
func labelText(el *element.Element) string {
	if el.Label != "" {
		return el.Label
	}
	if el.Options.Label != "" {
		return el.Options.Label
	}
	return el.Attribute("label")
}
