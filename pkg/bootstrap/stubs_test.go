package bootstrap_test

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/goliatone/go-formbs/pkg/bootstrap"
	"github.com/goliatone/go-formbs/pkg/element"
	"github.com/goliatone/go-formbs/pkg/render"
	"github.com/goliatone/go-formbs/pkg/viewhelper"
)

type stubLabel struct {
	translator render.Translator
	domain     string
}

func (l stubLabel) OpenTag(attrs ...element.Attr) string {
	var b strings.Builder
	b.WriteString("<label")
	for _, attr := range attrs {
		if attr.Value == "" {
			continue
		}
		b.WriteString(" " + attr.Key + `="` + attr.Value + `"`)
	}
	b.WriteString(">")
	return b.String()
}

func (stubLabel) CloseTag() string                { return "</label>" }
func (l stubLabel) Translator() render.Translator { return l.translator }
func (l stubLabel) TextDomain() string            { return l.domain }
func (stubLabel) Locale() string                  { return "es" }

type stubControl struct {
	calls int
	err   error
}

func (c *stubControl) Render(el *element.Element) (string, error) {
	c.calls++
	if c.err != nil {
		return "", c.err
	}
	input := `<input name="` + el.Attribute("name") + `"`
	if class := el.Attribute("class"); class != "" {
		input += ` class="` + class + `"`
	}
	input += ">"
	if el.Kind == element.KindRadio {
		var b strings.Builder
		for _, opt := range el.Options.ValueOptions {
			b.WriteString("<label>" + input + opt.Label + "</label>")
		}
		return b.String(), nil
	}
	return input, nil
}

func (c *stubControl) RenderCompanion(el *element.Element) (string, error) {
	if el.Kind != element.KindCheckbox || !el.UseHiddenElement {
		return "", nil
	}
	return `<input type="hidden" name="` + el.Attribute("name") + `" value="` + el.UncheckedValue + `">`, nil
}

type stubErrors struct{}

func (stubErrors) Render(el *element.Element) (string, error) {
	if len(el.Messages) == 0 {
		return "", nil
	}
	return "<ul><li>" + strings.Join(el.Messages, "</li><li>") + "</li></ul>", nil
}

type stubDescription struct{}

func (stubDescription) Render(el *element.Element) (string, error) {
	if el.Options.Description == "" {
		return "", nil
	}
	return "<small>" + el.Options.Description + "</small>", nil
}

type mapTranslator struct {
	messages map[string]string
	domains  []string
}

func (t *mapTranslator) Translate(_ string, key string, args ...any) (string, error) {
	for _, arg := range args {
		if values, ok := arg.(map[string]any); ok {
			if domain, ok := values["domain"].(string); ok {
				t.domains = append(t.domains, domain)
			}
		}
	}
	if msg, ok := t.messages[key]; ok {
		return msg, nil
	}
	return "", errors.New("missing")
}

func stubCollaborators(control *stubControl) bootstrap.Collaborators {
	if control == nil {
		control = &stubControl{}
	}
	return bootstrap.Collaborators{
		Label:       stubLabel{},
		Control:     control,
		Errors:      stubErrors{},
		Description: stubDescription{},
		Escaper:     viewhelper.DefaultEscaper,
	}
}

func newStubRenderer(t *testing.T, options ...bootstrap.Option) *bootstrap.FormElement {
	t.Helper()

	r, err := bootstrap.New(stubCollaborators(nil), options...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func newDefaultRenderer(t *testing.T, options ...bootstrap.Option) *bootstrap.FormElement {
	t.Helper()

	control, err := viewhelper.NewFormControl()
	if err != nil {
		t.Fatalf("new form control: %v", err)
	}
	r, err := bootstrap.New(bootstrap.Collaborators{
		Label:       viewhelper.NewFormLabel(),
		Control:     control,
		Errors:      viewhelper.NewFormElementErrors(),
		Description: viewhelper.NewFormDescription(),
		Escaper:     viewhelper.DefaultEscaper,
	}, options...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func mustRender(t *testing.T, r *bootstrap.FormElement, el *element.Element, options ...bootstrap.RenderOption) string {
	t.Helper()

	out, err := r.Render(el, options...)
	if err != nil {
		t.Fatalf("render %q: %v", el.Name, err)
	}
	return out
}

var classAttr = regexp.MustCompile(`class="([^"]*)"`)

// hasClassToken reports whether any class attribute in markup lists token as
// a whole class name.
func hasClassToken(markup, token string) bool {
	for _, match := range classAttr.FindAllStringSubmatch(markup, -1) {
		for _, class := range strings.Fields(match[1]) {
			if class == token {
				return true
			}
		}
	}
	return false
}
