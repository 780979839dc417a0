package viewhelper_test

import (
	"testing"

	"github.com/goliatone/go-formbs/pkg/element"
	"github.com/goliatone/go-formbs/pkg/render"
	"github.com/goliatone/go-formbs/pkg/viewhelper"
)

func TestFormLabel(t *testing.T) {
	translator := render.TranslatorFunc(func(_, key string, _ ...any) (string, error) {
		return key, nil
	})
	label := viewhelper.NewFormLabel(
		viewhelper.WithTranslator(translator),
		viewhelper.WithTextDomain("forms"),
		viewhelper.WithLocale("fr"),
	)

	if got := label.OpenTag(
		element.Attr{Key: "class", Value: ""},
		element.Attr{Key: "for", Value: "email"},
	); got != `<label for="email">` {
		t.Fatalf("unexpected open tag %q", got)
	}
	if got := label.OpenTag(element.Attr{Key: "class", Value: `a"b`}); got != `<label class="a&#34;b">` {
		t.Fatalf("attribute values must be escaped, got %q", got)
	}
	if got := label.CloseTag(); got != "</label>" {
		t.Fatalf("unexpected close tag %q", got)
	}
	if label.Translator() == nil || label.TextDomain() != "forms" || label.Locale() != "fr" {
		t.Fatal("label options not applied")
	}
	if viewhelper.NewFormLabel().Translator() != nil {
		t.Fatal("default label helper must not translate")
	}
}

func TestFormElementErrors(t *testing.T) {
	helper := viewhelper.NewFormElementErrors()

	got, err := helper.Render(element.New("a", element.KindText))
	if err != nil || got != "" {
		t.Fatalf("expected empty markup, got %q (%v)", got, err)
	}

	got, err = helper.Render(element.New("a", element.KindText, element.WithMessages("<b>x</b>", " ", "y")))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := `<ul><li>&lt;b&gt;x&lt;/b&gt;</li><li>y</li></ul>`; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}

	helper.Attributes = []element.Attr{{Key: "class", Value: "errors"}}
	helper.Translator = render.TranslatorFunc(func(locale, key string, _ ...any) (string, error) {
		return locale + ":" + key, nil
	})
	helper.Locale = "de"
	got, err = helper.Render(element.New("a", element.KindText, element.WithMessages("required")))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := `<ul class="errors"><li>de:required</li></ul>`; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestFormDescription(t *testing.T) {
	helper := viewhelper.NewFormDescription()

	got, err := helper.Render(element.New("email", element.KindEmail))
	if err != nil || got != "" {
		t.Fatalf("expected no description, got %q (%v)", got, err)
	}

	el := element.New("email", element.KindEmail,
		element.WithAttribute("id", "e"),
		element.WithOptions(element.Options{Description: "Use <em>work</em> email<script>alert(1)</script>"}),
	)
	got, err = helper.Render(el)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := `<small id="e-help" class="form-text text-muted">Use <em>work</em> email</small>`; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}

	helper.Class = "help"
	got, _ = helper.Render(el)
	if want := `<small id="e-help" class="help">Use <em>work</em> email</small>`; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestEscapeHTML(t *testing.T) {
	if got := viewhelper.DefaultEscaper.Escape(`<a href="x">`); got != "&lt;a href=&#34;x&#34;&gt;" {
		t.Fatalf("unexpected escape %q", got)
	}
	var zero viewhelper.EscapeHTML
	if got := zero.Escape("&"); got != "&amp;" {
		t.Fatalf("nil escaper should fall back to html escaping, got %q", got)
	}
	upper := viewhelper.EscapeHTML(func(s string) string { return "[" + s + "]" })
	if got := upper.Escape("x"); got != "[x]" {
		t.Fatalf("custom escaper not used, got %q", got)
	}
}
