package bootstrap_test

import (
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-formbs/pkg/bootstrap"
	"github.com/goliatone/go-formbs/pkg/element"
)

func bootstrapManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			bootstrap.ThemeLabelClassKey: "col-form-label col-md-3",
		},
		Templates: map[string]string{
			bootstrap.ThemeGroupWrapperKey:   `<fieldset class="form-group %s" id="fg-%s">%s</fieldset>`,
			bootstrap.ThemeControlWrapperKey: `<div class="col-md-9">%s%s%s</div>`,
		},
		Variants: map[string]theme.Variant{
			"compact": {
				Tokens: map[string]string{
					bootstrap.ThemeInlineKey: "true",
				},
				Templates: map[string]string{
					bootstrap.ThemeControlWrapperKey: `%s%s%s`,
				},
			},
		},
	}
}

func TestWithTheme(t *testing.T) {
	r := newStubRenderer(t, bootstrap.WithTheme(&theme.Selection{
		Theme:    "acme",
		Manifest: bootstrapManifest(),
	}))

	if got := r.GroupWrapper(); got != `<fieldset class="form-group %s" id="fg-%s">%s</fieldset>` {
		t.Fatalf("group wrapper = %q", got)
	}
	if r.Inline() {
		t.Fatal("base manifest should not be inline")
	}

	got := mustRender(t, r, element.New("q", element.KindText, element.WithLabel("Q")))
	want := `<fieldset class="form-group row" id="fg-q"><label class="col-form-label col-md-3">Q</label>` +
		`<div class="col-md-9"><input name="q" class="form-control"></div></fieldset>`
	if got != want {
		t.Fatalf("unexpected markup\nwant: %s\n got: %s", want, got)
	}
}

func newThemeSelector(t *testing.T, manifests ...*theme.Manifest) theme.Selector {
	t.Helper()

	registry := theme.NewRegistry()
	for _, manifest := range manifests {
		if err := registry.Register(manifest); err != nil {
			t.Fatalf("register %q: %v", manifest.Name, err)
		}
	}
	return theme.Selector{Registry: registry}
}

func TestThemeOption_VariantWins(t *testing.T) {
	selector := newThemeSelector(t, bootstrapManifest())

	opt, err := bootstrap.ThemeOption(selector, "acme", "compact")
	if err != nil {
		t.Fatalf("theme option: %v", err)
	}
	r := newStubRenderer(t, opt, bootstrap.WithGroupWrapper(`<div class="%s" id="%s">%s</div>`))

	if !r.Inline() {
		t.Fatal("variant token should enable inline")
	}
	if got := r.ControlWrapper(); got != `%s%s%s` {
		t.Fatalf("control wrapper = %q", got)
	}
	if got := r.GroupWrapper(); got != `<div class="%s" id="%s">%s</div>` {
		t.Fatalf("explicit option should win over theme, got %q", got)
	}

	if _, err := bootstrap.ThemeOption(nil, "acme", ""); err == nil {
		t.Fatal("expected error for nil selector")
	}
	if _, err := bootstrap.ThemeOption(selector, "missing", ""); err == nil || !strings.Contains(err.Error(), "missing") {
		t.Fatalf("expected select error, got %v", err)
	}
}

func TestWithTheme_LogsThroughConfiguredLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	selection := &theme.Selection{Theme: "acme", Variant: "compact", Manifest: bootstrapManifest()}

	newStubRenderer(t, bootstrap.WithTheme(selection), bootstrap.WithLogger(zap.New(core)))

	entries := logs.FilterMessage("applied bootstrap theme").All()
	if len(entries) != 1 {
		t.Fatalf("expected one theme log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["theme"] != "acme" || fields["variant"] != "compact" {
		t.Fatalf("unexpected log fields %v", fields)
	}
}
