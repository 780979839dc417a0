package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formbs/pkg/bootstrap"
	"github.com/goliatone/go-formbs/pkg/config"
	"github.com/goliatone/go-formbs/pkg/element"
	"github.com/goliatone/go-formbs/pkg/viewhelper"
)

func newRenderer(t *testing.T, cfg *config.Config) *bootstrap.FormElement {
	t.Helper()

	options, err := cfg.Options()
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	control, err := viewhelper.NewFormControl(cfg.ControlOptions()...)
	if err != nil {
		t.Fatalf("control: %v", err)
	}
	r, err := bootstrap.New(bootstrap.Collaborators{
		Label:       viewhelper.NewFormLabel(cfg.LabelOptions()...),
		Control:     control,
		Errors:      viewhelper.NewFormElementErrors(),
		Description: viewhelper.NewFormDescription(),
		Escaper:     viewhelper.DefaultEscaper,
	}, options...)
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	return r
}

func TestLoad_File(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "formbs.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Locale != "es" || cfg.TextDomain != "forms" || cfg.Theme != "acme" || cfg.Variant != "compact" {
		t.Fatalf("unexpected config %+v", cfg)
	}

	r := newRenderer(t, cfg)
	if !r.Inline() {
		t.Fatal("theme variant should make the renderer inline")
	}
	if r.GroupWrapper() != `<fieldset class="form-group %s" id="fg-%s">%s</fieldset>` {
		t.Fatalf("group wrapper = %q", r.GroupWrapper())
	}

	out, err := r.Render(element.New("q", element.KindText, element.WithLabel("Q")))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<fieldset class="form-group " id="fg-q"><label class="col-form-label col-sm-3">Q</label>` +
		`<div class="col-sm-10"><input type="text" name="q" class="form-control"></div></fieldset>`
	if out != want {
		t.Fatalf("unexpected markup\nwant: %s\n got: %s", want, out)
	}

	logger, err := cfg.Logger()
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	if !logger.Core().Enabled(-1) {
		t.Fatal("expected debug logging to be enabled")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FORMBS_INLINE", "true")
	t.Setenv("FORMBS_LOCALE", "fr")
	t.Setenv("FORMBS_CONTROL_WRAPPER", `<div class="col">%s%s%s</div>`)

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.Inline || cfg.Locale != "fr" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}

	r := newRenderer(t, cfg)
	if r.ControlWrapper() != `<div class="col">%s%s%s</div>` || !r.Inline() {
		t.Fatalf("options not applied: %q inline=%v", r.ControlWrapper(), r.Inline())
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := config.Load(filepath.Join("testdata", "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}

	dir := t.TempDir()
	badWrapper := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(badWrapper, []byte("group_wrapper: \"<div>%s</div>\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := config.Load(badWrapper); !errors.Is(err, bootstrap.ErrInvalidWrapper) {
		t.Fatalf("expected ErrInvalidWrapper, got %v", err)
	}

	unknownTheme := filepath.Join(dir, "theme.yaml")
	if err := os.WriteFile(unknownTheme, []byte("theme: nope\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := config.Load(unknownTheme); err == nil {
		t.Fatal("expected error for undefined theme")
	}

	cfg := &config.Config{LogLevel: "loud"}
	if _, err := cfg.Logger(); err == nil {
		t.Fatal("expected error for invalid log level")
	}
}

func TestSelector_Registry(t *testing.T) {
	cfg := &config.Config{
		Theme:   "acme",
		Variant: "compact",
		Themes: map[string]*theme.Manifest{
			"acme": {
				Version:   "1.0.0",
				Templates: map[string]string{bootstrap.ThemeControlWrapperKey: `<div class="col">%s%s%s</div>`},
				Variants: map[string]theme.Variant{
					"compact": {Templates: map[string]string{bootstrap.ThemeControlWrapperKey: `%s%s%s`}},
				},
			},
		},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	selector, err := cfg.Selector()
	if err != nil {
		t.Fatalf("selector: %v", err)
	}
	selection, err := selector.Select("", "")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if selection.Manifest.Name != "acme" || selection.Variant != "compact" {
		t.Fatalf("unexpected selection %+v", selection)
	}
	if got := selection.Template(bootstrap.ThemeControlWrapperKey, ""); got != `%s%s%s` {
		t.Fatalf("variant template = %q", got)
	}

	if _, err := selector.Select("missing", ""); err != nil {
		t.Fatalf("unknown theme should fall back to the default: %v", err)
	}
}

func TestValidate_Themes(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{
			name: "unknown variant",
			cfg: config.Config{
				Theme:   "acme",
				Variant: "dark",
				Themes:  map[string]*theme.Manifest{"acme": {Version: "1.0.0"}},
			},
		},
		{
			name: "manifest without version",
			cfg:  config.Config{Themes: map[string]*theme.Manifest{"acme": {}}},
		},
		{
			name: "empty manifest",
			cfg:  config.Config{Themes: map[string]*theme.Manifest{"acme": nil}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
