// Package formbs renders form elements with Bootstrap 4 markup. It wires the
// default view helpers into a bootstrap.FormElement, registers form renderers
// and builds forms from OpenAPI operations.
package formbs

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-formbs/pkg/bootstrap"
	"github.com/goliatone/go-formbs/pkg/config"
	"github.com/goliatone/go-formbs/pkg/element"
	pkgopenapi "github.com/goliatone/go-formbs/pkg/openapi"
	"github.com/goliatone/go-formbs/pkg/render"
	"github.com/goliatone/go-formbs/pkg/viewhelper"
)

// RenderOptions carries per-request values, errors and locale.
type RenderOptions = render.RenderOptions

// Element is the form element descriptor.
type Element = element.Element

// Form is an ordered set of elements.
type Form = element.Form

// Option configures the default wiring.
type Option func(*settings)

type settings struct {
	config         *config.Config
	translator     render.Translator
	logger         *zap.Logger
	elementOptions []bootstrap.Option
	controlOptions []viewhelper.ControlOption
	loaderOptions  []pkgopenapi.LoaderOption
}

// WithConfig applies a loaded config: wrappers, theme, locale, templates.
func WithConfig(cfg *config.Config) Option {
	return func(s *settings) {
		s.config = cfg
	}
}

// WithTranslator translates labels, option labels and error messages.
func WithTranslator(t render.Translator) Option {
	return func(s *settings) {
		s.translator = t
	}
}

// WithLogger sets the logger handed to the renderers.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithElementOptions appends FormElement options after the config ones.
func WithElementOptions(options ...bootstrap.Option) Option {
	return func(s *settings) {
		s.elementOptions = append(s.elementOptions, options...)
	}
}

// WithControlOptions appends FormControl options after the config ones.
func WithControlOptions(options ...viewhelper.ControlOption) Option {
	return func(s *settings) {
		s.controlOptions = append(s.controlOptions, options...)
	}
}

// WithLoaderOptions configures the loader used by GenerateHTML.
func WithLoaderOptions(options ...pkgopenapi.LoaderOption) Option {
	return func(s *settings) {
		s.loaderOptions = append(s.loaderOptions, options...)
	}
}

func newSettings(options []Option) *settings {
	s := &settings{}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if s.config == nil {
		s.config = &config.Config{}
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// NewElementRenderer wires the default view helpers into a FormElement.
func NewElementRenderer(options ...Option) (*bootstrap.FormElement, error) {
	return newSettings(options).elementRenderer()
}

func (s *settings) elementRenderer(extra ...bootstrap.Option) (*bootstrap.FormElement, error) {
	cfg := s.config

	controlOptions := append(cfg.ControlOptions(), s.controlOptions...)
	if s.translator != nil {
		controlOptions = append(controlOptions, viewhelper.WithControlTranslator(s.translator, cfg.Locale))
	}
	control, err := viewhelper.NewFormControl(controlOptions...)
	if err != nil {
		return nil, fmt.Errorf("formbs: control helper: %w", err)
	}

	labelOptions := cfg.LabelOptions()
	if s.translator != nil {
		labelOptions = append(labelOptions, viewhelper.WithTranslator(s.translator))
	}

	errorsHelper := viewhelper.NewFormElementErrors()
	errorsHelper.Translator = s.translator
	errorsHelper.Locale = cfg.Locale

	elementOptions, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	elementOptions = append(elementOptions,
		bootstrap.WithLogger(s.logger),
		bootstrap.WithLabelSanitizer(viewhelper.SanitizeMarkup),
	)
	elementOptions = append(elementOptions, s.elementOptions...)
	elementOptions = append(elementOptions, extra...)

	return bootstrap.New(bootstrap.Collaborators{
		Label:       viewhelper.NewFormLabel(labelOptions...),
		Control:     control,
		Errors:      errorsHelper,
		Description: viewhelper.NewFormDescription(),
		Escaper:     viewhelper.DefaultEscaper,
	}, elementOptions...)
}

// NewRegistry returns a registry holding the "bootstrap4" (horizontal) and
// "bootstrap4-inline" form renderers.
func NewRegistry(options ...Option) (*render.Registry, error) {
	s := newSettings(options)
	registry := render.NewRegistry()

	// The default renderer keeps the inline setting from config and theme.
	for _, entry := range []struct {
		name  string
		extra []bootstrap.Option
	}{
		{bootstrap.RendererName, nil},
		{bootstrap.InlineRendererName, []bootstrap.Option{bootstrap.WithInline(true)}},
	} {
		elements, err := s.elementRenderer(entry.extra...)
		if err != nil {
			return nil, err
		}
		renderer, err := bootstrap.NewFormRenderer(entry.name, elements, s.logger)
		if err != nil {
			return nil, err
		}
		if err := registry.Register(renderer); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// GenerateHTML loads source, builds the form for operationID and renders it
// with rendererName (default "bootstrap4").
func GenerateHTML(ctx context.Context, source pkgopenapi.Source, operationID, rendererName string, opts RenderOptions, options ...Option) ([]byte, error) {
	s := newSettings(options)

	doc, err := NewLoader(s.loaderOptions...).Load(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("formbs: load document: %w", err)
	}
	return GenerateHTMLFromDocument(ctx, doc, operationID, rendererName, opts, options...)
}

// GenerateHTMLFromDocument is GenerateHTML for an already loaded document.
func GenerateHTMLFromDocument(ctx context.Context, doc pkgopenapi.Document, operationID, rendererName string, opts RenderOptions, options ...Option) ([]byte, error) {
	form, err := LoadForm(ctx, doc, operationID)
	if err != nil {
		return nil, err
	}
	return RenderForm(ctx, form, rendererName, opts, options...)
}

// RenderForm renders form with rendererName (default "bootstrap4").
func RenderForm(ctx context.Context, form Form, rendererName string, opts RenderOptions, options ...Option) ([]byte, error) {
	registry, err := NewRegistry(options...)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(rendererName) == "" {
		rendererName = bootstrap.RendererName
	}
	renderer, err := registry.Get(rendererName)
	if err != nil {
		return nil, fmt.Errorf("formbs: %w", err)
	}
	s := newSettings(options)
	if opts.Translator == nil {
		opts.Translator = s.translator
	}
	if opts.Locale == "" {
		opts.Locale = s.config.Locale
	}
	return renderer.Render(ctx, form, opts)
}
