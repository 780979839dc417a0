// Package config loads renderer settings from a YAML file and FORMBS_*
// environment variables.
package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/caarlos0/env/v11"
	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbs/pkg/bootstrap"
	"github.com/goliatone/go-formbs/pkg/viewhelper"
)

// Config holds renderer settings. Environment variables override the file.
type Config struct {
	GroupWrapper   string `yaml:"group_wrapper" env:"FORMBS_GROUP_WRAPPER"`
	ControlWrapper string `yaml:"control_wrapper" env:"FORMBS_CONTROL_WRAPPER"`
	Inline         bool   `yaml:"inline" env:"FORMBS_INLINE"`
	LabelClass     string `yaml:"label_class" env:"FORMBS_LABEL_CLASS"`
	Locale         string `yaml:"locale" env:"FORMBS_LOCALE"`
	TextDomain     string `yaml:"text_domain" env:"FORMBS_TEXT_DOMAIN"`
	TemplatesDir   string `yaml:"templates_dir" env:"FORMBS_TEMPLATES_DIR"`
	Theme          string `yaml:"theme" env:"FORMBS_THEME"`
	Variant        string `yaml:"variant" env:"FORMBS_THEME_VARIANT"`
	LogLevel       string `yaml:"log_level" env:"FORMBS_LOG_LEVEL"`

	// Themes are go-theme manifests keyed by name. An empty manifest name
	// defaults to its key.
	Themes map[string]*theme.Manifest `yaml:"themes"`
}

// Load reads path (skipped when empty) and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path = strings.TrimSpace(path); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks wrapper formats and the theme reference.
func (c *Config) Validate() error {
	if c.GroupWrapper != "" {
		if err := bootstrap.ValidateWrapper(c.GroupWrapper); err != nil {
			return fmt.Errorf("config: group_wrapper: %w", err)
		}
	}
	if c.ControlWrapper != "" {
		if err := bootstrap.ValidateWrapper(c.ControlWrapper); err != nil {
			return fmt.Errorf("config: control_wrapper: %w", err)
		}
	}
	registry, err := c.Registry()
	if err != nil {
		return err
	}
	if c.Theme != "" {
		manifest, err := registry.Get(c.Theme)
		if err != nil {
			return fmt.Errorf("config: theme %q: %w", c.Theme, err)
		}
		if c.Variant != "" {
			if _, ok := manifest.Variants[c.Variant]; !ok {
				return fmt.Errorf("config: theme %q has no variant %q", c.Theme, c.Variant)
			}
		}
	}
	return nil
}

// Options converts the config into FormElement options. The theme is applied
// first so explicit wrappers and classes override it.
func (c *Config) Options() ([]bootstrap.Option, error) {
	var options []bootstrap.Option
	if c.Theme != "" {
		selector, err := c.Selector()
		if err != nil {
			return nil, err
		}
		opt, err := bootstrap.ThemeOption(selector, c.Theme, c.Variant)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		options = append(options, opt)
	}
	if c.GroupWrapper != "" {
		options = append(options, bootstrap.WithGroupWrapper(c.GroupWrapper))
	}
	if c.ControlWrapper != "" {
		options = append(options, bootstrap.WithControlWrapper(c.ControlWrapper))
	}
	if c.LabelClass != "" {
		options = append(options, bootstrap.WithLabelClass(c.LabelClass))
	}
	if c.Inline {
		options = append(options, bootstrap.WithInline(true))
	}
	return options, nil
}

// LabelOptions configures the label helper locale and text domain.
func (c *Config) LabelOptions() []viewhelper.LabelOption {
	return []viewhelper.LabelOption{
		viewhelper.WithLocale(c.Locale),
		viewhelper.WithTextDomain(c.TextDomain),
	}
}

// ControlOptions configures the control helper templates.
func (c *Config) ControlOptions() []viewhelper.ControlOption {
	if c.TemplatesDir == "" {
		return nil
	}
	return []viewhelper.ControlOption{viewhelper.WithTemplatesDir(c.TemplatesDir)}
}

// Logger builds a production zap logger at LogLevel.
func (c *Config) Logger() (*zap.Logger, error) {
	level := c.LogLevel
	if level == "" {
		level = "info"
	}
	atomic, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("config: log level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = atomic
	return cfg.Build()
}

// Registry registers the configured manifests in a go-theme memory registry.
func (c *Config) Registry() (*theme.MemoryRegistry, error) {
	registry := theme.NewRegistry()
	names := make([]string, 0, len(c.Themes))
	for name := range c.Themes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		manifest := c.Themes[name]
		if manifest == nil {
			return nil, fmt.Errorf("config: theme %q is empty", name)
		}
		if strings.TrimSpace(manifest.Name) == "" {
			manifest.Name = name
		}
		if err := registry.Register(manifest); err != nil {
			return nil, fmt.Errorf("config: theme %q: %w", name, err)
		}
	}
	return registry, nil
}

// Selector resolves Theme and Variant against the configured manifests.
func (c *Config) Selector() (theme.Selector, error) {
	registry, err := c.Registry()
	if err != nil {
		return theme.Selector{}, err
	}
	return theme.Selector{
		Registry:       registry,
		DefaultTheme:   c.Theme,
		DefaultVariant: c.Variant,
	}, nil
}
