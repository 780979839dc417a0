// Package prompt collects form values on the terminal. The values feed
// render.RenderOptions so a form can be previewed prefilled.
package prompt

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-formbs/pkg/element"
)

// Collector asks one question per element of a form.
type Collector struct {
	driver Driver
	logger *zap.Logger
	skip   map[string]struct{}
}

// Option configures a Collector.
type Option func(*Collector)

// WithLogger logs skipped and answered elements at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Collector) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSkip excludes elements by name.
func WithSkip(names ...string) Option {
	return func(c *Collector) {
		for _, name := range names {
			c.skip[name] = struct{}{}
		}
	}
}

// New builds a Collector. A nil driver uses survey prompts.
func New(driver Driver, options ...Option) *Collector {
	if driver == nil {
		driver = NewSurveyDriver()
	}
	c := &Collector{
		driver: driver,
		logger: zap.NewNop(),
		skip:   make(map[string]struct{}),
	}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Collect prompts for every editable element and returns values keyed by
// element name, in the shape render.ApplyValues expects. Hidden and button
// kinds are skipped, as are empty optional answers.
func (c *Collector) Collect(ctx context.Context, form element.Form) (map[string]any, error) {
	values := make(map[string]any)
	for _, el := range form.Elements {
		if el == nil || el.Kind.Bare() {
			continue
		}
		if _, skip := c.skip[el.Name]; skip {
			c.logger.Debug("prompt skipped", zap.String("element", el.Name))
			continue
		}
		value, ok, err := c.ask(ctx, el)
		if err != nil {
			return nil, fmt.Errorf("prompt: %s: %w", el.Name, err)
		}
		if !ok {
			continue
		}
		c.logger.Debug("prompt answered", zap.String("element", el.Name))
		values[el.Name] = value
	}
	return values, nil
}

func (c *Collector) ask(ctx context.Context, el *element.Element) (any, bool, error) {
	q := QuestionFor(el)
	if (q.Style == StyleChoice || q.Style == StyleChoices) && len(q.Choices) == 0 {
		return nil, false, nil
	}

	answer, err := c.driver.Ask(ctx, q)
	if err != nil {
		return nil, false, err
	}

	switch q.Style {
	case StyleToggle:
		return answer.Checked, true, nil
	case StyleChoice:
		if !hasChoice(q.Choices, answer.Text) {
			return nil, false, nil
		}
		return answer.Text, true, nil
	case StyleChoices:
		selected := []string{}
		for _, value := range answer.Values {
			if hasChoice(q.Choices, value) {
				selected = append(selected, value)
			}
		}
		return selected, true, nil
	default:
		if strings.TrimSpace(answer.Text) == "" {
			return nil, false, nil
		}
		return answer.Text, true, nil
	}
}

// QuestionFor builds the question that collects the value of el.
func QuestionFor(el *element.Element) Question {
	q := Question{
		Name:    el.Name,
		Label:   displayLabel(el),
		Help:    el.Options.Description,
		Style:   StyleFor(el),
		Default: el.Value,
		Check:   validatorFor(el.Kind, el.HasAttribute("required")),
	}

	switch q.Style {
	case StyleSecret:
		q.Default = ""
	case StyleToggle:
		q.Checked = el.Value != "" && el.Value == el.CheckedValue
	case StyleChoice, StyleChoices:
		single := q.Style == StyleChoice
		preselected := false
		for _, option := range el.Options.ValueOptions {
			selected := option.Selected || (el.Value != "" && option.Value == el.Value)
			if single && preselected {
				selected = false
			}
			preselected = preselected || selected
			q.Choices = append(q.Choices, Choice{Label: option.Label, Value: option.Value, Selected: selected})
		}
	}
	return q
}

// ChooseOperation asks for one of ids, preselecting the first.
func ChooseOperation(ctx context.Context, driver Driver, ids []string) (string, error) {
	if len(ids) == 0 {
		return "", ErrNoChoices
	}
	if driver == nil {
		driver = NewSurveyDriver()
	}
	q := Question{Name: "operation", Label: "Operation", Style: StyleChoice, PageSize: 10}
	for i, id := range ids {
		q.Choices = append(q.Choices, Choice{Label: id, Value: id, Selected: i == 0})
	}
	answer, err := driver.Ask(ctx, q)
	if err != nil {
		return "", err
	}
	if !hasChoice(q.Choices, answer.Text) {
		return "", fmt.Errorf("prompt: unknown operation %q", answer.Text)
	}
	return answer.Text, nil
}

func hasChoice(choices []Choice, value string) bool {
	for _, choice := range choices {
		if choice.Value == value {
			return true
		}
	}
	return false
}

func validatorFor(kind element.Kind, required bool) func(string) error {
	return func(value string) error {
		value = strings.TrimSpace(value)
		if value == "" {
			if required {
				return ErrRequired
			}
			return nil
		}
		if kind == element.KindNumber {
			if _, err := strconv.ParseFloat(value, 64); err != nil {
				return fmt.Errorf("%q is not a number", value)
			}
		}
		if kind == element.KindEmail && !strings.Contains(value, "@") {
			return fmt.Errorf("%q is not an email address", value)
		}
		return nil
	}
}

func displayLabel(el *element.Element) string {
	label := el.Label
	if label == "" {
		label = el.Options.Label
	}
	if label == "" {
		label = el.Name
	}
	if el.HasAttribute("required") {
		label += " *"
	}
	return label
}
