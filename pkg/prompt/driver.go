package prompt

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-formbs/pkg/element"
)

// Style is the terminal widget used for a Question.
type Style int

const (
	// StyleLine reads one line of text.
	StyleLine Style = iota
	// StyleSecret reads a line without echo.
	StyleSecret
	// StyleText reads multiple lines.
	StyleText
	// StyleToggle asks yes or no.
	StyleToggle
	// StyleChoice picks one Choice.
	StyleChoice
	// StyleChoices picks any number of Choices.
	StyleChoices
)

// StyleFor maps an element kind to the widget that collects its value.
// Select elements with the multiple attribute use StyleChoices.
func StyleFor(el *element.Element) Style {
	switch el.Kind {
	case element.KindPassword:
		return StyleSecret
	case element.KindTextarea:
		return StyleText
	case element.KindCheckbox:
		return StyleToggle
	case element.KindRadio:
		return StyleChoice
	case element.KindMultiCheckbox:
		return StyleChoices
	case element.KindSelect:
		if el.HasAttribute("multiple") {
			return StyleChoices
		}
		return StyleChoice
	default:
		return StyleLine
	}
}

// Choice is one selectable value of a Question.
type Choice struct {
	Label    string
	Value    string
	Selected bool
}

// Question is a prompt for one form element.
type Question struct {
	Name     string
	Label    string
	Help     string
	Style    Style
	Default  string
	Checked  bool
	Choices  []Choice
	PageSize int
	// Check validates line, secret and text answers.
	Check func(string) error
}

// Answer carries the reply to a Question. Text is set for line, secret, text
// and single choice questions, Checked for toggles and Values for multiple
// choices. Choice answers hold Choice values, not labels.
type Answer struct {
	Text    string
	Checked bool
	Values  []string
}

// Driver asks questions on a terminal.
type Driver interface {
	Ask(ctx context.Context, q Question) (Answer, error)
}

// DriverFunc adapts a function to Driver.
type DriverFunc func(ctx context.Context, q Question) (Answer, error)

// Ask calls f.
func (f DriverFunc) Ask(ctx context.Context, q Question) (Answer, error) {
	return f(ctx, q)
}

type surveyDriver struct{}

// NewSurveyDriver returns a Driver backed by survey terminal prompts.
func NewSurveyDriver() Driver {
	return surveyDriver{}
}

func (surveyDriver) Ask(ctx context.Context, q Question) (Answer, error) {
	if err := ctx.Err(); err != nil {
		return Answer{}, err
	}

	switch q.Style {
	case StyleToggle:
		var out bool
		err := survey.AskOne(&survey.Confirm{Message: q.Label, Help: q.Help, Default: q.Checked}, &out)
		return Answer{Checked: out}, surveyErr(err)
	case StyleChoice:
		prompt := &survey.Select{Message: q.Label, Help: q.Help, Options: labels(q.Choices), PageSize: q.PageSize}
		if selected := selectedIndices(q.Choices); len(selected) > 0 {
			prompt.Default = selected[0]
		}
		var out survey.OptionAnswer
		if err := survey.AskOne(prompt, &out); err != nil {
			return Answer{}, surveyErr(err)
		}
		return Answer{Text: choiceValue(q.Choices, out.Index)}, nil
	case StyleChoices:
		prompt := &survey.MultiSelect{Message: q.Label, Help: q.Help, Options: labels(q.Choices), PageSize: q.PageSize}
		if selected := selectedIndices(q.Choices); len(selected) > 0 {
			prompt.Default = selected
		}
		var out []survey.OptionAnswer
		if err := survey.AskOne(prompt, &out); err != nil {
			return Answer{}, surveyErr(err)
		}
		values := make([]string, 0, len(out))
		for _, picked := range out {
			values = append(values, choiceValue(q.Choices, picked.Index))
		}
		return Answer{Values: values}, nil
	}

	var prompt survey.Prompt
	switch q.Style {
	case StyleSecret:
		prompt = &survey.Password{Message: q.Label, Help: q.Help}
	case StyleText:
		prompt = &survey.Multiline{Message: q.Label, Help: q.Help, Default: q.Default}
	default:
		prompt = &survey.Input{Message: q.Label, Help: q.Help, Default: q.Default}
	}
	var out string
	var opts []survey.AskOpt
	if q.Check != nil {
		opts = append(opts, survey.WithValidator(func(ans any) error {
			text, _ := ans.(string)
			return q.Check(text)
		}))
	}
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return Answer{}, surveyErr(err)
	}
	return Answer{Text: out}, nil
}

func surveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

func labels(choices []Choice) []string {
	out := make([]string, 0, len(choices))
	for _, choice := range choices {
		label := choice.Label
		if label == "" {
			label = choice.Value
		}
		out = append(out, label)
	}
	return out
}

func selectedIndices(choices []Choice) []int {
	var out []int
	for i, choice := range choices {
		if choice.Selected {
			out = append(out, i)
		}
	}
	return out
}

func choiceValue(choices []Choice, idx int) string {
	if idx < 0 || idx >= len(choices) {
		return ""
	}
	return choices[idx].Value
}
