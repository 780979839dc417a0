package bootstrap

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-formbs/pkg/element"
	"github.com/goliatone/go-formbs/pkg/render"
)

// LabelHelper renders label tags and exposes the translation setup used for
// label text.
type LabelHelper interface {
	OpenTag(attrs ...element.Attr) string
	CloseTag() string
	Translator() render.Translator
	TextDomain() string
	Locale() string
}

// ControlHelper renders the control body. RenderCompanion returns the hidden
// input carrying a checkbox's unchecked value ("" when not applicable).
type ControlHelper interface {
	Render(el *element.Element) (string, error)
	RenderCompanion(el *element.Element) (string, error)
}

// ErrorHelper renders validation messages.
type ErrorHelper interface {
	Render(el *element.Element) (string, error)
}

// DescriptionHelper renders help text.
type DescriptionHelper interface {
	Render(el *element.Element) (string, error)
}

// Escaper escapes label text.
type Escaper interface {
	Escape(value string) string
}

// Collaborators bundles the helpers FormElement delegates to.
type Collaborators struct {
	Label       LabelHelper
	Control     ControlHelper
	Errors      ErrorHelper
	Description DescriptionHelper
	Escaper     Escaper
}

var (
	// ErrNilElement is returned when rendering a nil element.
	ErrNilElement = errors.New("bootstrap: element is required")
	// ErrMissingCollaborator is returned by New when a helper is nil.
	ErrMissingCollaborator = errors.New("bootstrap: collaborator is required")
	// ErrInvalidWrapper is returned for wrapper formats that do not hold
	// exactly three %s verbs.
	ErrInvalidWrapper = errors.New("bootstrap: wrapper must contain exactly three %s verbs")
)

func (c Collaborators) validate() error {
	switch {
	case c.Label == nil:
		return fmt.Errorf("%w: label helper", ErrMissingCollaborator)
	case c.Control == nil:
		return fmt.Errorf("%w: control helper", ErrMissingCollaborator)
	case c.Errors == nil:
		return fmt.Errorf("%w: error helper", ErrMissingCollaborator)
	case c.Description == nil:
		return fmt.Errorf("%w: description helper", ErrMissingCollaborator)
	case c.Escaper == nil:
		return fmt.Errorf("%w: escaper", ErrMissingCollaborator)
	}
	return nil
}
