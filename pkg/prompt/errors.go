package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrNoChoices is returned when a selection has nothing to choose from.
	ErrNoChoices = errors.New("prompt: nothing to choose from")
	// ErrRequired is returned by the validator of required fields.
	ErrRequired = errors.New("value is required")
)
