package bootstrap

import "fmt"

const (
	// DefaultGroupWrapper receives the row modifier, the element id and the
	// assembled inner markup.
	DefaultGroupWrapper = `<div class="form-group %s" id="control-group-%s">%s</div>`
	// DefaultControlWrapper receives the control, description and error
	// markup.
	DefaultControlWrapper = `<div class="col-sm-10">%s%s%s</div>`
	// InlineControlWrapper is used for elements with the Inline option.
	InlineControlWrapper = `%s%s%s`
	// DefaultLabelClass is applied to labels outside checkbox wrapping.
	DefaultLabelClass = "form-control-label col-sm-2"

	rowModifier     = "row"
	invalidFeedback = `<div class="invalid-feedback">%s</div>`
)

// ValidateWrapper checks that format holds exactly three %s verbs and no
// other verbs (a literal percent sign is written as %%).
func ValidateWrapper(format string) error {
	verbs := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		if i+1 >= len(format) {
			return fmt.Errorf("%w: trailing %%", ErrInvalidWrapper)
		}
		switch format[i+1] {
		case '%':
		case 's':
			verbs++
		default:
			return fmt.Errorf("%w: unsupported verb %%%c", ErrInvalidWrapper, format[i+1])
		}
		i++
	}
	if verbs != 3 {
		return fmt.Errorf("%w: found %d", ErrInvalidWrapper, verbs)
	}
	return nil
}
