package render

// RenderOptions describe per-request data that form renderers use to
// customise their output without mutating the caller's form.
type RenderOptions struct {
	// Method overrides the HTTP method declared by the form. Verbs browsers
	// cannot submit (PUT/PATCH/DELETE) are sent as POST plus a hidden
	// _method input.
	Method string
	// Values pre-populates controls keyed by element name.
	Values map[string]any
	// Errors carries server-side validation feedback keyed by field path.
	// Paths are normalised with MapErrors; unknown paths surface as
	// form-level errors.
	Errors map[string][]string
	// HiddenFields are emitted as hidden inputs ahead of the visible
	// elements (CSRF tokens, versions).
	HiddenFields map[string]string

	Locale     string
	Translator Translator
	OnMissing  MissingTranslationHandler
}
