package formbs

import (
	"io/fs"

	"github.com/goliatone/go-formbs/pkg/viewhelper"
)

// EmbeddedTemplates exposes the built-in control templates so callers can
// copy or extend them and pass the result through WithControlOptions.
func EmbeddedTemplates() fs.FS {
	return viewhelper.TemplatesFS()
}
