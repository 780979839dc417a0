// Package template defines the template engine contract used by the default
// view helpers to render control markup, plus a pongo2-backed adapter in the
// gotemplate subpackage.
package template
