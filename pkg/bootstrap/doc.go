// Package bootstrap renders form elements using Bootstrap 4 form layout
// conventions.
//
// FormElement assembles a single element: group wrapper, label, control
// classes, description and invalid-feedback block. The label, control,
// error, description and escaping concerns are delegated to collaborators
// injected through New; package viewhelper ships default implementations.
//
// FormRenderer builds on FormElement to render a whole element.Form and
// satisfies render.Renderer so it can be registered next to other layouts.
package bootstrap
