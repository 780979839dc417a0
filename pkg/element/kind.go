package element

import "strings"

// Kind identifies the control variant an element renders as. The set is
// closed; renderers branch on the capability predicates below rather than on
// individual kinds where possible.
type Kind int

const (
	KindText Kind = iota
	KindEmail
	KindPassword
	KindNumber
	KindTextarea
	KindSelect
	KindCheckbox
	KindMultiCheckbox
	KindRadio
	KindHidden
	KindButton
	KindSubmit
)

var kindNames = map[Kind]string{
	KindText:          "text",
	KindEmail:         "email",
	KindPassword:      "password",
	KindNumber:        "number",
	KindTextarea:      "textarea",
	KindSelect:        "select",
	KindCheckbox:      "checkbox",
	KindMultiCheckbox: "multi_checkbox",
	KindRadio:         "radio",
	KindHidden:        "hidden",
	KindButton:        "button",
	KindSubmit:        "submit",
}

// String returns the canonical kind name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindText]
}

// ParseKind resolves a kind by name. Unknown names fall back to KindText.
func ParseKind(name string) Kind {
	kind, _ := LookupKind(name)
	return kind
}

// LookupKind resolves a kind by name and reports whether the name is known.
// Names are case insensitive and "-" is accepted for "_".
func LookupKind(name string) (Kind, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	for kind, candidate := range kindNames {
		if candidate == normalized {
			return kind, true
		}
	}
	switch normalized {
	case "multicheckbox", "checkboxes":
		return KindMultiCheckbox, true
	case "boolean", "bool":
		return KindCheckbox, true
	}
	return KindText, false
}

// Checkable reports whether the control is a Bootstrap form-check input.
func (k Kind) Checkable() bool {
	switch k {
	case KindCheckbox, KindMultiCheckbox, KindRadio:
		return true
	default:
		return false
	}
}

// Bare reports whether the control renders without label or wrappers.
func (k Kind) Bare() bool {
	switch k {
	case KindHidden, KindButton, KindSubmit:
		return true
	default:
		return false
	}
}

// WrapsOptionLabels reports whether <label> tags inside the rendered control
// are rewritten into form-check blocks. Radios and multi-checkboxes are
// checkbox specialisations, so they share the rewrite.
func (k Kind) WrapsOptionLabels() bool {
	return k.Checkable()
}

// InputType returns the HTML input type attribute for input-backed kinds.
func (k Kind) InputType() string {
	switch k {
	case KindEmail:
		return "email"
	case KindPassword:
		return "password"
	case KindNumber:
		return "number"
	case KindCheckbox, KindMultiCheckbox:
		return "checkbox"
	case KindRadio:
		return "radio"
	case KindHidden:
		return "hidden"
	case KindButton:
		return "button"
	case KindSubmit:
		return "submit"
	default:
		return "text"
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name, see ParseKind.
func (k *Kind) UnmarshalText(text []byte) error {
	*k = ParseKind(string(text))
	return nil
}
