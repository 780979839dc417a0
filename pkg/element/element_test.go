package element_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbs/pkg/element"
)

func TestParseKind(t *testing.T) {
	cases := map[string]element.Kind{
		"checkbox":       element.KindCheckbox,
		"Multi-Checkbox": element.KindMultiCheckbox,
		"boolean":        element.KindCheckbox,
		" radio ":        element.KindRadio,
		"submit":         element.KindSubmit,
		"unknown":        element.KindText,
		"":               element.KindText,
	}
	for input, want := range cases {
		if got := element.ParseKind(input); got != want {
			t.Errorf("ParseKind(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestKindCapabilities(t *testing.T) {
	for _, kind := range []element.Kind{element.KindCheckbox, element.KindRadio, element.KindMultiCheckbox} {
		if !kind.Checkable() || !kind.WrapsOptionLabels() {
			t.Fatalf("expected %s to be checkable", kind)
		}
		if kind.Bare() {
			t.Fatalf("expected %s not to be bare", kind)
		}
	}
	for _, kind := range []element.Kind{element.KindHidden, element.KindButton, element.KindSubmit} {
		if !kind.Bare() {
			t.Fatalf("expected %s to be bare", kind)
		}
	}
	if element.KindText.Checkable() || element.KindText.Bare() {
		t.Fatalf("text kind should have no capabilities")
	}
}

func TestKindJSONRoundTripUsesNames(t *testing.T) {
	payload, err := json.Marshal(struct {
		Kind element.Kind `json:"kind"`
	}{Kind: element.KindRadio})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(payload) != `{"kind":"radio"}` {
		t.Fatalf("unexpected payload %s", payload)
	}
}

func TestElementID(t *testing.T) {
	el := element.New("email", element.KindEmail)
	if got := el.ID(); got != "email" {
		t.Fatalf("expected name fallback, got %q", got)
	}
	el.SetAttribute("id", "user-email")
	if got := el.ID(); got != "user-email" {
		t.Fatalf("expected id attribute, got %q", got)
	}
}

func TestNewCheckboxDefaults(t *testing.T) {
	el := element.New("terms", element.KindCheckbox)
	if !el.UseHiddenElement || el.CheckedValue != "1" || el.UncheckedValue != "0" {
		t.Fatalf("unexpected checkbox defaults: %+v", el)
	}
	el = element.New("terms", element.KindCheckbox, element.WithHiddenElement(false))
	if el.UseHiddenElement {
		t.Fatalf("expected option to disable hidden element")
	}
}

func TestCloneIsDeep(t *testing.T) {
	el := element.New("name", element.KindText,
		element.WithAttribute("class", "wide"),
		element.WithMessages("required"),
	)
	clone := el.Clone()
	clone.SetAttribute("class", "narrow")
	clone.Messages[0] = "changed"

	if el.Attribute("class") != "wide" {
		t.Fatalf("clone mutated attributes")
	}
	if diff := cmp.Diff([]string{"required"}, el.Messages); diff != "" {
		t.Fatalf("clone mutated messages (-want +got):\n%s", diff)
	}
}

func TestFormLookup(t *testing.T) {
	form := element.Form{Elements: []*element.Element{
		element.New("a", element.KindText),
		nil,
		element.New("b", element.KindText),
	}}
	if el, ok := form.Lookup("b"); !ok || el.Name != "b" {
		t.Fatalf("expected lookup to find b")
	}
	if _, ok := form.Lookup("missing"); ok {
		t.Fatalf("expected lookup miss")
	}
}

func TestLookupKind(t *testing.T) {
	if kind, ok := element.LookupKind("Multi-Checkbox"); !ok || kind != element.KindMultiCheckbox {
		t.Fatalf("LookupKind(Multi-Checkbox) = %v, %v", kind, ok)
	}
	if kind, ok := element.LookupKind("slider"); ok || kind != element.KindText {
		t.Fatalf("LookupKind(slider) = %v, %v; want text, false", kind, ok)
	}
}
