package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbs/pkg/element"
	"github.com/goliatone/go-formbs/pkg/render"
)

func TestMergeHiddenFieldsAndElements(t *testing.T) {
	merged := render.MergeHiddenFields(map[string]string{" existing ": "keep", "": "ignored"},
		render.CSRFToken("_csrf", "token123"),
		render.VersionField("version", 4),
		render.Hidden("  ", "skip"),
	)

	want := map[string]string{
		"existing": "keep",
		"_csrf":    "token123",
		"version":  "4",
	}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("merged hidden fields mismatch (-want +got):\n%s", diff)
	}

	elements := render.HiddenElements(merged)
	names := make([]string, 0, len(elements))
	for _, el := range elements {
		if el.Kind != element.KindHidden {
			t.Fatalf("expected hidden kind for %s", el.Name)
		}
		names = append(names, el.Name)
	}
	if diff := cmp.Diff([]string{"_csrf", "existing", "version"}, names); diff != "" {
		t.Fatalf("hidden element order mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyValues(t *testing.T) {
	form := element.Form{Elements: []*element.Element{
		element.New("name", element.KindText),
		element.New("terms", element.KindCheckbox),
		element.New("color", element.KindRadio, element.WithOptions(element.Options{
			ValueOptions: []element.ValueOption{{Label: "Red", Value: "red"}, {Label: "Blue", Value: "blue"}},
		})),
		element.New("tags", element.KindMultiCheckbox, element.WithOptions(element.Options{
			ValueOptions: []element.ValueOption{{Label: "A", Value: "a"}, {Label: "B", Value: "b"}},
		})),
	}}

	render.ApplyValues(&form, map[string]any{
		"name":  "Ada",
		"terms": true,
		"color": "blue",
		"tags":  []any{"a", "b"},
	})

	if form.Elements[0].Value != "Ada" {
		t.Fatalf("expected text value, got %q", form.Elements[0].Value)
	}
	if form.Elements[1].Value != "1" {
		t.Fatalf("expected checked value, got %q", form.Elements[1].Value)
	}
	color := form.Elements[2].Options.ValueOptions
	if color[0].Selected || !color[1].Selected {
		t.Fatalf("unexpected radio selection %+v", color)
	}
	tags := form.Elements[3].Options.ValueOptions
	if !tags[0].Selected || !tags[1].Selected {
		t.Fatalf("unexpected multi selection %+v", tags)
	}
}
