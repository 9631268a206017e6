package widgets

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dynform/pkg/schema"
)

func TestForKind_CoversEveryKind(t *testing.T) {
	want := map[schema.FieldKind]Widget{
		schema.KindText:     {Name: WidgetText, InputType: "text"},
		schema.KindNumber:   {Name: WidgetNumber, InputType: "number"},
		schema.KindDate:     {Name: WidgetDate, InputType: "date"},
		schema.KindPassword: {Name: WidgetPassword, InputType: "password", Masked: true},
		schema.KindDropdown: {Name: WidgetSelect, Choice: true},
	}
	for _, kind := range schema.Kinds() {
		got, err := ForKind(kind)
		if err != nil {
			t.Fatalf("kind %s: %v", kind, err)
		}
		if diff := cmp.Diff(want[kind], got); diff != "" {
			t.Fatalf("kind %s mismatch (-want +got):\n%s", kind, diff)
		}
	}
}

func TestForKind_RejectsUnknownKind(t *testing.T) {
	if _, err := ForKind("checkbox"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestRegistry_ResolvesBuiltins(t *testing.T) {
	reg := NewRegistry()
	for _, form := range schema.Default().Forms() {
		for _, field := range form.Fields {
			got, ok := reg.Resolve(field)
			if !ok {
				t.Fatalf("no widget for %s.%s", form.Type, field.Name)
			}
			want, _ := ForKind(field.Kind)
			if got != want {
				t.Fatalf("%s: want %+v, got %+v", field.Name, want, got)
			}
		}
	}
}

func TestRegistry_PriorityOverride(t *testing.T) {
	reg := NewRegistry()
	textarea := Widget{Name: "textarea"}
	reg.Register(textarea, 10, func(field schema.FieldSchema) bool {
		return field.Kind == schema.KindText && strings.Contains(strings.ToLower(field.Name), "notes")
	})

	got, _ := reg.Resolve(schema.FieldSchema{Name: "deliveryNotes", Kind: schema.KindText})
	if got != textarea {
		t.Fatalf("expected override, got %+v", got)
	}
	got, _ = reg.Resolve(schema.FieldSchema{Name: "firstName", Kind: schema.KindText})
	if got.Name != WidgetText {
		t.Fatalf("expected builtin text widget, got %+v", got)
	}
}

func TestRegistry_TiesUseRegistrationOrder(t *testing.T) {
	reg := &Registry{}
	always := func(schema.FieldSchema) bool { return true }
	reg.Register(Widget{Name: "first"}, 5, always)
	reg.Register(Widget{Name: "second"}, 5, always)
	reg.Register(Widget{}, 50, always)

	got, ok := reg.Resolve(schema.FieldSchema{Name: "x"})
	if !ok || got.Name != "first" {
		t.Fatalf("expected first registration to win, got %+v", got)
	}

	empty := &Registry{}
	if _, ok := empty.Resolve(schema.FieldSchema{}); ok {
		t.Fatalf("empty registry must not resolve")
	}
}

func TestPlaceholder(t *testing.T) {
	if got := Placeholder(schema.FieldSchema{Name: "cardType", Label: "Card Type"}); got != "Select Card Type" {
		t.Fatalf("unexpected placeholder %q", got)
	}
}
