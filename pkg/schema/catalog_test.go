package schema

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewCatalog_PreservesOrderAndDefaultsLabels(t *testing.T) {
	catalog, err := NewCatalog(
		Form{Type: "Profile", Fields: []FieldSchema{
			{Name: "firstName", Required: true},
			{Name: "age", Kind: "Number", Label: "Age"},
		}},
		Form{Type: "Contact", Fields: []FieldSchema{{Name: "email"}}},
	)
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}

	if diff := cmp.Diff([]string{"Profile", "Contact"}, catalog.FormTypes()); diff != "" {
		t.Fatalf("form types mismatch (-want +got):\n%s", diff)
	}

	want := []FieldSchema{
		{Name: "firstName", Kind: KindText, Label: "First Name", Required: true},
		{Name: "age", Kind: KindNumber, Label: "Age"},
	}
	if diff := cmp.Diff(want, catalog.Lookup("Profile")); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalog_LookupUnknownIsEmpty(t *testing.T) {
	catalog := MustCatalog(Form{Type: "Profile", Fields: []FieldSchema{{Name: "name"}}})

	got := catalog.Lookup("Missing")
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
	if catalog.Has("Missing") {
		t.Fatalf("expected Has to report false for unknown type")
	}
}

func TestCatalog_LookupReturnsCopies(t *testing.T) {
	catalog := MustCatalog(Form{Type: "Address", Fields: []FieldSchema{
		{Name: "state", Kind: KindDropdown, Options: []string{"Goa", "Assam"}},
	}})

	fields := catalog.Lookup("Address")
	fields[0].Label = "mutated"
	fields[0].Options[0] = "mutated"

	again := catalog.Lookup("Address")
	if again[0].Label != "State" || again[0].Options[0] != "Goa" {
		t.Fatalf("catalog mutated through lookup result: %#v", again[0])
	}
}

func TestNewCatalog_Rejects(t *testing.T) {
	cases := []struct {
		name  string
		forms []Form
	}{
		{name: "empty type", forms: []Form{{Type: "  "}}},
		{name: "duplicate type", forms: []Form{{Type: "A"}, {Type: "A"}}},
		{name: "empty field name", forms: []Form{{Type: "A", Fields: []FieldSchema{{Name: ""}}}}},
		{name: "duplicate field", forms: []Form{{Type: "A", Fields: []FieldSchema{{Name: "x"}, {Name: "x"}}}}},
		{name: "unknown kind", forms: []Form{{Type: "A", Fields: []FieldSchema{{Name: "x", Kind: "checkbox"}}}}},
		{name: "dropdown without options", forms: []Form{{Type: "A", Fields: []FieldSchema{{Name: "x", Kind: KindDropdown}}}}},
		{name: "options on text", forms: []Form{{Type: "A", Fields: []FieldSchema{{Name: "x", Options: []string{"a"}}}}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCatalog(tc.forms...)
			if !errors.Is(err, ErrInvalidCatalog) {
				t.Fatalf("expected ErrInvalidCatalog, got %v", err)
			}
		})
	}
}

func TestMerge_DetectsDuplicates(t *testing.T) {
	a := MustCatalog(Form{Type: "A"})
	b := MustCatalog(Form{Type: "B"})

	merged, err := Merge(a, b)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if merged.Len() != 2 {
		t.Fatalf("expected 2 forms, got %d", merged.Len())
	}

	if _, err := Merge(a, a); !errors.Is(err, ErrInvalidCatalog) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestDefault_MatchesBuiltInForms(t *testing.T) {
	catalog := Default()

	want := []string{"User Information", "Address Information", "Payment Information"}
	if diff := cmp.Diff(want, catalog.FormTypes()); diff != "" {
		t.Fatalf("form types mismatch (-want +got):\n%s", diff)
	}

	address := catalog.Lookup("Address Information")
	if diff := cmp.Diff([]string{"street", "city", "state", "zipCode"}, FieldNames(address)); diff != "" {
		t.Fatalf("address fields mismatch (-want +got):\n%s", diff)
	}
	state := address[2]
	if state.Kind != KindDropdown || len(state.Options) != 28 {
		t.Fatalf("expected state dropdown with 28 options, got %s with %d", state.Kind, len(state.Options))
	}
	if address[3].Required {
		t.Fatalf("zip code should be optional")
	}

	payment := catalog.Lookup("Payment Information")
	kinds := make([]FieldKind, len(payment))
	for i, field := range payment {
		kinds[i] = field.Kind
	}
	if diff := cmp.Diff([]FieldKind{KindText, KindDate, KindPassword, KindText}, kinds); diff != "" {
		t.Fatalf("payment kinds mismatch (-want +got):\n%s", diff)
	}
}
