package validation

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dynform/pkg/schema"
)

func TestValidate_ExampleFromUserForm(t *testing.T) {
	fields := []schema.FieldSchema{
		{Name: "firstName", Label: "First Name", Required: true},
		{Name: "age", Label: "Age", Required: true},
	}

	got := Validate(fields, map[string]string{"firstName": "Sam"})
	if diff := cmp.Diff(Errors{"age": "Age is required."}, got); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}

	got = Validate(fields, map[string]string{"firstName": "Sam", "age": "30"})
	if !got.Empty() {
		t.Fatalf("expected no errors, got %v", got)
	}
}

func TestValidate_OnlyRequiredEmptyFields(t *testing.T) {
	fields := []schema.FieldSchema{
		{Name: "street", Label: "Street", Required: true},
		{Name: "city", Label: "City", Required: true},
		{Name: "state", Label: "State", Required: true},
		{Name: "zipCode", Label: "Zip Code"},
		{Name: "unlabelled", Required: true},
	}
	values := map[string]string{
		"street":  "   ",
		"city":    "Pune",
		"zipCode": "",
	}

	want := Errors{
		"street":     "Street is required.",
		"state":      "State is required.",
		"unlabelled": "Unlabelled is required.",
	}
	if diff := cmp.Diff(want, Validate(fields, values)); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_NoFormatChecks(t *testing.T) {
	fields := []schema.FieldSchema{
		{Name: "cardNumber", Label: "Card Number", Required: true},
		{Name: "expiryDate", Kind: schema.KindDate, Label: "Expiry Date", Required: true},
	}
	values := map[string]string{"cardNumber": "not-a-card", "expiryDate": "someday"}

	if got := Validate(fields, values); !got.Empty() {
		t.Fatalf("expected content to be accepted as-is, got %v", got)
	}
}

func TestValidate_EmptyFields(t *testing.T) {
	if got := Validate(nil, map[string]string{"x": ""}); !got.Empty() {
		t.Fatalf("expected no errors for empty schema, got %v", got)
	}
}

func TestFilled(t *testing.T) {
	cases := map[string]bool{
		"":      false,
		"   ":   false,
		"\t\n":  false,
		"x":     true,
		" Sam ": true,
	}
	for value, want := range cases {
		if got := Filled(value); got != want {
			t.Errorf("Filled(%q) = %v, want %v", value, got, want)
		}
	}
}

func TestErrors_FieldsAndError(t *testing.T) {
	errs := Errors{"b": "B is required.", "a": "A is required."}

	if diff := cmp.Diff([]string{"a", "b"}, errs.Fields()); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if got := errs.Error(); got != "A is required. B is required." {
		t.Fatalf("unexpected error text %q", got)
	}

	clone := errs.Clone()
	clone["a"] = "changed"
	if errs["a"] != "A is required." {
		t.Fatalf("clone shares storage with original")
	}
}
