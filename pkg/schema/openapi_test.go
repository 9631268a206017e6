package schema

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const petstoreDocument = `{
  "openapi": "3.0.3",
  "info": {"title": "Pets", "version": "1.0.0"},
  "paths": {},
  "components": {
    "schemas": {
      "Pet": {
        "type": "object",
        "title": "Pet Registration",
        "required": ["name", "species"],
        "x-dynform-order": ["name", "species", "missing"],
        "properties": {
          "born": {"type": "string", "format": "date"},
          "name": {"type": "string", "title": "Pet Name", "description": "Call <b>name</b>"},
          "species": {"type": "string", "enum": ["cat", "dog"]},
          "weight": {"type": "number"},
          "pin": {"type": "string", "format": "password"}
        }
      },
      "Scalar": {"type": "string"}
    }
  }
}`

func TestFromOpenAPI_BuildsOrderedForms(t *testing.T) {
	catalog, err := FromOpenAPI(context.Background(), []byte(petstoreDocument))
	if err != nil {
		t.Fatalf("from openapi: %v", err)
	}

	if diff := cmp.Diff([]string{"Pet Registration"}, catalog.FormTypes()); diff != "" {
		t.Fatalf("form types mismatch (-want +got):\n%s", diff)
	}

	want := []FieldSchema{
		{Name: "name", Kind: KindText, Label: "Pet Name", Required: true, Help: "Call <b>name</b>"},
		{Name: "species", Kind: KindDropdown, Label: "Species", Required: true, Options: []string{"cat", "dog"}},
		{Name: "born", Kind: KindDate, Label: "Born"},
		{Name: "pin", Kind: KindPassword, Label: "Pin"},
		{Name: "weight", Kind: KindNumber, Label: "Weight"},
	}
	if diff := cmp.Diff(want, catalog.Lookup("Pet Registration")); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestFromOpenAPI_EmptyDocument(t *testing.T) {
	if _, err := FromOpenAPI(context.Background(), nil); err == nil {
		t.Fatalf("expected error for empty document")
	}
}
