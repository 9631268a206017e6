package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dynform/pkg/record"
	"github.com/goliatone/go-dynform/pkg/schema"
)

func TestRecordTables_GroupsByFormTypeWithSchemaColumns(t *testing.T) {
	records := []record.Record{
		{ID: "a", FormType: "User Information", Values: map[string]string{"age": "30", "firstName": "Sam", "lastName": "Lee"}},
		{ID: "b", FormType: "Address Information", Values: map[string]string{"city": "Oslo"}},
		{ID: "c", FormType: "User Information", Values: map[string]string{"firstName": "Alex"}},
	}

	got := RecordTables(records, schema.Default())
	want := []RecordTable{
		{
			FormType: "User Information",
			Columns: []Column{
				{Name: "firstName", Label: "First Name"},
				{Name: "lastName", Label: "Last Name"},
				{Name: "age", Label: "Age"},
			},
			Rows: []Row{
				{Index: 0, ID: "a", FormType: "User Information", Cells: []string{"Sam", "Lee", "30"}},
				{Index: 2, ID: "c", FormType: "User Information", Cells: []string{"Alex", "", ""}},
			},
		},
		{
			FormType: "Address Information",
			Columns: []Column{
				{Name: "street", Label: "Street"},
				{Name: "city", Label: "City"},
				{Name: "state", Label: "State"},
				{Name: "zipCode", Label: "Zip Code"},
			},
			Rows: []Row{
				{Index: 1, ID: "b", FormType: "Address Information", Cells: []string{"", "Oslo", "", ""}},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tables mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordTables_UnknownFormTypeFallsBackToValueKeys(t *testing.T) {
	records := []record.Record{
		{FormType: "Legacy", Values: map[string]string{"zeta": "1", "alpha_code": "2"}},
	}

	got := RecordTables(records, nil)
	want := []Column{{Name: "alpha_code", Label: "Alpha Code"}, {Name: "zeta", Label: "Zeta"}}
	if diff := cmp.Diff(want, got[0].Columns); diff != "" {
		t.Fatalf("columns mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"2", "1"}, got[0].Rows[0].Cells); diff != "" {
		t.Fatalf("cells mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordTables_Empty(t *testing.T) {
	if got := RecordTables(nil, schema.Default()); got != nil {
		t.Fatalf("expected nil tables, got %+v", got)
	}
}
