package progress

import (
	"testing"

	"github.com/goliatone/go-dynform/pkg/schema"
)

func fields(names ...string) []schema.FieldSchema {
	out := make([]schema.FieldSchema, len(names))
	for i, name := range names {
		out[i] = schema.FieldSchema{Name: name}
	}
	return out
}

func TestCalculate(t *testing.T) {
	cases := []struct {
		name   string
		fields []schema.FieldSchema
		values map[string]string
		want   float64
	}{
		{name: "no fields", fields: nil, values: map[string]string{"a": "x"}, want: 0},
		{name: "nothing filled", fields: fields("a", "b"), values: nil, want: 0},
		{name: "half", fields: fields("a", "b"), values: map[string]string{"a": "x"}, want: 50},
		{name: "empty string ignored", fields: fields("a", "b"), values: map[string]string{"a": "x", "b": ""}, want: 50},
		{name: "whitespace counts as filled", fields: fields("a", "b"), values: map[string]string{"a": "  "}, want: 50},
		{name: "optional counts", fields: fields("a", "b", "c", "d"), values: map[string]string{"d": "x"}, want: 25},
		{name: "unknown keys ignored", fields: fields("a"), values: map[string]string{"z": "x"}, want: 0},
		{name: "complete", fields: fields("firstName", "age"), values: map[string]string{"firstName": "Sam", "age": "30"}, want: 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Calculate(tc.fields, tc.values); got != tc.want {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
		})
	}
}

func TestCalculate_MonotonicAsValuesFill(t *testing.T) {
	schemaFields := fields("a", "b", "c")
	values := map[string]string{}
	last := Calculate(schemaFields, values)
	for _, name := range []string{"a", "b", "c"} {
		values[name] = "x"
		next := Calculate(schemaFields, values)
		if next < last {
			t.Fatalf("progress decreased from %v to %v after filling %s", last, next, name)
		}
		last = next
	}
	if last != 100 {
		t.Fatalf("expected 100 once every field is filled, got %v", last)
	}
}

func TestRounded(t *testing.T) {
	third := Calculate(fields("a", "b", "c"), map[string]string{"a": "x"})
	if got := Rounded(third); got != 33 {
		t.Fatalf("want 33, got %d", got)
	}
	if got := Rounded(66.5); got != 67 {
		t.Fatalf("want 67, got %d", got)
	}
}
