package render

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dynform/pkg/controller"
	"github.com/goliatone/go-dynform/pkg/schema"
)

func TestNewPage_AddsFormTypeHiddenFieldWhileEditing(t *testing.T) {
	ctrl := controller.New(schema.Default())
	view := ctrl.SelectFormType("Payment Information")

	page := NewPage(view, schema.Default(), WithTitle("Checkout"), WithHidden(Hidden("step", 2), Hidden(" ", "x")))

	if page.Title != "Checkout" {
		t.Fatalf("title not applied: %q", page.Title)
	}
	want := []HiddenField{{Name: FormTypeField, Value: "Payment Information"}, {Name: "step", Value: "2"}}
	if diff := cmp.Diff(want, page.Hidden); diff != "" {
		t.Fatalf("hidden fields mismatch (-want +got):\n%s", diff)
	}
}

func TestNewPage_IdleHasNoHiddenFields(t *testing.T) {
	page := NewPage(controller.New(schema.Default()).View(), schema.Default())
	if page.Title != DefaultTitle || page.Hidden != nil || page.Tables != nil {
		t.Fatalf("unexpected idle page %+v", page)
	}
}

type stubRenderer struct{ name string }

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(_ context.Context, page Page) ([]byte, error) {
	return []byte(page.Title), nil
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(stubRenderer{name: "b"})
	reg.MustRegister(stubRenderer{name: "a"})

	if err := reg.Register(stubRenderer{name: "a"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := reg.Register(stubRenderer{}); err == nil {
		t.Fatalf("expected missing name error")
	}
	if diff := cmp.Diff([]string{"a", "b"}, reg.List()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	out, contentType, err := reg.Render(context.Background(), "a", Page{Title: "hi"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "hi" || contentType != "text/plain" {
		t.Fatalf("unexpected output %q (%s)", out, contentType)
	}
	if _, _, err := reg.Render(context.Background(), "missing", Page{}); err == nil {
		t.Fatalf("expected missing renderer error")
	}
}
