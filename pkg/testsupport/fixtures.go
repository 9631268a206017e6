package testsupport

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dynform/pkg/controller"
	"github.com/goliatone/go-dynform/pkg/schema"
)

// FixedTime is the clock every fixture controller reports.
var FixedTime = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

// Controller returns a controller over the default catalog with a fixed clock
// and sequential record IDs ("rec-1", "rec-2", ...).
func Controller(t *testing.T, options ...controller.Option) *controller.Controller {
	t.Helper()
	seq := 0
	base := []controller.Option{
		controller.WithClock(func() time.Time { return FixedTime }),
		controller.WithIDGenerator(func() string {
			seq++
			return "rec-" + strconv.Itoa(seq)
		}),
	}
	return controller.New(schema.Default(), append(base, options...)...)
}

// SubmitUser fills and submits the "User Information" form.
func SubmitUser(t *testing.T, ctrl *controller.Controller, first, last, age string) controller.View {
	t.Helper()
	ctrl.SelectFormType("User Information")
	if _, err := ctrl.SetValues(map[string]string{"firstName": first, "lastName": last, "age": age}); err != nil {
		t.Fatalf("set values: %v", err)
	}
	view, ok := ctrl.Submit()
	if !ok {
		t.Fatalf("submit rejected: %v", view.Errors)
	}
	return view
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file as a string.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden rewrites path when UPDATE_GOLDENS is set and reports
// whether it did, in which case the caller should return early.
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CaptureOutput runs render against a buffer and returns both the returned
// string and what was written.
func CaptureOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()
	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out, buf.String()
}
