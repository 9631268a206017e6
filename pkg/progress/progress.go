// Package progress derives the completion percentage of a form.
package progress

import (
	"math"

	"github.com/goliatone/go-dynform/pkg/schema"
)

// Calculate returns the share of fields holding a non-empty value, scaled to
// [0, 100]. Every field counts, required or not. An empty field list yields 0.
func Calculate(fields []schema.FieldSchema, values map[string]string) float64 {
	if len(fields) == 0 {
		return 0
	}
	filled := 0
	for _, field := range fields {
		if values[field.Name] != "" {
			filled++
		}
	}
	return float64(filled) / float64(len(fields)) * 100
}

// Rounded converts a percentage into the whole number shown next to a
// progress bar, rounding half away from zero.
func Rounded(percent float64) int {
	return int(math.Round(percent))
}
