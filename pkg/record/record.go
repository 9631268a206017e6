// Package record keeps submitted form snapshots in submission order.
package record

import (
	"time"
)

// Record is a snapshot of submitted values. Values never alias live form
// state; Clone is used on every boundary.
type Record struct {
	ID          string            `json:"id"`
	FormType    string            `json:"formType"`
	Values      map[string]string `json:"values"`
	SubmittedAt time.Time         `json:"submittedAt"`
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	out := r
	out.Values = CloneValues(r.Values)
	return out
}

// CloneValues copies a value mapping. The result is never nil.
func CloneValues(values map[string]string) map[string]string {
	out := make(map[string]string, len(values))
	for name, value := range values {
		out[name] = value
	}
	return out
}
