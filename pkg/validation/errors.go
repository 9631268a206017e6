package validation

import (
	"sort"
	"strings"
)

// Errors maps field names to a user-facing message. It is data, not a
// failure: an empty mapping means the values are valid.
type Errors map[string]string

// Empty reports whether no field failed validation.
func (e Errors) Empty() bool {
	return len(e) == 0
}

// Fields returns the failing field names sorted for deterministic output.
func (e Errors) Fields() []string {
	if len(e) == 0 {
		return nil
	}
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy; nil stays nil.
func (e Errors) Clone() Errors {
	if e == nil {
		return nil
	}
	out := make(Errors, len(e))
	for name, message := range e {
		out[name] = message
	}
	return out
}

// Error joins the messages so Errors can travel as an error where a caller
// needs one.
func (e Errors) Error() string {
	names := e.Fields()
	messages := make([]string, 0, len(names))
	for _, name := range names {
		messages = append(messages, e[name])
	}
	return strings.Join(messages, " ")
}
