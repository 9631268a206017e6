package widgets

import (
	"sort"
	"sync"

	"github.com/goliatone/go-dynform/pkg/schema"
)

// BuiltinPriority is the priority kind-based widgets are registered with.
// Overrides registered above it win.
const BuiltinPriority = 0

// Matcher decides whether a widget should handle the supplied field.
type Matcher func(field schema.FieldSchema) bool

type rule struct {
	widget   Widget
	priority int
	match    Matcher
	order    int
}

// Registry picks a Widget per field. Higher priority wins; ties fall back to
// registration order.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry returns a registry with one rule per FieldKind.
func NewRegistry() *Registry {
	reg := &Registry{}
	for _, kind := range schema.Kinds() {
		widget, err := ForKind(kind)
		if err != nil {
			panic(err)
		}
		kind := kind
		reg.Register(widget, BuiltinPriority, func(field schema.FieldSchema) bool {
			return field.Kind == kind
		})
	}
	return reg
}

// Register adds a widget rule. Rules without a name or matcher are ignored.
func (r *Registry) Register(widget Widget, priority int, matcher Matcher) {
	if r == nil || matcher == nil || widget.Name == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = append(r.rules, rule{
		widget:   widget,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget for field.
func (r *Registry) Resolve(field schema.FieldSchema) (Widget, bool) {
	if r == nil {
		return Widget{}, false
	}
	r.mu.RLock()
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.widget, true
		}
	}
	return Widget{}, false
}
