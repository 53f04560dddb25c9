package iconname

import (
	"log/slog"
	"reflect"
	"sort"
	"sync"
)

// Registry maps element types to icon name rules.
// A Registry is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	rules map[reflect.Type]Rule // keyed by base (non-pointer) type

	fallback Rule
	logger   *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used to report registration changes.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithDefault replaces the rule used for unregistered types.
func WithDefault(rule Rule) Option {
	return func(r *Registry) {
		if rule != nil {
			r.fallback = rule
		}
	}
}

// NewRegistry creates a registry holding only the default rule.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		rules:    make(map[reflect.Type]Rule),
		fallback: DefaultRule,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register sets the rule for elements of type t.
// Registering a type again replaces its rule.
func (r *Registry) Register(t reflect.Type, rule Rule) {
	t = baseType(t)
	if t == nil || rule == nil {
		r.logger.Warn("ignoring icon rule registration", "type", typeString(t), "nil_rule", rule == nil)
		return
	}

	r.mu.Lock()
	_, replaced := r.rules[t]
	r.rules[t] = rule
	r.mu.Unlock()

	r.logger.Debug("registered icon rule", "type", t.String(), "replaced", replaced)
}

// RegisterFor sets the rule for elements of type T.
func RegisterFor[T any](r *Registry, rule Rule) {
	r.Register(reflect.TypeFor[T](), rule)
}

// RegisterName registers a rule that always returns name for elements of type t.
func (r *Registry) RegisterName(t reflect.Type, name string) {
	r.Register(t, func(any) string { return name })
}

// Unregister removes the rule for type t, if any.
func (r *Registry) Unregister(t reflect.Type) {
	t = baseType(t)
	if t == nil {
		return
	}
	r.mu.Lock()
	delete(r.rules, t)
	r.mu.Unlock()
}

// Lookup returns the rule registered for type t.
func (r *Registry) Lookup(t reflect.Type) (Rule, bool) {
	t = baseType(t)
	if t == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.rules[t]
	return rule, ok
}

// Resolve returns the icon name for element, using the rule registered for
// its exact type or the default rule.
func (r *Registry) Resolve(element any) string {
	if rule, ok := r.Lookup(elementType(element)); ok {
		return rule(element)
	}
	return r.fallback(element)
}

// Types returns the registered types sorted by their qualified name.
func (r *Registry) Types() []reflect.Type {
	r.mu.RLock()
	types := make([]reflect.Type, 0, len(r.rules))
	for t := range r.rules {
		types = append(types, t)
	}
	r.mu.RUnlock()

	sort.Slice(types, func(i, j int) bool {
		return types[i].String() < types[j].String()
	})
	return types
}

// Count returns the number of types with a specific rule.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rules)
}

// Reset removes all type specific rules.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = make(map[reflect.Type]Rule)
}

func typeString(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// defaultRegistry backs the package level functions.
var defaultRegistry = NewRegistry()

// Default returns the package level registry.
func Default() *Registry {
	return defaultRegistry
}

// Register sets the rule for type t in the package level registry.
// Call this from init() functions or during startup.
func Register(t reflect.Type, rule Rule) {
	defaultRegistry.Register(t, rule)
}

// IconName returns the icon name for a model element.
func IconName(element any) string {
	return defaultRegistry.Resolve(element)
}
