package suites

import (
	"reflect"
	"sync"
)

// AdapterFunc wraps a value of a registered shape so that it satisfies Test. It is only
// called with values of the shape it was registered for.
type AdapterFunc func(v interface{}) Test

type registration struct {
	shape reflect.Type
	adapt AdapterFunc
}

// Registry maps test-case shapes to adapters.
//
// A shape is either a concrete type, which matches only values of exactly that type, or
// an interface type, which matches any value implementing it. Exact matches are always
// preferred; interface shapes are tried in the order they were registered.
type Registry struct {
	mu     sync.RWMutex
	exact  map[reflect.Type]AdapterFunc
	shapes []registration
}

func NewRegistry() *Registry {
	return &Registry{exact: make(map[reflect.Type]AdapterFunc)}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by Adapt, NewDecorator, and
// Suite.Add.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds an adapter to the default registry.
func Register(shape reflect.Type, adapt AdapterFunc) {
	defaultRegistry.Register(shape, adapt)
}

// Adapt adapts a value using the default registry.
func Adapt(v interface{}) (Test, error) {
	return defaultRegistry.Adapt(v)
}

// RegisterAdapter registers a typed adapter for shape S.
func RegisterAdapter[S any](r *Registry, adapt func(S) Test) {
	shape := reflect.TypeOf((*S)(nil)).Elem()
	r.Register(shape, func(v interface{}) Test { return adapt(v.(S)) })
}

// Register adds an adapter for a shape. Registering a concrete type twice replaces the
// earlier adapter.
func (r *Registry) Register(shape reflect.Type, adapt AdapterFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if shape.Kind() == reflect.Interface {
		r.shapes = append(r.shapes, registration{shape: shape, adapt: adapt})
		return
	}
	if r.exact == nil {
		r.exact = make(map[reflect.Type]AdapterFunc)
	}
	r.exact[shape] = adapt
}

// Lookup returns the adapter that would be used for v, or nil.
func (r *Registry) Lookup(v interface{}) AdapterFunc {
	t := reflect.TypeOf(v)
	if t == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if adapt, ok := r.exact[t]; ok {
		return adapt
	}
	for _, reg := range r.shapes {
		if t.Implements(reg.shape) {
			return reg.adapt
		}
	}
	return nil
}

// Adapt returns v unchanged if it already satisfies Test, so adapting is idempotent.
// Otherwise it wraps v with the most specific registered adapter, or fails with a
// *NoAdapterError.
func (r *Registry) Adapt(v interface{}) (Test, error) {
	if t, ok := v.(Test); ok {
		return t, nil
	}
	adapt := r.Lookup(v)
	if adapt == nil {
		return nil, &NoAdapterError{Type: reflect.TypeOf(v)}
	}
	return adapt(v), nil
}

func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exact = make(map[reflect.Type]AdapterFunc)
	r.shapes = nil
}
