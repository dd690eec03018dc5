package injector

import (
	"fmt"
	"reflect"
	"sync"
)

// ── Provider store ────────────────────────────────────────────────────────────

// buildFn is the underlying construction logic of a provider. It runs at
// most once per registration; the result is memoized.
type buildFn func(in *Injector) (any, error)

// provider is a single entry of the store. Its memoization state is an
// explicit uncomputed/computed pair rather than a sync.Once: a failed
// construction must stay uncomputed so a later resolution retries it.
type provider struct {
	mu       sync.Mutex
	name     string
	build    buildFn
	computed bool
	value    any
}

func (p *provider) resolve(in *Injector) (any, error) {
	p.mu.Lock()
	if p.computed {
		v := p.value
		p.mu.Unlock()
		return v, nil
	}
	v, err := p.build(in)
	if err != nil {
		p.mu.Unlock()
		return nil, err
	}
	p.value = v
	p.computed = true
	p.mu.Unlock()

	in.fireAfterResolving(p.name, v)
	return v, nil
}

// ── Injector ──────────────────────────────────────────────────────────────────

// Injector is the dependency injection container — mirrors AngularJS's
// $injector. Each Injector owns its own provider store, so independent
// injectors coexist freely (one per test, for instance).
type Injector struct {
	mu        sync.RWMutex
	providers map[string]*provider
	observers []func(name string, value any)
}

// New creates an empty injector. The injector is itself injectable under
// "$injector", mirroring AngularJS.
func New() *Injector {
	in := &Injector{providers: make(map[string]*provider)}
	in.Value("$injector", in)
	return in
}

// register inserts or overwrites the entry for name. Overwriting discards
// the old provider along with its memoized value.
func (in *Injector) register(name string, build buildFn) *Injector {
	if name == "" {
		panic(invalidSpec("dependency name is empty"))
	}
	in.mu.Lock()
	in.providers[name] = &provider{name: name, build: build}
	in.mu.Unlock()
	return in
}

// ── Registration ──────────────────────────────────────────────────────────────

// Value registers a pre-built value under name. No dependencies are
// resolved; every resolution of name yields exactly this value.
//
//	// AngularJS: $provide.value('userId', 123)
//	in.Value("userId", 123)
func (in *Injector) Value(name string, value any) *Injector {
	return in.register(name, func(*Injector) (any, error) {
		return value, nil
	})
}

// Factory registers a provider whose value is the target function's return
// value. The target runs at most once, on first resolution, with its named
// dependencies as arguments; it may return nothing, a value, or
// (value, error).
//
//	// AngularJS: $provide.factory('store', ['userId', fn])
//	in.Factory("store", []any{"userId", func(id int) *Store {
//	    return &Store{Owner: id}
//	}})
//
// Factory panics with *InvalidSpecificationError on a malformed spec.
func (in *Injector) Factory(name string, spec any) *Injector {
	ds, err := normalize(spec)
	if err == nil {
		err = ds.checkArity(false)
	}
	if err == nil {
		err = ds.checkOuts()
	}
	if err != nil {
		panic(err)
	}

	return in.register(name, func(in *Injector) (any, error) {
		results, err := ds.call(in, reflect.Value{}, ds.depNames(false))
		if err != nil {
			return nil, err
		}
		return outValue(results)
	})
}

// Service registers a constructor-style provider. The target's first
// parameter must be a pointer to struct: on first resolution a fresh zero
// value is allocated, the target is invoked with it as the receiver and
// the resolved dependencies as the remaining arguments, and that receiver
// — not the target's return value — becomes the provider's value. A
// trailing error return, if present and non-nil, aborts construction; any
// other return value is ignored.
//
//	// AngularJS: $provide.service('tracker', ['store', Tracker])
//	in.Service("tracker", []any{"store", func(t *Tracker, s *Store) {
//	    t.Store = s
//	}})
//
// Service panics with *InvalidSpecificationError on a malformed spec.
func (in *Injector) Service(name string, spec any) *Injector {
	ds, err := normalize(spec)
	if err == nil {
		err = ds.checkArity(true)
	}
	if err != nil {
		panic(err)
	}
	t := ds.target.Type()
	if t.In(0).Kind() != reflect.Pointer || t.In(0).Elem().Kind() != reflect.Struct {
		panic(invalidSpec("service target's first parameter is %s, want a pointer to struct receiver", t.In(0)))
	}

	recvType := t.In(0).Elem()
	deps := ds.depNames(true)
	return in.register(name, func(in *Injector) (any, error) {
		recv := reflect.New(recvType)
		results, err := ds.call(in, recv, deps)
		if err != nil {
			return nil, err
		}
		if err := trailingError(results); err != nil {
			return nil, err
		}
		return recv.Interface(), nil
	})
}

// Unregister removes the provider for name, including any memoized value:
// resolving the name afterwards fails until it is registered again, and a
// re-registration starts with fresh memoization state. Unknown names are
// a no-op.
func (in *Injector) Unregister(name string) *Injector {
	in.mu.Lock()
	delete(in.providers, name)
	in.mu.Unlock()
	return in
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Resolve looks up and invokes the provider for name, memoizing its value.
//
//	// AngularJS: $injector.get('store')
//	v, err := in.Resolve("store")
func (in *Injector) Resolve(name string) (any, error) {
	in.mu.RLock()
	p, ok := in.providers[name]
	in.mu.RUnlock()
	if !ok {
		return nil, &UnknownDependencyError{Name: name}
	}
	return p.resolve(in)
}

// Has reports whether a provider is registered under name.
//
//	// AngularJS: $injector.has('store')
func (in *Injector) Has(name string) bool {
	in.mu.RLock()
	defer in.mu.RUnlock()
	_, ok := in.providers[name]
	return ok
}

// Names returns the registered dependency names, unordered.
func (in *Injector) Names() []string {
	in.mu.RLock()
	defer in.mu.RUnlock()
	names := make([]string, 0, len(in.providers))
	for name := range in.providers {
		names = append(names, name)
	}
	return names
}

// ── Observers ─────────────────────────────────────────────────────────────────

// AfterResolving registers a callback fired once per provider, when its
// value is first constructed. Values served from the memoization cache do
// not fire it again.
func (in *Injector) AfterResolving(cb func(name string, value any)) {
	in.mu.Lock()
	in.observers = append(in.observers, cb)
	in.mu.Unlock()
}

func (in *Injector) fireAfterResolving(name string, value any) {
	in.mu.RLock()
	cbs := in.observers
	in.mu.RUnlock()
	for _, cb := range cbs {
		cb(name, value)
	}
}

// ── Generics helpers ──────────────────────────────────────────────────────────

// Resolve is a generic helper that resolves name and type-asserts the
// result.
//
//	store, err := injector.Resolve[*Store](in, "store")
func Resolve[T any](in *Injector, name string) (T, error) {
	var zero T
	v, err := in.Resolve(name)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("injector: dependency [%s] is %T, want %T", name, v, zero)
	}
	return t, nil
}

// MustResolve is like Resolve but panics on error. Use it in wiring code
// where a missing dependency is fatal.
func MustResolve[T any](in *Injector, name string) T {
	v, err := Resolve[T](in, name)
	if err != nil {
		panic(err)
	}
	return v
}
