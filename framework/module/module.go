// Package module provides angular.module-style registration bundles for
// the injector.
//
// A Module is a named group of value/factory/service registrations plus
// run blocks, optionally requiring other modules. A Registry loads modules
// onto an injector in dependency order: every reachable module's
// registrations are applied first, then all run blocks execute in load
// order — so a run block may inject anything any loaded module registered,
// regardless of declaration order.
//
//	core := module.New("core").
//	    Value("userId", 123).
//	    Factory("store", []any{"userId", newStore})
//
//	app := module.New("app", "core").
//	    Service("tracker", []any{"store", constructTracker}).
//	    Run([]any{"tracker", func(tr *Tracker) { tr.Start() }})
//
//	reg := module.NewRegistry()
//	reg.Register(core)
//	reg.Register(app)
//	err := reg.Load(in, "app")
package module

import (
	"fmt"

	"github.com/km-arc/go-angular/framework/injector"
)

// Module is a named bundle of queued registrations — mirrors
// angular.module(name, [requires]).
type Module struct {
	name      string
	requires  []string
	configure []func(in *injector.Injector)
	runs      []any
}

// New creates a module. The requires name other modules whose
// registrations must be applied before this module's run blocks execute.
func New(name string, requires ...string) *Module {
	return &Module{name: name, requires: requires}
}

// Name returns the module's name.
func (m *Module) Name() string { return m.name }

// Requires returns the names of the modules this one depends on.
func (m *Module) Requires() []string { return m.requires }

// Value queues a value registration. Applied on Load.
func (m *Module) Value(name string, value any) *Module {
	m.configure = append(m.configure, func(in *injector.Injector) {
		in.Value(name, value)
	})
	return m
}

// Factory queues a factory registration. Applied on Load; a malformed
// spec panics there, exactly as it would at a direct registration.
func (m *Module) Factory(name string, spec any) *Module {
	m.configure = append(m.configure, func(in *injector.Injector) {
		in.Factory(name, spec)
	})
	return m
}

// Service queues a constructor-style service registration. Applied on Load.
func (m *Module) Service(name string, spec any) *Module {
	m.configure = append(m.configure, func(in *injector.Injector) {
		in.Service(name, spec)
	})
	return m
}

// Run queues an injectable block executed after every loaded module's
// registrations have been applied — mirrors angular.module(...).run(fn).
func (m *Module) Run(spec any) *Module {
	m.runs = append(m.runs, spec)
	return m
}

// ── Registry ──────────────────────────────────────────────────────────────────

// Registry holds modules by name and loads them, with their requires, onto
// an injector.
type Registry struct {
	modules map[string]*Module
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]*Module)}
}

// Register adds a module. Registering the same name again replaces the
// earlier module, matching the injector's overwrite semantics.
func (r *Registry) Register(m *Module) *Registry {
	r.modules[m.name] = m
	return r
}

// Has reports whether a module is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.modules[name]
	return ok
}

// Load applies the named modules and everything they require onto in:
// first every module's registrations, depth-first with requires ahead of
// requirers, each module at most once; then every run block, in the same
// order. A missing module or a requirement cycle is an error naming the
// module.
func (r *Registry) Load(in *injector.Injector, names ...string) error {
	l := &loader{registry: r, state: make(map[string]int)}
	for _, name := range names {
		if err := l.visit(name); err != nil {
			return err
		}
	}

	for _, m := range l.order {
		for _, apply := range m.configure {
			apply(in)
		}
	}
	for _, m := range l.order {
		for _, spec := range m.runs {
			if _, err := in.Invoke(spec); err != nil {
				return fmt.Errorf("module [%s]: run block failed: %w", m.name, err)
			}
		}
	}
	return nil
}

const (
	loading = 1
	loaded  = 2
)

type loader struct {
	registry *Registry
	state    map[string]int
	order    []*Module
}

func (l *loader) visit(name string) error {
	switch l.state[name] {
	case loaded:
		return nil
	case loading:
		return fmt.Errorf("module [%s]: circular requirement", name)
	}

	m, ok := l.registry.modules[name]
	if !ok {
		return fmt.Errorf("module [%s] is not available", name)
	}

	l.state[name] = loading
	for _, req := range m.requires {
		if err := l.visit(req); err != nil {
			return err
		}
	}
	l.state[name] = loaded
	l.order = append(l.order, m)
	return nil
}
