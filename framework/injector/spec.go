package injector

import (
	"reflect"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// depSpec is the normalized form of a dependency specification:
// an ordered list of dependency names plus the target function.
//
// For a bare (un-annotated) function, names holds every declared
// parameter name — including the receiver parameter when the spec is
// used in constructor position, which depNames strips off.
type depSpec struct {
	names  []string
	target reflect.Value
	bare   bool
}

// normalize converts a caller-supplied spec into a depSpec.
//
// Accepted shapes, same as AngularJS:
//   - []any{"dep1", "dep2", fn}  — explicit annotation
//   - fn                         — bare function, names read from source
func normalize(spec any) (*depSpec, error) {
	if spec == nil {
		return nil, invalidSpec("spec is nil")
	}

	if elems, ok := spec.([]any); ok {
		if len(elems) == 0 {
			return nil, invalidSpec("annotation is empty; want []any{\"name\", ..., fn}")
		}
		target := reflect.ValueOf(elems[len(elems)-1])
		if target.Kind() != reflect.Func {
			return nil, invalidSpec("last annotation element is %T, want a function", elems[len(elems)-1])
		}
		if target.Type().IsVariadic() {
			return nil, invalidSpec("variadic targets are not injectable")
		}
		names := make([]string, 0, len(elems)-1)
		for _, e := range elems[:len(elems)-1] {
			name, ok := e.(string)
			if !ok {
				return nil, invalidSpec("dependency name is %T, want a string", e)
			}
			if name == "" {
				return nil, invalidSpec("dependency name is empty")
			}
			names = append(names, name)
		}
		return &depSpec{names: names, target: target}, nil
	}

	target := reflect.ValueOf(spec)
	if target.Kind() != reflect.Func {
		return nil, invalidSpec("spec is %T, want a function or []any{\"name\", ..., fn}", spec)
	}
	if target.Type().IsVariadic() {
		return nil, invalidSpec("variadic targets are not injectable")
	}
	names, err := Annotate(spec)
	if err != nil {
		return nil, invalidSpec("cannot annotate bare function: %v", err)
	}
	return &depSpec{names: names, target: target, bare: true}, nil
}

// depNames returns the dependency names to resolve. In constructor
// position the first parameter of a bare function is the receiver, not a
// dependency.
func (ds *depSpec) depNames(withReceiver bool) []string {
	if withReceiver && ds.bare {
		if len(ds.names) == 0 {
			return nil
		}
		return ds.names[1:]
	}
	return ds.names
}

// checkArity verifies that the target accepts exactly the named
// dependencies, plus a leading receiver argument when withReceiver is set.
func (ds *depSpec) checkArity(withReceiver bool) error {
	want := len(ds.depNames(withReceiver))
	if withReceiver {
		want++
	}
	if got := ds.target.Type().NumIn(); got != want {
		return invalidSpec("target takes %d arguments but the annotation names %d dependencies",
			got, len(ds.depNames(withReceiver)))
	}
	return nil
}

// checkOuts verifies the target's return shape for factory/invoke use:
// no results, a single value, or (value, error).
func (ds *depSpec) checkOuts() error {
	t := ds.target.Type()
	switch t.NumOut() {
	case 0, 1:
		return nil
	case 2:
		if !t.Out(1).Implements(errorType) {
			return invalidSpec("target's second return value is %s, want error", t.Out(1))
		}
		return nil
	default:
		return invalidSpec("target returns %d values, want at most (value, error)", t.NumOut())
	}
}
