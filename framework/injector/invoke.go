package injector

import (
	"fmt"
	"reflect"
)

// ── Injection invoker ─────────────────────────────────────────────────────────

// Invoke resolves the spec's named dependencies left to right and calls
// the target with them as positional arguments, returning the target's
// return value. Each resolution completes — including any nested provider
// construction it triggers — before the next begins.
//
//	// AngularJS: $injector.invoke(['userId', 'store', fn])
//	out, err := in.Invoke([]any{"userId", "store", func(id int, s *Store) int {
//	    return s.Count(id)
//	}})
func (in *Injector) Invoke(spec any) (any, error) {
	ds, err := normalize(spec)
	if err != nil {
		return nil, err
	}
	if err := ds.checkArity(false); err != nil {
		return nil, err
	}
	if err := ds.checkOuts(); err != nil {
		return nil, err
	}
	results, err := ds.call(in, reflect.Value{}, ds.depNames(false))
	if err != nil {
		return nil, err
	}
	return outValue(results)
}

// InvokeWithReceiver is Invoke with an explicit receiver: recv is passed
// as the target's first argument, ahead of the resolved dependencies.
// It is the Go rendition of invoke's "self" binding, and what Service
// uses internally with a freshly allocated receiver.
//
//	// AngularJS: $injector.invoke(fn, self)
//	out, err := in.InvokeWithReceiver([]any{"store", method}, recv)
func (in *Injector) InvokeWithReceiver(spec any, recv any) (any, error) {
	if recv == nil {
		return in.Invoke(spec)
	}
	ds, err := normalize(spec)
	if err != nil {
		return nil, err
	}
	if err := ds.checkArity(true); err != nil {
		return nil, err
	}
	if err := ds.checkOuts(); err != nil {
		return nil, err
	}
	rv := reflect.ValueOf(recv)
	if !rv.Type().AssignableTo(ds.target.Type().In(0)) {
		return nil, invalidSpec("receiver is %T but the target's first parameter is %s",
			recv, ds.target.Type().In(0))
	}
	results, err := ds.call(in, rv, ds.depNames(true))
	if err != nil {
		return nil, err
	}
	return outValue(results)
}

// MustInvoke is like Invoke but panics on error.
func (in *Injector) MustInvoke(spec any) any {
	v, err := in.Invoke(spec)
	if err != nil {
		panic(err)
	}
	return v
}

// ── Reflective call ───────────────────────────────────────────────────────────

// call resolves deps in order and invokes the target with them, preceded
// by recv when it is valid.
func (ds *depSpec) call(in *Injector, recv reflect.Value, deps []string) ([]reflect.Value, error) {
	t := ds.target.Type()
	args := make([]reflect.Value, 0, t.NumIn())
	if recv.IsValid() {
		args = append(args, recv)
	}
	for _, name := range deps {
		v, err := in.Resolve(name)
		if err != nil {
			return nil, err
		}
		want := t.In(len(args))
		rv := reflect.ValueOf(v)
		if !rv.IsValid() {
			rv = reflect.Zero(want)
		} else if !rv.Type().AssignableTo(want) {
			return nil, fmt.Errorf("injector: dependency [%s] is %T, want %s", name, v, want)
		}
		args = append(args, rv)
	}
	return ds.target.Call(args), nil
}

// outValue extracts a target's produced value: no results yield nil, one
// result is the value, and (value, error) propagates a non-nil error.
func outValue(results []reflect.Value) (any, error) {
	switch len(results) {
	case 0:
		return nil, nil
	case 1:
		return results[0].Interface(), nil
	default:
		if err, _ := results[1].Interface().(error); err != nil {
			return nil, err
		}
		return results[0].Interface(), nil
	}
}

// trailingError reports a non-nil error in the target's last return
// value, if it has one. Used by Service, which otherwise ignores returns.
func trailingError(results []reflect.Value) error {
	if len(results) == 0 {
		return nil
	}
	last := results[len(results)-1]
	if !last.Type().Implements(errorType) {
		return nil
	}
	err, _ := last.Interface().(error)
	return err
}
