// Package injector provides an AngularJS-compatible dependency injector
// for Go.
//
// # Overview
//
// The injector is a name-to-provider registry: units of value, computation
// and stateful objects are registered under string names and later composed
// by name instead of by direct reference, so declaration order is decoupled
// from use order.
//
// It mirrors the public API of AngularJS's $injector / $provide as closely
// as Go's type system allows. Because Go functions carry no receiver
// binding, the constructor-style "this" of a service is modelled as the
// target's leading pointer-to-struct parameter.
//
// # Registration
//
//	in := injector.New()
//
//	// AngularJS: $provide.value('userId', 123)
//	in.Value("userId", 123)
//
//	// AngularJS: $provide.factory('store', ['userId', fn])
//	in.Factory("store", []any{"userId", func(userID int) *Store {
//	    return &Store{Owner: userID}
//	}})
//
//	// AngularJS: $provide.service('tracker', fn)  — constructor style
//	in.Service("tracker", []any{"store", func(t *Tracker, s *Store) {
//	    t.Store = s
//	}})
//
// All registration methods return the injector, so calls chain fluently:
//
//	in.Value("a", 1).Value("b", 2).Factory("sum", []any{"a", "b", add})
//
// Every provider is memoized: its construction logic runs at most once,
// and every resolution of the name observes the same value. Registering a
// name again silently replaces the old provider and discards its cache.
//
// # Resolving and invoking
//
//	// AngularJS: $injector.get('store')
//	store, err := injector.Resolve[*Store](in, "store")
//
//	// AngularJS: $injector.invoke(['userId', 'store', fn])
//	out, err := in.Invoke([]any{"userId", "store", func(id int, s *Store) int {
//	    return s.Count(id)
//	}})
//
// # Dependency specifications
//
// A spec is either an explicit annotation — a []any whose last element is
// the target function and whose preceding elements are dependency names —
// or a bare function, in which case the declared parameter names are read
// from the function's source text (see Annotate). The explicit form is the
// primary, recommended contract: the bare form only works while the source
// files that built the binary remain readable at their recorded paths, the
// Go analogue of AngularJS's implicit annotation breaking under
// minification.
//
// # Errors
//
// Resolving an unregistered name fails with an *UnknownDependencyError
// (errors.Is(err, ErrUnknownDependency)). A malformed spec fails with an
// *InvalidSpecificationError; registration methods panic with it, since a
// bad spec at registration time is a programmer error, while Invoke
// returns it.
package injector
