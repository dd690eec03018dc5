package routing

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/km-arc/go-angular/framework/injector"
)

// Router wraps chi.Router with small framework helpers.
type Router struct {
	mux chi.Router
}

// New creates a Router with sane defaults (Logger, Recoverer).
func New() *Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	return &Router{mux: r}
}

// ServeHTTP makes the Router an http.Handler.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// ── HTTP verbs ───────────────────────────────────────────────────────────────

func (r *Router) Get(pattern string, h http.HandlerFunc)    { r.mux.Get(pattern, h) }
func (r *Router) Post(pattern string, h http.HandlerFunc)   { r.mux.Post(pattern, h) }
func (r *Router) Put(pattern string, h http.HandlerFunc)    { r.mux.Put(pattern, h) }
func (r *Router) Patch(pattern string, h http.HandlerFunc)  { r.mux.Patch(pattern, h) }
func (r *Router) Delete(pattern string, h http.HandlerFunc) { r.mux.Delete(pattern, h) }

// Any registers a handler for all common HTTP methods.
func (r *Router) Any(pattern string, h http.HandlerFunc) {
	for _, m := range []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"} {
		r.mux.Method(m, pattern, h)
	}
}

// ── Groups & Prefixes ────────────────────────────────────────────────────────

// Group creates an inline group sharing this router's mount point.
func (r *Router) Group(fn func(r *Router)) {
	r.mux.Group(func(mx chi.Router) {
		fn(&Router{mux: mx})
	})
}

// Prefix creates a sub-router under a URL prefix.
func (r *Router) Prefix(pattern string, fn func(r *Router)) {
	r.mux.Route(pattern, func(mx chi.Router) {
		fn(&Router{mux: mx})
	})
}

// ── Middleware ───────────────────────────────────────────────────────────────

// Middleware adds one or more middleware to the router.
func (r *Router) Middleware(mw ...func(http.Handler) http.Handler) {
	r.mux.Use(mw...)
}

// ── Params ───────────────────────────────────────────────────────────────────

// Param returns a URL parameter captured by the route pattern.
//
//	r.Get("/users/{id}", ...)
//	id := routing.Param(req, "id")
func Param(req *http.Request, name string) string {
	return chi.URLParam(req, name)
}

// ── Injected handlers ────────────────────────────────────────────────────────

// Handler builds an http.HandlerFunc by injecting spec's dependencies.
// The target must return an http.HandlerFunc; it runs once, at mount
// time. Wiring mistakes at route definition are programmer errors, so
// Handler panics on them.
//
//	r.Get("/users", routing.Handler(in, []any{"store", func(s *Store) http.HandlerFunc {
//	    return func(w http.ResponseWriter, req *http.Request) { ... }
//	}}))
func Handler(in *injector.Injector, spec any) http.HandlerFunc {
	out := in.MustInvoke(spec)
	switch h := out.(type) {
	case http.HandlerFunc:
		return h
	case func(http.ResponseWriter, *http.Request):
		return h
	default:
		panic(&injector.InvalidSpecificationError{
			Reason: fmt.Sprintf("handler target returned %T, want http.HandlerFunc", out),
		})
	}
}
