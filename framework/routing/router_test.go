package routing_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/km-arc/go-angular/framework/injector"
	"github.com/km-arc/go-angular/framework/routing"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func do(t *testing.T, router *routing.Router, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// ── HTTP verbs ────────────────────────────────────────────────────────────────

func TestRouter_Verbs(t *testing.T) {
	tests := []struct {
		method  string
		mount   func(r *routing.Router)
		path    string
	}{
		{http.MethodGet, func(r *routing.Router) { r.Get("/x", okHandler) }, "/x"},
		{http.MethodPost, func(r *routing.Router) { r.Post("/x", okHandler) }, "/x"},
		{http.MethodPut, func(r *routing.Router) { r.Put("/x/{id}", okHandler) }, "/x/1"},
		{http.MethodPatch, func(r *routing.Router) { r.Patch("/x/{id}", okHandler) }, "/x/1"},
		{http.MethodDelete, func(r *routing.Router) { r.Delete("/x/{id}", okHandler) }, "/x/1"},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			r := routing.New()
			tt.mount(r)
			if rr := do(t, r, tt.method, tt.path); rr.Code != http.StatusOK {
				t.Errorf("%s %s: got %d want 200", tt.method, tt.path, rr.Code)
			}
		})
	}
}

func TestRouter_Any(t *testing.T) {
	r := routing.New()
	r.Any("/ping", okHandler)

	for _, m := range []string{"GET", "POST", "PUT", "PATCH", "DELETE"} {
		if rr := do(t, r, m, "/ping"); rr.Code != http.StatusOK {
			t.Errorf("%s /ping: got %d want 200", m, rr.Code)
		}
	}
}

// ── Prefix & Param ────────────────────────────────────────────────────────────

func TestRouter_Prefix(t *testing.T) {
	r := routing.New()
	r.Prefix("/api", func(api *routing.Router) {
		api.Get("/users", okHandler)
	})

	if rr := do(t, r, http.MethodGet, "/api/users"); rr.Code != http.StatusOK {
		t.Errorf("GET /api/users: got %d want 200", rr.Code)
	}
	if rr := do(t, r, http.MethodGet, "/users"); rr.Code == http.StatusOK {
		t.Error("GET /users should not match outside the prefix")
	}
}

func TestRouter_Param(t *testing.T) {
	r := routing.New()
	r.Get("/users/{id}", func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(routing.Param(req, "id")))
	})

	rr := do(t, r, http.MethodGet, "/users/42")
	if got := rr.Body.String(); got != "42" {
		t.Errorf("param id: got %q want %q", got, "42")
	}
}

// ── Middleware & Group ────────────────────────────────────────────────────────

func TestRouter_GroupMiddlewareIsScoped(t *testing.T) {
	r := routing.New()

	deny := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
	}

	r.Get("/open", okHandler)
	r.Group(func(protected *routing.Router) {
		protected.Middleware(deny)
		protected.Get("/closed", okHandler)
	})

	if rr := do(t, r, http.MethodGet, "/open"); rr.Code != http.StatusOK {
		t.Errorf("GET /open: got %d want 200", rr.Code)
	}
	if rr := do(t, r, http.MethodGet, "/closed"); rr.Code != http.StatusUnauthorized {
		t.Errorf("GET /closed: got %d want 401", rr.Code)
	}
}

// ── Injected handlers ─────────────────────────────────────────────────────────

func TestHandler_InjectsDependencies(t *testing.T) {
	in := injector.New()
	in.Value("motd", "hello")

	r := routing.New()
	r.Get("/", routing.Handler(in, []any{"motd", func(motd string) http.HandlerFunc {
		return func(w http.ResponseWriter, req *http.Request) {
			_, _ = w.Write([]byte(motd))
		}
	}}))

	rr := do(t, r, http.MethodGet, "/")
	if got := rr.Body.String(); got != "hello" {
		t.Errorf("body: got %q want %q", got, "hello")
	}
}

func TestHandler_PanicsOnUnknownDependency(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Handler should panic when a dependency is missing at mount time")
		}
	}()
	routing.Handler(injector.New(), []any{"ghost", func(v any) http.HandlerFunc { return okHandler }})
}

func TestHandler_PanicsOnNonHandlerReturn(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Handler should panic when the target does not return a handler")
		}
	}()
	routing.Handler(injector.New(), []any{func() int { return 1 }})
}
