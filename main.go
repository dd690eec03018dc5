package main

import (
	"log"
	"net/http"
	"strconv"

	"github.com/km-arc/go-angular/app"
	gohttp "github.com/km-arc/go-angular/framework/http"
	"github.com/km-arc/go-angular/framework/module"
	"github.com/km-arc/go-angular/framework/routing"
)

// UserStore is a demo dependency built by a factory.
type UserStore struct {
	Users map[int]string
}

func (s *UserStore) Find(id int) (string, bool) {
	name, ok := s.Users[id]
	return name, ok
}

// Tracker is a demo service — its constructor populates the receiver.
type Tracker struct {
	Store *UserStore
	Hits  int
}

func (t *Tracker) Record() int {
	t.Hits++
	return t.Hits
}

func main() {
	application := app.New() // loads .env automatically

	// ── Application module ─────────────────────────────────────────────────

	application.Module(module.New("demo", "routing").
		Value("motd", "Welcome to go-angular!").
		Factory("userStore", []any{func() *UserStore {
			return &UserStore{Users: map[int]string{1: "Alice", 2: "Bob"}}
		}}).
		Service("tracker", []any{"userStore", func(t *Tracker, s *UserStore) {
			t.Store = s
		}}))

	if err := application.Boot(); err != nil {
		log.Fatalf("boot error: %v", err)
	}

	in := application.Injector
	r := application.Router()

	// ── Routes with injected handlers ──────────────────────────────────────

	r.Get("/", routing.Handler(in, []any{"motd", func(motd string) http.HandlerFunc {
		return func(w http.ResponseWriter, req *http.Request) {
			gohttp.NewResponse(w).Success(map[string]any{"message": motd})
		}
	}}))

	r.Prefix("/api/v1", func(api *routing.Router) {

		// GET /api/v1/users/{id}
		api.Get("/users/{id}", routing.Handler(in, []any{"userStore", func(s *UserStore) http.HandlerFunc {
			return func(w http.ResponseWriter, req *http.Request) {
				res := gohttp.NewResponse(w)
				id, err := strconv.Atoi(routing.Param(req, "id"))
				if err != nil {
					res.Error(http.StatusBadRequest, "id must be numeric")
					return
				}
				name, ok := s.Find(id)
				if !ok {
					res.NotFound()
					return
				}
				res.Success(map[string]any{"id": id, "name": name})
			}
		}}))

		// GET /api/v1/hits
		api.Get("/hits", routing.Handler(in, []any{"tracker", func(t *Tracker) http.HandlerFunc {
			return func(w http.ResponseWriter, req *http.Request) {
				gohttp.NewResponse(w).Success(map[string]any{"hits": t.Record()})
			}
		}}))
	})

	if err := application.Run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
