package app

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/km-arc/go-angular/framework/config"
	"github.com/km-arc/go-angular/framework/injector"
	"github.com/km-arc/go-angular/framework/module"
	"github.com/km-arc/go-angular/framework/modules"
	"github.com/km-arc/go-angular/framework/routing"
)

// Application is the top-level application container. It embeds the
// Injector so user code can call app.Value(), app.Factory(), app.Invoke()
// directly, and owns the module registry that is loaded on Boot.
type Application struct {
	*injector.Injector
	Modules *module.Registry

	load   []string
	booted bool
}

// New creates the application with the framework's core modules
// (config, logging, routing) queued for Boot.
func New(envFiles ...string) *Application {
	reg := module.NewRegistry()
	reg.Register(modules.Config(envFiles...))
	reg.Register(modules.Logging())
	reg.Register(modules.Routing())

	return &Application{
		Injector: injector.New(),
		Modules:  reg,
		load:     []string{"config", "logging", "routing"},
	}
}

// Module registers an application module, queued for Boot.
func (a *Application) Module(m *module.Module) *Application {
	a.Modules.Register(m)
	a.load = append(a.load, m.Name())
	return a
}

// Boot loads all queued modules onto the injector, once.
func (a *Application) Boot() error {
	if a.booted {
		return nil
	}
	if err := a.Modules.Load(a.Injector, a.load...); err != nil {
		return err
	}
	a.booted = true
	return nil
}

// Booted reports whether Boot has run.
func (a *Application) Booted() bool { return a.booted }

// Config resolves *config.Config from the injector.
func (a *Application) Config() *config.Config {
	return injector.MustResolve[*config.Config](a.Injector, "config")
}

// Router resolves *routing.Router from the injector.
func (a *Application) Router() *routing.Router {
	return injector.MustResolve[*routing.Router](a.Injector, "router")
}

// Logger resolves the application logger from the injector.
func (a *Application) Logger() zerolog.Logger {
	return injector.MustResolve[zerolog.Logger](a.Injector, "logger")
}

// Run boots the application (if needed) and starts the HTTP server on
// APP_PORT.
func (a *Application) Run() error {
	if err := a.Boot(); err != nil {
		return err
	}
	cfg := a.Config()
	log := a.Logger()

	addr := ":" + cfg.App.Port
	log.Info().
		Str("addr", addr).
		Str("env", cfg.App.Env).
		Msgf("%s listening", cfg.App.Name)

	return http.ListenAndServe(addr, a.Router())
}
