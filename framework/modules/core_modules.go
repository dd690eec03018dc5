// Package modules defines the framework's core injector modules.
package modules

import (
	"github.com/rs/zerolog"

	"github.com/km-arc/go-angular/framework/config"
	"github.com/km-arc/go-angular/framework/injector"
	"github.com/km-arc/go-angular/framework/logging"
	"github.com/km-arc/go-angular/framework/module"
	"github.com/km-arc/go-angular/framework/routing"
)

// Config returns the module that loads the application configuration from
// .env and registers it as "config".
//
// Registered names:
//   - "config" → *config.Config
func Config(envFiles ...string) *module.Module {
	return module.New("config").
		Factory("config", []any{func() *config.Config {
			return config.Load(envFiles...)
		}})
}

// Logging returns the module that registers the application logger.
//
// Registered names:
//   - "logger" → zerolog.Logger (level and format from "config")
func Logging() *module.Module {
	return module.New("logging", "config").
		Factory("logger", []any{"config", func(cfg *config.Config) zerolog.Logger {
			return logging.New(cfg.Log.Level, cfg.Log.Pretty)
		}}).
		// Trace first-time provider constructions through the logger.
		Run([]any{"logger", "$injector", func(log zerolog.Logger, in *injector.Injector) {
			in.AfterResolving(logging.Observer(log))
		}})
}

// Routing returns the module that registers the HTTP router.
//
// Registered names:
//   - "router" → *routing.Router
func Routing() *module.Module {
	return module.New("routing").
		Factory("router", []any{func() *routing.Router {
			return routing.New()
		}})
}
