package logging_test

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/km-arc/go-angular/framework/injector"
	"github.com/km-arc/go-angular/framework/logging"
)

func TestNew_ParsesLevel(t *testing.T) {
	log := logging.New("warn", false)
	if log.GetLevel() != zerolog.WarnLevel {
		t.Errorf("level: got %v want warn", log.GetLevel())
	}
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	log := logging.New("shouting", false)
	if log.GetLevel() != zerolog.InfoLevel {
		t.Errorf("level: got %v want info", log.GetLevel())
	}
}

func TestObserver_LogsFirstConstructionOnly(t *testing.T) {
	var buf strings.Builder
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	in := injector.New()
	in.AfterResolving(logging.Observer(log))
	in.Factory("store", []any{func() string { return "built" }})

	injector.MustResolve[string](in, "store")
	injector.MustResolve[string](in, "store") // cache hit, no log

	out := buf.String()
	if !strings.Contains(out, "store") {
		t.Errorf("log output %q should name the dependency", out)
	}
	if strings.Count(out, "provider constructed") != 1 {
		t.Errorf("log output should record exactly one construction:\n%s", out)
	}
}
