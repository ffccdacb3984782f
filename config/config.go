package config

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/rulekit"
)

// Settings carries the process-wide engine defaults read from the
// environment. Fields map to RULEKIT_* variables; unset variables keep the
// defaults, which match the engine's zero configuration.
type Settings struct {
	// DefaultLocale is the language handed to locale.Translator lookups when
	// the caller has no preference.
	DefaultLocale string `env:"RULEKIT_LOCALE" envDefault:"en"`

	// StopOnFirstFailure makes StopOnFirstFailure the default cascade mode
	// for every schema built from these settings.
	StopOnFirstFailure bool `env:"RULEKIT_STOP_ON_FIRST_FAILURE" envDefault:"false"`

	// ConcurrentChains enables concurrent property-chain evaluation in
	// ValidateContext for schemas built from these settings.
	ConcurrentChains bool `env:"RULEKIT_CONCURRENT_CHAINS" envDefault:"false"`

	// BatchWorkers caps batch.Pool concurrency. Zero means runtime.NumCPU().
	BatchWorkers int `env:"RULEKIT_BATCH_WORKERS" envDefault:"0"`

	// LogFaults routes rule-fault logging to slog.Default() for schemas built
	// from these settings. Without it, faults reach a logger only when the
	// caller passes one through WithLogger.
	LogFaults bool `env:"RULEKIT_LOG_FAULTS" envDefault:"false"`
}

// Options translates the settings into schema options.
func (s Settings) Options() []rulekit.Option {
	var opts []rulekit.Option
	if s.StopOnFirstFailure {
		opts = append(opts, rulekit.WithCascade(rulekit.StopOnFirstFailure))
	}
	if s.ConcurrentChains {
		opts = append(opts, rulekit.WithConcurrentChains(true))
	}
	if s.LogFaults {
		opts = append(opts, rulekit.WithLogger(slog.Default()))
	}
	return opts
}

var (
	mu     sync.Mutex
	cached *Settings

	defaultEnvLoaded sync.Once
)

// Load reads the settings from the environment, loading a .env file first if
// one exists. The parsed settings are cached; subsequent calls return the
// same values until Reset.
func Load() (Settings, error) {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})

	mu.Lock()
	defer mu.Unlock()

	if cached != nil {
		return *cached, nil
	}

	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, errors.Join(ErrParsingConfig, err)
	}

	cached = &s
	return s, nil
}

// MustLoad works like Load but panics when parsing fails, for use during
// application startup.
func MustLoad() Settings {
	s, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load rulekit settings: %v", err))
	}
	return s
}

// Reset clears the cached settings so the next Load re-reads the
// environment. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	cached = nil
}
