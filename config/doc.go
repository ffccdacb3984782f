// Package config reads process-wide engine defaults from RULEKIT_*
// environment variables, with optional .env file support.
//
// Settings are parsed once and cached. Applications typically load them at
// startup and feed them into schema construction:
//
//	settings := config.MustLoad()
//	s := rulekit.NewSchema[User]("User", settings.Options()...)
//
// Available variables:
//
//	RULEKIT_LOCALE                 default language for localized messages (default "en")
//	RULEKIT_STOP_ON_FIRST_FAILURE  default cascade mode for new schemas (default false)
//	RULEKIT_CONCURRENT_CHAINS      concurrent chain evaluation in ValidateContext (default false)
//	RULEKIT_BATCH_WORKERS          batch pool concurrency, 0 = NumCPU (default 0)
//	RULEKIT_LOG_FAULTS             route rule-fault logs to slog.Default() (default false)
//
// Reset clears the cache for tests that mutate the environment.
package config
