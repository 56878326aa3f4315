// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv`, `github.com/caarlos0/env/v11` and
// `github.com/go-playground/validator/v10` to deliver an API that:
//
//   - Loads values from one or multiple `.env` files (fallback to the default
//     `.env` in the current working directory).
//   - Parses the environment into any Go struct using `env` field tags.
//   - Validates the parsed struct against its `validate` tags.
//   - Caches each successfully loaded configuration type so it is only parsed
//     once for the lifetime of the process.
//
// # Architecture
//
// Internally the package keeps a singleton `configCache` that stores parsed
// struct copies keyed by their fully-qualified type name. Each key also holds a
// `sync.Once` guaranteeing parsing runs at most once per configuration type,
// even when accessed from multiple goroutines. A failed load is not cached.
//
// # Usage
//
// Settings is the configuration of the invoicekit tools:
//
//	s, err := config.LoadSettings()
//	if err != nil {
//	    return err
//	}
//	inv, err := invoice.NewInvoice(raw, element.WithOptions(s.ElementOptions()))
//
// Additional `.env` files can be loaded before the first Load:
//
//	if err := config.LoadEnv("./config/.env"); err != nil {
//	    log.Fatalf("loading env: %v", err)
//	}
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrInvalidConfig`  – parsed values failed their `validate` tags.
//   - `ErrLoadingEnvFile` – an explicitly requested `.env` file is unreadable.
//   - `ErrNilPointer`     – nil pointer passed to `Load`/`MustLoad`.
//
// # Testing Helpers
//
// Use `ResetCache()` to clear the global cache between tests.
package config
