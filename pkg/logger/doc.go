// Package logger builds structured slog loggers and the attributes and
// failure callbacks used across paramkit.
//
// New creates a *slog.Logger configured by functional options (format, level,
// output, static attributes). The handler is wrapped by a context decorator
// that injects request-scoped values, such as a request id, on every record.
//
// Attribute helpers (Param, Check, Failures, Target, Error, ...) keep key
// names consistent between the source adapter, callbacks and application code.
//
// # Failure logging
//
// FailureCallback turns a logger into a param.Callback:
//
//	log := logger.New(logger.WithEnvironment("development", "signup"))
//	email := param.NewText("email", raw, param.WithCallbacks(logger.FailureCallback(log, slog.LevelInfo)))
//	email.IsFormat("email") // logs: check failed param=email check=format failures=1
package logger
