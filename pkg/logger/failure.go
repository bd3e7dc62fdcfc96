package logger

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/paramkit/pkg/param"
)

// FailureCallback returns a callback that logs each failed check at level.
// A nil logger uses slog.Default().
func FailureCallback(l *slog.Logger, level slog.Level) param.Callback {
	return FailureCallbackContext(context.Background(), l, level)
}

// FailureCallbackContext is FailureCallback with a request context, so context
// extractors (request id, ...) apply to the failure records.
func FailureCallbackContext(ctx context.Context, l *slog.Logger, level slog.Level) param.Callback {
	if l == nil {
		l = slog.Default()
	}
	return func(f param.Failure) {
		failures := 0
		if f.Param != nil {
			failures = f.Param.Failures()
		}
		l.LogAttrs(ctx, level, "check failed",
			Param(f.Name()),
			Check(f.Check.String()),
			Failures(failures),
			slog.String("message", f.Message),
		)
	}
}
