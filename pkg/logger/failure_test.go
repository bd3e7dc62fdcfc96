package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/paramkit/pkg/logger"
	"github.com/dmitrymomot/paramkit/pkg/param"
)

func TestFailureCallback(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))

	age := param.NewNumber("age", 15, param.WithCallbacks(logger.FailureCallback(log, slog.LevelWarn)))
	assert.False(t, age.IsGreaterThan(17))

	entry := decodeLine(t, &buf)
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "check failed", entry["msg"])
	assert.Equal(t, "age", entry["param"])
	assert.Equal(t, "greater_than", entry["check"])
	assert.EqualValues(t, 1, entry["failures"])
	assert.NotEmpty(t, entry["message"])
}

func TestFailureCallbackRespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))

	name := param.NewText("name", "", param.WithCallbacks(logger.FailureCallback(log, slog.LevelDebug)))
	assert.False(t, name.NotEmpty())
	assert.Empty(t, buf.String())
	assert.Equal(t, 1, name.Failures())
}

func TestFailureCallbackContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithContextValue("request_id", ctxKey{}))
	ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")

	code := param.NewText("code", "abc")
	assert.False(t, code.Using(logger.FailureCallbackContext(ctx, log, slog.LevelInfo)).IsLength(4))

	entry := decodeLine(t, &buf)
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "length", entry["check"])
}

func TestFailureCallbackNilLogger(t *testing.T) {
	t.Parallel()

	cb := logger.FailureCallback(nil, slog.LevelDebug)
	assert.NotPanics(t, func() {
		param.NewText("x", "").Using(cb).NotEmpty()
	})
}
