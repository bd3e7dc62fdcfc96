package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under "error". Nil errors yield an empty Attr, which
// slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under "errors".
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Param records the parameter name under "param".
func Param(name string) slog.Attr {
	return slog.String("param", name)
}

// Check records the check kind under "check".
func Check(kind string) slog.Attr {
	return slog.String("check", kind)
}

// Failures records a failure count under "failures".
func Failures(n int) slog.Attr {
	return slog.Int("failures", n)
}

// Target records a conversion target type under "target".
func Target(name string) slog.Attr {
	return slog.String("target", name)
}

// Raw records the raw parameter input under "raw".
func Raw(value string) slog.Attr {
	return slog.String("raw", value)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}
