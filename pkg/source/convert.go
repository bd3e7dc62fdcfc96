package source

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Conversion targets reported in ConversionError.Target.
const (
	TargetInt     = "int"
	TargetInt64   = "int64"
	TargetUint    = "uint"
	TargetFloat32 = "float32"
	TargetFloat64 = "float64"
	TargetBool    = "bool"
	TargetTime    = "time"
	TargetUUID    = "uuid"
)

var errNotFinite = errors.New("value is not a finite number")

func parseInt(raw string) (int, error) {
	n, err := strconv.ParseInt(raw, 10, strconv.IntSize)
	if err != nil {
		return 0, numError(err)
	}
	return int(n), nil
}

func parseInt64(raw string) (int64, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, numError(err)
	}
	return n, nil
}

func parseUint(raw string) (uint, error) {
	n, err := strconv.ParseUint(raw, 10, strconv.IntSize)
	if err != nil {
		return 0, numError(err)
	}
	return uint(n), nil
}

// parseFloat rejects NaN and infinities, which strconv accepts but no form
// field should carry.
func parseFloat(raw string, bits int) (float64, error) {
	f, err := strconv.ParseFloat(raw, bits)
	if err != nil {
		return 0, numError(err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNotFinite
	}
	return f, nil
}

func parseFloat32(raw string) (float32, error) {
	f, err := parseFloat(raw, 32)
	return float32(f), err
}

func parseFloat64(raw string) (float64, error) {
	return parseFloat(raw, 64)
}

// parseBool is lenient with the values HTML checkboxes and query flags use.
func parseBool(raw string) (bool, error) {
	if b, err := strconv.ParseBool(raw); err == nil {
		return b, nil
	}
	switch strings.ToLower(raw) {
	case "on", "yes", "y":
		return true, nil
	case "off", "no", "n":
		return false, nil
	default:
		return false, fmt.Errorf("invalid bool value %q", raw)
	}
}

func parseUUID(raw string) (uuid.UUID, error) {
	return uuid.Parse(raw)
}

// parseTime tries each layout in order and returns the first match.
func parseTime(raw string, layouts []string) (time.Time, error) {
	if len(layouts) == 0 {
		return time.Time{}, errors.New("no time layouts configured")
	}
	var firstErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// numError strips the strconv wrapper, which repeats the input.
func numError(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}
