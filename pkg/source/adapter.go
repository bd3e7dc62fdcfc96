package source

import (
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/paramkit/pkg/logger"
	"github.com/dmitrymomot/paramkit/pkg/param"
)

// DefaultTimeLayouts are tried in order by Adapter.Time.
var DefaultTimeLayouts = []string{time.RFC3339, time.DateTime, time.DateOnly}

// ConversionObserver is notified of every failed getter conversion.
type ConversionObserver func(*ConversionError)

// Adapter reads named parameters from a Source and wraps them into checked
// values seeded with the adapter's default callbacks.
type Adapter struct {
	src       Source
	callbacks []param.Callback
	layouts   []string
	trim      bool
	logger    *slog.Logger
	observers []ConversionObserver
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithCallbacks sets the default callbacks of every value the adapter builds.
func WithCallbacks(cbs ...param.Callback) Option {
	return func(a *Adapter) {
		for _, cb := range cbs {
			if cb != nil {
				a.callbacks = append(a.callbacks, cb)
			}
		}
	}
}

// WithTimeLayouts replaces the layouts used by Time and IsTime.
func WithTimeLayouts(layouts ...string) Option {
	return func(a *Adapter) {
		if len(layouts) > 0 {
			a.layouts = slices.Clone(layouts)
		}
	}
}

// WithTrimSpace trims surrounding whitespace from raw values before use.
func WithTrimSpace(trim bool) Option {
	return func(a *Adapter) { a.trim = trim }
}

func WithLogger(l *slog.Logger) Option {
	return func(a *Adapter) {
		if l != nil {
			a.logger = l
		}
	}
}

func WithConversionObserver(obs ConversionObserver) Option {
	return func(a *Adapter) {
		if obs != nil {
			a.observers = append(a.observers, obs)
		}
	}
}

// WithConfig applies the adapter settings of cfg.
func WithConfig(cfg Config) Option {
	return func(a *Adapter) {
		WithTimeLayouts(cfg.TimeLayouts...)(a)
		a.trim = cfg.TrimSpace
	}
}

// New creates an adapter over src. A nil src behaves as an empty source.
func New(src Source, opts ...Option) *Adapter {
	if src == nil {
		src = Map(nil)
	}
	a := &Adapter{
		src:     src,
		layouts: slices.Clone(DefaultTimeLayouts),
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

// Has reports whether the source carries name.
func (a *Adapter) Has(name string) bool {
	return a.src.Has(name)
}

func (a *Adapter) raw(name string) (string, bool) {
	v, ok := a.src.Get(name)
	if !ok {
		return "", false
	}
	if a.trim {
		v = strings.TrimSpace(v)
	}
	return v, true
}

func (a *Adapter) options() []param.Option {
	return []param.Option{param.WithCallbacks(a.callbacks...)}
}

// IsText reports whether name can be read as text, which holds for any present parameter.
func (a *Adapter) IsText(name string) bool {
	return a.Has(name)
}

func (a *Adapter) IsInt(name string) bool     { return probe(a, name, parseInt) }
func (a *Adapter) IsInt64(name string) bool   { return probe(a, name, parseInt64) }
func (a *Adapter) IsUint(name string) bool    { return probe(a, name, parseUint) }
func (a *Adapter) IsFloat32(name string) bool { return probe(a, name, parseFloat32) }
func (a *Adapter) IsFloat64(name string) bool { return probe(a, name, parseFloat64) }
func (a *Adapter) IsBool(name string) bool    { return probe(a, name, parseBool) }
func (a *Adapter) IsUUID(name string) bool    { return probe(a, name, parseUUID) }

func (a *Adapter) IsTime(name string) bool {
	return probe(a, name, a.timeParser(a.layouts))
}

// Text returns the parameter as text. A missing parameter yields a nil
// Text, so presence checks can still run on it.
func (a *Adapter) Text(name string) *param.Text {
	v, ok := a.raw(name)
	if !ok {
		return param.NilText(name, a.options()...)
	}
	return param.NewText(name, v, a.options()...)
}

func (a *Adapter) Int(name string) (*param.Number[int], error) {
	return number(a, name, TargetInt, parseInt)
}

func (a *Adapter) Int64(name string) (*param.Number[int64], error) {
	return number(a, name, TargetInt64, parseInt64)
}

func (a *Adapter) Uint(name string) (*param.Number[uint], error) {
	return number(a, name, TargetUint, parseUint)
}

func (a *Adapter) Float32(name string) (*param.Number[float32], error) {
	return number(a, name, TargetFloat32, parseFloat32)
}

func (a *Adapter) Float64(name string) (*param.Number[float64], error) {
	return number(a, name, TargetFloat64, parseFloat64)
}

func (a *Adapter) Bool(name string) (*param.Param[bool], error) {
	return Parse(a, name, TargetBool, parseBool)
}

func (a *Adapter) UUID(name string) (*param.Param[uuid.UUID], error) {
	return Parse(a, name, TargetUUID, parseUUID)
}

// Time parses the parameter with the adapter's layouts.
func (a *Adapter) Time(name string) (*param.Time, error) {
	return a.TimeLayout(name, a.layouts...)
}

// TimeLayout parses the parameter with the given layouts, tried in order.
func (a *Adapter) TimeLayout(name string, layouts ...string) (*param.Time, error) {
	t, err := convert(a, name, TargetTime, a.timeParser(layouts))
	if err != nil {
		return nil, err
	}
	return param.NewTime(name, t, a.options()...), nil
}

func (a *Adapter) timeParser(layouts []string) func(string) (time.Time, error) {
	return func(raw string) (time.Time, error) {
		return parseTime(raw, layouts)
	}
}

// Parse converts a parameter with a custom parser and wraps it into a
// generic checked value. target names the type in conversion errors.
//
//	status, err := source.Parse(params, "status", "status", ParseStatus)
func Parse[T comparable](a *Adapter, name, target string, parse func(string) (T, error)) (*param.Param[T], error) {
	v, err := convert(a, name, target, parse)
	if err != nil {
		return nil, err
	}
	return param.New(name, v, a.options()...), nil
}

// CanParse is the probe matching Parse: it has no side effects.
func CanParse[T any](a *Adapter, name string, parse func(string) (T, error)) bool {
	return probe(a, name, parse)
}

func number[T param.Numeric](a *Adapter, name, target string, parse func(string) (T, error)) (*param.Number[T], error) {
	v, err := convert(a, name, target, parse)
	if err != nil {
		return nil, err
	}
	return param.NewNumber(name, v, a.options()...), nil
}

func probe[T any](a *Adapter, name string, parse func(string) (T, error)) bool {
	raw, ok := a.raw(name)
	if !ok {
		return false
	}
	_, err := parse(raw)
	return err == nil
}

func convert[T any](a *Adapter, name, target string, parse func(string) (T, error)) (T, error) {
	var zero T
	raw, ok := a.raw(name)
	if !ok {
		return zero, a.conversionFailed(&ConversionError{Name: name, Target: target, Err: ErrMissing})
	}
	v, err := parse(raw)
	if err != nil {
		return zero, a.conversionFailed(&ConversionError{Name: name, Raw: raw, Target: target, Err: err})
	}
	return v, nil
}

func (a *Adapter) conversionFailed(err *ConversionError) error {
	a.logger.Debug("parameter conversion failed",
		logger.Param(err.Name),
		logger.Target(err.Target),
		logger.Raw(err.Raw),
		logger.Error(err.Err),
	)
	for _, obs := range a.observers {
		obs(err)
	}
	return err
}
