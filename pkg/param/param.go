package param

import (
	"fmt"
	"slices"
)

// Option configures a checked value at construction.
type Option func(*options)

type options struct {
	callbacks []Callback
}

// WithCallbacks appends default failure callbacks. They are notified in the
// order given whenever a check runs without explicit callbacks.
// Nil callbacks are dropped.
func WithCallbacks(cbs ...Callback) Option {
	return func(o *options) {
		for _, cb := range cbs {
			if cb != nil {
				o.callbacks = append(o.callbacks, cb)
			}
		}
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// state is shared between a checked value and every view returned by Using.
type state struct {
	name     string
	failures int
	defaults []Callback
}

// Param is a named value subject to validation checks.
//
// The name and value are fixed at construction. Every failed check increments
// the failure counter exactly once and then notifies the effective callbacks:
// the defaults registered with WithCallbacks, or the explicit ones passed to
// Using for that call.
type Param[T any] struct {
	state *state
	self  Checked
	value T
	valid bool
	equal func(a, b T) bool

	explicit  bool
	callbacks []Callback
}

func newParam[T any](name string, value T, valid bool, equal func(a, b T) bool, opts []Option) Param[T] {
	o := buildOptions(opts)
	return Param[T]{
		state: &state{name: name, defaults: slices.Clip(o.callbacks)},
		value: value,
		valid: valid,
		equal: equal,
	}
}

func equalComparable[T comparable](a, b T) bool {
	return a == b
}

// New creates a checked value holding value.
func New[T comparable](name string, value T, opts ...Option) *Param[T] {
	p := newParam(name, value, true, equalComparable[T], opts)
	p.self = &p
	return &p
}

// Nil creates a checked value with no value.
func Nil[T comparable](name string, opts ...Option) *Param[T] {
	var zero T
	p := newParam(name, zero, false, equalComparable[T], opts)
	p.self = &p
	return &p
}

// FromPtr creates a checked value from an optional value; nil means absent.
func FromPtr[T comparable](name string, value *T, opts ...Option) *Param[T] {
	if value == nil {
		return Nil[T](name, opts...)
	}
	return New(name, *value, opts...)
}

// NewFunc creates a checked value for types that are not comparable with ==,
// using equal for the equality and membership checks.
func NewFunc[T any](name string, value T, equal func(a, b T) bool, opts ...Option) *Param[T] {
	if equal == nil {
		panic("param: NewFunc requires an equality function")
	}
	p := newParam(name, value, true, equal, opts)
	p.self = &p
	return &p
}

func (p *Param[T]) Name() string {
	return p.state.name
}

// Value returns the wrapped value, or the zero value of T when absent.
func (p *Param[T]) Value() T {
	return p.value
}

// Ptr returns a pointer to a copy of the value, or nil when absent.
func (p *Param[T]) Ptr() *T {
	if !p.valid {
		return nil
	}
	v := p.value
	return &v
}

func (p *Param[T]) IsNil() bool {
	return !p.valid
}

func (p *Param[T]) Any() any {
	if !p.valid {
		return nil
	}
	return p.value
}

// Failures returns how many check invocations have failed so far.
func (p *Param[T]) Failures() int {
	return p.state.failures
}

func (p *Param[T]) HasFailures() bool {
	return p.state.failures > 0
}

// Using returns a view of p whose checks notify exactly cbs instead of the
// default callbacks. The view shares the name, value and failure counter with
// p and leaves p's defaults untouched. Using() with no arguments yields a view
// that counts failures without notifying anyone.
func (p *Param[T]) Using(cbs ...Callback) *Param[T] {
	v := *p
	v.explicit = true
	v.callbacks = cbs
	return &v
}

func (p *Param[T]) effectiveCallbacks() []Callback {
	if p.explicit {
		return p.callbacks
	}
	return p.state.defaults
}

// require returns the value or panics with a NilValueError.
func (p *Param[T]) require(check Check) T {
	if !p.valid {
		panic(&NilValueError{Name: p.state.name, Check: check})
	}
	return p.value
}

// fail records one failed check and notifies callbacks. It always returns false
// so checks can end with `return p.fail(...)`.
func (p *Param[T]) fail(check Check, message string, values map[string]any) bool {
	p.state.failures++

	if values == nil {
		values = make(map[string]any, 1)
	}
	values["field"] = p.state.name

	self := p.self
	if self == nil {
		self = p
	}
	f := Failure{
		Check:             check,
		Param:             self,
		Message:           message,
		TranslationKey:    check.TranslationKey(),
		TranslationValues: values,
	}
	for _, cb := range p.effectiveCallbacks() {
		if cb != nil {
			cb(f)
		}
	}
	return false
}

// IsPresent checks that the parameter holds a value.
func (p *Param[T]) IsPresent() bool {
	if p.valid {
		return true
	}
	return p.fail(CheckPresent, "field is required", nil)
}

// NotPresent checks that the parameter holds no value.
func (p *Param[T]) NotPresent() bool {
	if !p.valid {
		return true
	}
	return p.fail(CheckNotPresent, "field must not be provided", nil)
}

// IsEqual checks that the value equals other.
func (p *Param[T]) IsEqual(other T) bool {
	v := p.require(CheckEqual)
	if p.equal(v, other) {
		return true
	}
	return p.fail(CheckEqual, fmt.Sprintf("must be equal to %v", other), map[string]any{
		"other": other,
	})
}

// NotEqual checks that the value differs from other.
func (p *Param[T]) NotEqual(other T) bool {
	v := p.require(CheckNotEqual)
	if !p.equal(v, other) {
		return true
	}
	return p.fail(CheckNotEqual, fmt.Sprintf("must not be equal to %v", other), map[string]any{
		"other": other,
	})
}

// IsIn checks that the value equals one of values.
func (p *Param[T]) IsIn(values ...T) bool {
	return p.isIn(CheckIn, values)
}

// IsInSlice is IsIn for a prepared candidate list.
func (p *Param[T]) IsInSlice(values []T) bool {
	return p.isIn(CheckIn, values)
}

// NotIn checks that the value equals none of values. On failure the index of
// the first colliding candidate is reported under "index".
func (p *Param[T]) NotIn(values ...T) bool {
	return p.notIn(CheckNotIn, values)
}

func (p *Param[T]) NotInSlice(values []T) bool {
	return p.notIn(CheckNotIn, values)
}

func (p *Param[T]) isIn(check Check, values []T) bool {
	v := p.require(check)
	if slices.ContainsFunc(values, func(c T) bool { return p.equal(v, c) }) {
		return true
	}
	return p.fail(check, fmt.Sprintf("must be one of: %v", values), map[string]any{
		"values": values,
	})
}

func (p *Param[T]) notIn(check Check, values []T) bool {
	v := p.require(check)
	idx := slices.IndexFunc(values, func(c T) bool { return p.equal(v, c) })
	if idx < 0 {
		return true
	}
	return p.fail(check, fmt.Sprintf("must not be one of: %v", values), map[string]any{
		"values": values,
		"index":  idx,
	})
}

func (p *Param[T]) String() string {
	if !p.valid {
		return p.state.name + "=<nil>"
	}
	return fmt.Sprintf("%s=%v", p.state.name, p.value)
}
