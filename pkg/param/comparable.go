package param

import (
	"cmp"
	"fmt"
)

// Comparable is a checked value over a totally ordered type.
// Bounds are passed per call, so one value can be checked against different
// ranges at different call sites.
type Comparable[T any] struct {
	Param[T]
	compare func(a, b T) int
}

func newComparable[T any](name string, value T, valid bool, equal func(a, b T) bool, compare func(a, b T) int, opts []Option) Comparable[T] {
	return Comparable[T]{
		Param:   newParam(name, value, valid, equal, opts),
		compare: compare,
	}
}

// NewOrdered creates a comparable checked value for any cmp.Ordered type.
func NewOrdered[T cmp.Ordered](name string, value T, opts ...Option) *Comparable[T] {
	c := newComparable(name, value, true, equalComparable[T], cmp.Compare[T], opts)
	c.self = &c
	return &c
}

// NilOrdered creates an ordered checked value with no value.
func NilOrdered[T cmp.Ordered](name string, opts ...Option) *Comparable[T] {
	var zero T
	c := newComparable(name, zero, false, equalComparable[T], cmp.Compare[T], opts)
	c.self = &c
	return &c
}

// NewComparable creates a comparable checked value with a custom ordering.
// compare must return a negative number, zero or a positive number like cmp.Compare.
// Equality is derived from compare.
func NewComparable[T any](name string, value T, compare func(a, b T) int, opts ...Option) *Comparable[T] {
	if compare == nil {
		panic("param: NewComparable requires a compare function")
	}
	equal := func(a, b T) bool { return compare(a, b) == 0 }
	c := newComparable(name, value, true, equal, compare, opts)
	c.self = &c
	return &c
}

// Using returns a view that notifies cbs instead of the default callbacks.
func (c *Comparable[T]) Using(cbs ...Callback) *Comparable[T] {
	v := *c
	v.Param = *c.Param.Using(cbs...)
	return &v
}

// IsGreaterThan checks value > lower.
func (c *Comparable[T]) IsGreaterThan(lower T) bool {
	v := c.require(CheckGreaterThan)
	if c.compare(v, lower) > 0 {
		return true
	}
	return c.fail(CheckGreaterThan, fmt.Sprintf("must be greater than %v", lower), map[string]any{
		"min": lower,
	})
}

// NotGreaterThan checks value <= lower.
func (c *Comparable[T]) NotGreaterThan(lower T) bool {
	v := c.require(CheckNotGreaterThan)
	if c.compare(v, lower) <= 0 {
		return true
	}
	return c.fail(CheckNotGreaterThan, fmt.Sprintf("must not be greater than %v", lower), map[string]any{
		"max": lower,
	})
}

// IsLessThan checks value < upper.
func (c *Comparable[T]) IsLessThan(upper T) bool {
	v := c.require(CheckLessThan)
	if c.compare(v, upper) < 0 {
		return true
	}
	return c.fail(CheckLessThan, fmt.Sprintf("must be less than %v", upper), map[string]any{
		"max": upper,
	})
}

// NotLessThan checks value >= upper.
func (c *Comparable[T]) NotLessThan(upper T) bool {
	v := c.require(CheckNotLessThan)
	if c.compare(v, upper) >= 0 {
		return true
	}
	return c.fail(CheckNotLessThan, fmt.Sprintf("must not be less than %v", upper), map[string]any{
		"min": upper,
	})
}

// IsBetween checks lo <= value <= hi when inclusive, lo < value < hi otherwise.
func (c *Comparable[T]) IsBetween(lo, hi T, inclusive bool) bool {
	v := c.require(CheckBetween)
	if c.between(v, lo, hi, inclusive) {
		return true
	}
	return c.fail(CheckBetween, betweenMessage("must be between", lo, hi, inclusive), rangeValues(lo, hi, inclusive))
}

// NotBetween is the exact complement of IsBetween for the same mode.
func (c *Comparable[T]) NotBetween(lo, hi T, inclusive bool) bool {
	v := c.require(CheckNotBetween)
	if !c.between(v, lo, hi, inclusive) {
		return true
	}
	return c.fail(CheckNotBetween, betweenMessage("must not be between", lo, hi, inclusive), rangeValues(lo, hi, inclusive))
}

func (c *Comparable[T]) between(v, lo, hi T, inclusive bool) bool {
	if inclusive {
		return c.compare(v, lo) >= 0 && c.compare(v, hi) <= 0
	}
	return c.compare(v, lo) > 0 && c.compare(v, hi) < 0
}

func betweenMessage(prefix string, lo, hi any, inclusive bool) string {
	if inclusive {
		return fmt.Sprintf("%s %v and %v (inclusive)", prefix, lo, hi)
	}
	return fmt.Sprintf("%s %v and %v (exclusive)", prefix, lo, hi)
}

func rangeValues(lo, hi any, inclusive bool) map[string]any {
	return map[string]any{
		"min":       lo,
		"max":       hi,
		"inclusive": inclusive,
	}
}
