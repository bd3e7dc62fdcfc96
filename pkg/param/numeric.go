package param

import (
	"cmp"
	"fmt"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Number is a comparable checked value with sign checks relative to a zero reference.
type Number[T Numeric] struct {
	Comparable[T]
	zero T
}

// NewNumber creates a numeric checked value whose zero reference is T's zero value.
func NewNumber[T Numeric](name string, value T, opts ...Option) *Number[T] {
	var zero T
	return NewNumberWithZero(name, value, zero, opts...)
}

// NewNumberWithZero creates a numeric checked value with an explicit zero
// reference for the sign checks.
func NewNumberWithZero[T Numeric](name string, value, zero T, opts ...Option) *Number[T] {
	n := &Number[T]{
		Comparable: newComparable(name, value, true, equalComparable[T], cmp.Compare[T], opts),
		zero:       zero,
	}
	n.self = n
	return n
}

// NilNumber creates a numeric checked value with no value.
func NilNumber[T Numeric](name string, opts ...Option) *Number[T] {
	var zero T
	n := &Number[T]{
		Comparable: newComparable(name, zero, false, equalComparable[T], cmp.Compare[T], opts),
	}
	n.self = n
	return n
}

// Zero returns the reference value used by the sign checks.
func (n *Number[T]) Zero() T {
	return n.zero
}

func (n *Number[T]) Using(cbs ...Callback) *Number[T] {
	v := *n
	v.Comparable = *n.Comparable.Using(cbs...)
	return &v
}

// IsPositive checks value > zero.
func (n *Number[T]) IsPositive() bool {
	v := n.require(CheckPositive)
	if n.compare(v, n.zero) > 0 {
		return true
	}
	return n.fail(CheckPositive, fmt.Sprintf("must be greater than %v", n.zero), map[string]any{
		"zero": n.zero,
	})
}

// NotPositive checks value <= zero. A value equal to zero is not positive.
func (n *Number[T]) NotPositive() bool {
	v := n.require(CheckNotPositive)
	if n.compare(v, n.zero) <= 0 {
		return true
	}
	return n.fail(CheckNotPositive, fmt.Sprintf("must not be greater than %v", n.zero), map[string]any{
		"zero": n.zero,
	})
}

// IsNegative checks value < zero.
func (n *Number[T]) IsNegative() bool {
	v := n.require(CheckNegative)
	if n.compare(v, n.zero) < 0 {
		return true
	}
	return n.fail(CheckNegative, fmt.Sprintf("must be less than %v", n.zero), map[string]any{
		"zero": n.zero,
	})
}

// NotNegative checks value >= zero.
func (n *Number[T]) NotNegative() bool {
	v := n.require(CheckNotNegative)
	if n.compare(v, n.zero) >= 0 {
		return true
	}
	return n.fail(CheckNotNegative, fmt.Sprintf("must not be less than %v", n.zero), map[string]any{
		"zero": n.zero,
	})
}
