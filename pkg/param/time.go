package param

import "time"

// Time is a comparable checked value over time.Time. Equality uses
// time.Time.Equal, so the same instant in different locations is equal.
type Time struct {
	Comparable[time.Time]
}

func equalTime(a, b time.Time) bool {
	return a.Equal(b)
}

func compareTime(a, b time.Time) int {
	return a.Compare(b)
}

func NewTime(name string, value time.Time, opts ...Option) *Time {
	t := &Time{Comparable: newComparable(name, value, true, equalTime, compareTime, opts)}
	t.self = t
	return t
}

func NilTime(name string, opts ...Option) *Time {
	t := &Time{Comparable: newComparable(name, time.Time{}, false, equalTime, compareTime, opts)}
	t.self = t
	return t
}

func (t *Time) Using(cbs ...Callback) *Time {
	v := *t
	v.Comparable = *t.Comparable.Using(cbs...)
	return &v
}

// IsAfter is IsGreaterThan for instants.
func (t *Time) IsAfter(lower time.Time) bool {
	return t.IsGreaterThan(lower)
}

// IsBefore is IsLessThan for instants.
func (t *Time) IsBefore(upper time.Time) bool {
	return t.IsLessThan(upper)
}
