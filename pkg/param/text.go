package param

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Text is a checked string value. Lengths are counted in Unicode code points,
// not bytes.
type Text struct {
	Param[string]
}

func NewText(name, value string, opts ...Option) *Text {
	t := &Text{Param: newParam(name, value, true, equalComparable[string], opts)}
	t.self = t
	return t
}

func NilText(name string, opts ...Option) *Text {
	t := &Text{Param: newParam(name, "", false, equalComparable[string], opts)}
	t.self = t
	return t
}

// TextFromPtr creates a text value from an optional string; nil means absent.
func TextFromPtr(name string, value *string, opts ...Option) *Text {
	if value == nil {
		return NilText(name, opts...)
	}
	return NewText(name, *value, opts...)
}

func (t *Text) Using(cbs ...Callback) *Text {
	v := *t
	v.Param = *t.Param.Using(cbs...)
	return &v
}

// Len returns the length of the value in code points, 0 when absent.
func (t *Text) Len() int {
	return utf8.RuneCountInString(t.value)
}

// IsEmpty checks that the value has length zero.
func (t *Text) IsEmpty() bool {
	v := t.require(CheckEmpty)
	if v == "" {
		return true
	}
	return t.fail(CheckEmpty, "must be empty", nil)
}

// NotEmpty checks that the value has a non-zero length.
func (t *Text) NotEmpty() bool {
	v := t.require(CheckNotEmpty)
	if v != "" {
		return true
	}
	return t.fail(CheckNotEmpty, "must not be empty", nil)
}

// IsLength checks that the value is exactly n characters long.
func (t *Text) IsLength(n int) bool {
	v := t.require(CheckLength)
	if utf8.RuneCountInString(v) == n {
		return true
	}
	return t.fail(CheckLength, fmt.Sprintf("must be exactly %d characters long", n), map[string]any{
		"length": n,
	})
}

func (t *Text) NotLength(n int) bool {
	v := t.require(CheckNotLength)
	if utf8.RuneCountInString(v) != n {
		return true
	}
	return t.fail(CheckNotLength, fmt.Sprintf("must not be exactly %d characters long", n), map[string]any{
		"length": n,
	})
}

// IsShorterThan checks length < n.
func (t *Text) IsShorterThan(n int) bool {
	v := t.require(CheckShorterThan)
	if utf8.RuneCountInString(v) < n {
		return true
	}
	return t.fail(CheckShorterThan, fmt.Sprintf("must be shorter than %d characters", n), map[string]any{
		"length": n,
	})
}

// NotShorterThan checks length >= n.
func (t *Text) NotShorterThan(n int) bool {
	v := t.require(CheckNotShorterThan)
	if utf8.RuneCountInString(v) >= n {
		return true
	}
	return t.fail(CheckNotShorterThan, fmt.Sprintf("must be at least %d characters long", n), map[string]any{
		"length": n,
	})
}

// IsLongerThan checks length > n.
func (t *Text) IsLongerThan(n int) bool {
	v := t.require(CheckLongerThan)
	if utf8.RuneCountInString(v) > n {
		return true
	}
	return t.fail(CheckLongerThan, fmt.Sprintf("must be longer than %d characters", n), map[string]any{
		"length": n,
	})
}

// NotLongerThan checks length <= n.
func (t *Text) NotLongerThan(n int) bool {
	v := t.require(CheckNotLongerThan)
	if utf8.RuneCountInString(v) <= n {
		return true
	}
	return t.fail(CheckNotLongerThan, fmt.Sprintf("must be at most %d characters long", n), map[string]any{
		"length": n,
	})
}

// IsMatch checks that pattern matches somewhere in the value.
// Anchor the expression with ^ and $ for a full match.
func (t *Text) IsMatch(pattern *regexp.Regexp) bool {
	v := t.require(CheckMatch)
	mustPattern(pattern)
	if pattern.MatchString(v) {
		return true
	}
	return t.fail(CheckMatch, "has an invalid format", map[string]any{
		"pattern": pattern.String(),
	})
}

func (t *Text) NotMatch(pattern *regexp.Regexp) bool {
	v := t.require(CheckNotMatch)
	mustPattern(pattern)
	if !pattern.MatchString(v) {
		return true
	}
	return t.fail(CheckNotMatch, "contains a forbidden pattern", map[string]any{
		"pattern": pattern.String(),
	})
}

func mustPattern(pattern *regexp.Regexp) {
	if pattern == nil {
		panic("param: nil pattern")
	}
}

// IsContained checks that the value contains sub.
func (t *Text) IsContained(sub string) bool {
	v := t.require(CheckContained)
	if strings.Contains(v, sub) {
		return true
	}
	return t.fail(CheckContained, fmt.Sprintf("must contain %q", sub), map[string]any{
		"substring": sub,
	})
}

func (t *Text) NotContained(sub string) bool {
	v := t.require(CheckNotContained)
	if !strings.Contains(v, sub) {
		return true
	}
	return t.fail(CheckNotContained, fmt.Sprintf("must not contain %q", sub), map[string]any{
		"substring": sub,
	})
}

// IsInFold is IsIn under Unicode case folding.
func (t *Text) IsInFold(values ...string) bool {
	v := t.require(CheckInFold)
	folder := cases.Fold()
	fv := folder.String(v)
	if slices.ContainsFunc(values, func(c string) bool { return folder.String(c) == fv }) {
		return true
	}
	return t.fail(CheckInFold, fmt.Sprintf("must be one of (case-insensitive): %s", strings.Join(values, ", ")), map[string]any{
		"values": values,
	})
}

// NotInFold is NotIn under Unicode case folding.
func (t *Text) NotInFold(values ...string) bool {
	v := t.require(CheckNotInFold)
	folder := cases.Fold()
	fv := folder.String(v)
	idx := slices.IndexFunc(values, func(c string) bool { return folder.String(c) == fv })
	if idx < 0 {
		return true
	}
	return t.fail(CheckNotInFold, fmt.Sprintf("must not be one of (case-insensitive): %s", strings.Join(values, ", ")), map[string]any{
		"values": values,
		"index":  idx,
	})
}

// IsFormat checks the value against a go-playground/validator tag such as
// "email", "url", "uuid4" or "e164". An unknown tag panics.
func (t *Text) IsFormat(tag string) bool {
	v := t.require(CheckFormat)
	if matchesFormat(v, tag) {
		return true
	}
	return t.fail(CheckFormat, fmt.Sprintf("must be a valid %s", tag), map[string]any{
		"format": tag,
	})
}

func (t *Text) NotFormat(tag string) bool {
	v := t.require(CheckNotFormat)
	if !matchesFormat(v, tag) {
		return true
	}
	return t.fail(CheckNotFormat, fmt.Sprintf("must not be a valid %s", tag), map[string]any{
		"format": tag,
	})
}
