package param_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramkit/pkg/param"
)

func TestNotification_CallShapes(t *testing.T) {
	t.Parallel()

	t.Run("default callbacks are used without Using", func(t *testing.T) {
		def := &recorder{}
		p := param.NewText("q", "hello", param.WithCallbacks(def.callback()))

		assert.False(t, p.IsLength(3))
		assert.Equal(t, 1, p.Failures())
		require.Len(t, def.failures, 1)
		assert.Equal(t, param.CheckLength, def.failures[0].Check)
		assert.Equal(t, 3, def.failures[0].TranslationValues["length"])
		assert.Same(t, p, def.failures[0].Param)
	})

	t.Run("single explicit callback overrides defaults for one call", func(t *testing.T) {
		def, one := &recorder{}, &recorder{}
		p := param.NewText("q", "hello", param.WithCallbacks(def.callback()))

		assert.False(t, p.Using(one.callback()).IsLength(3))
		assert.Empty(t, def.failures)
		require.Len(t, one.failures, 1)

		assert.False(t, p.IsEmpty())
		assert.Len(t, def.failures, 1, "defaults must be intact after an explicit call")
		assert.Len(t, one.failures, 1, "explicit callback must not persist")
		assert.Equal(t, 2, p.Failures())
	})

	t.Run("explicit list is notified in order", func(t *testing.T) {
		var order []string
		first := func(param.Failure) { order = append(order, "first") }
		second := func(param.Failure) { order = append(order, "second") }
		third := func(param.Failure) { order = append(order, "third") }

		p := param.New("x", 1)
		assert.False(t, p.Using(first, second, third).IsEqual(2))
		assert.Equal(t, []string{"first", "second", "third"}, order)
	})

	t.Run("empty explicit list counts without notifying", func(t *testing.T) {
		def := &recorder{}
		p := param.New("x", 1, param.WithCallbacks(def.callback()))

		assert.False(t, p.Using().IsEqual(2))
		assert.Equal(t, 1, p.Failures())
		assert.Empty(t, def.failures)
	})

	t.Run("passing check notifies nobody", func(t *testing.T) {
		def := &recorder{}
		p := param.NewNumber("n", 5, param.WithCallbacks(def.callback()))
		assert.True(t, p.IsBetween(1, 5, true))
		assert.True(t, p.Using(def.callback()).IsPositive())
		assert.Empty(t, def.failures)
		assert.Equal(t, 0, p.Failures())
	})

	t.Run("counter is incremented before callbacks run", func(t *testing.T) {
		var seen int
		p := param.New("x", 1)
		p.Using(func(f param.Failure) { seen = f.Param.Failures() }).IsEqual(2)
		assert.Equal(t, 1, seen)
	})

	t.Run("multiple defaults in registration order", func(t *testing.T) {
		var order []int
		p := param.New("x", 1,
			param.WithCallbacks(func(param.Failure) { order = append(order, 1) }),
			param.WithCallbacks(nil, func(param.Failure) { order = append(order, 2) }),
		)
		p.NotEqual(1)
		assert.Equal(t, []int{1, 2}, order)
	})

	t.Run("views share the counter of every wrapper type", func(t *testing.T) {
		n := param.NewNumber("n", -1)
		n.Using().IsPositive()
		n.Using().IsGreaterThan(0)
		n.IsIn(1)
		assert.Equal(t, 3, n.Failures())

		c := param.NewOrdered("c", "b")
		c.Using().IsLessThan("a")
		assert.Equal(t, 1, c.Failures())
	})
}

func TestNotification_FailureEvent(t *testing.T) {
	t.Parallel()

	t.Run("carries the wrapper that failed", func(t *testing.T) {
		rec := &recorder{}
		n := param.NewNumber("amount", 0, param.WithCallbacks(rec.callback()))
		n.Using(rec.callback()).IsPositive()

		require.Len(t, rec.failures, 1)
		f := rec.failures[0]
		assert.Same(t, n, f.Param)
		assert.Equal(t, "amount", f.Name())
		assert.Equal(t, 0, f.Param.Any())
		assert.Equal(t, "amount", f.TranslationValues["field"])
		assert.Equal(t, "validation.positive", f.TranslationKey)
	})

	t.Run("converts into a collectable error", func(t *testing.T) {
		rec := &recorder{}
		p := param.NewText("name", "", param.WithCallbacks(rec.callback()))
		p.NotEmpty()

		require.Len(t, rec.failures, 1)
		err := rec.failures[0].AsError()
		assert.Equal(t, "name", err.Field)
		assert.Equal(t, param.CheckNotEmpty, err.Check)
		assert.Equal(t, "must not be empty", err.Message)
		assert.Equal(t, "validation.not_empty", err.TranslationKey)
	})

	t.Run("zero failure has no name", func(t *testing.T) {
		var f param.Failure
		assert.Equal(t, "", f.Name())
		_, ok := f.Arg("min")
		assert.False(t, ok)
	})
}

func TestNotification_MonotonicCounter(t *testing.T) {
	t.Parallel()

	p := param.NewNumber("n", 10)
	results := []bool{
		p.IsGreaterThan(5),
		p.IsLessThan(5),
		p.IsBetween(0, 10, false),
		p.NotBetween(0, 10, true),
		p.IsPositive(),
		p.NotNegative(),
		p.IsIn(1, 2),
	}

	expected := 0
	for _, ok := range results {
		if !ok {
			expected++
		}
	}
	assert.Equal(t, expected, p.Failures())
	assert.Equal(t, 4, p.Failures())
	assert.True(t, p.HasFailures())
}
