package metrics_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramkit/pkg/metrics"
	"github.com/dmitrymomot/paramkit/pkg/param"
	"github.com/dmitrymomot/paramkit/pkg/source"
)

func TestRecorder_Callback(t *testing.T) {
	t.Parallel()

	rec := metrics.NewRecorder(prometheus.NewRegistry())

	name := param.NewText("name", "", param.WithCallbacks(rec.Callback()))
	name.NotEmpty()
	name.NotEmpty()
	name.IsLongerThan(3)
	assert.True(t, name.IsEmpty())

	assert.Equal(t, 2.0, testutil.ToFloat64(rec.CheckFailures(param.CheckNotEmpty)))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.CheckFailures(param.CheckLongerThan)))
	assert.Equal(t, 0.0, testutil.ToFloat64(rec.CheckFailures(param.CheckEmpty)))
}

func TestRecorder_ObserveConversion(t *testing.T) {
	t.Parallel()

	rec := metrics.NewRecorder(prometheus.NewRegistry())
	params := source.New(
		source.Map(map[string]string{"age": "old", "id": "nope"}),
		source.WithConversionObserver(rec.ObserveConversion),
	)

	_, err := params.Int("age")
	require.Error(t, err)
	_, err = params.Int("missing")
	require.Error(t, err)
	_, err = params.UUID("id")
	require.Error(t, err)
	assert.False(t, params.IsInt("age"), "probes are not counted")

	assert.Equal(t, 2.0, testutil.ToFloat64(rec.ConversionFailures(source.TargetInt)))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.ConversionFailures(source.TargetUUID)))

	assert.NotPanics(t, func() { rec.ObserveConversion(nil) })
}

func TestRecorder_Exposition(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg, metrics.WithNamespace("signup"), metrics.WithConstLabels(prometheus.Labels{"service": "api"}))

	param.NewNumber("age", 10).Using(rec.Callback()).IsPositive()
	param.NewNumber("age", -1).Using(rec.Callback()).IsPositive()

	expected := `
# HELP signup_check_failures_total Total number of failed parameter checks
# TYPE signup_check_failures_total counter
signup_check_failures_total{check="positive",service="api"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "signup_check_failures_total"))
}

func TestNewRecorder_DuplicateRegistration(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	metrics.NewRecorder(reg)
	assert.Panics(t, func() { metrics.NewRecorder(reg) })
}
