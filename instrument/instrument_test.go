package instrument_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/bfpath/bellmanford"
	"github.com/katalvlaran/bfpath/instrument"
)

func cyclic() *bellmanford.EdgeList[string, float64] {
	g := bellmanford.NewEdgeList[string, float64]()
	g.Add("v0", "v1", 2.2).Add("v1", "v2", 2.4).Add("v2", "v0", -5.3).Add("v3", "v2", -1.0)

	return g
}

func acyclic() *bellmanford.EdgeList[string, float64] {
	g := bellmanford.NewEdgeList[string, float64]("v0", "v1", "v2", "v3")
	g.Add("v0", "v1", 2.2).Add("v1", "v2", 2.4)

	return g
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := instrument.NewMetrics(reg)

	_, err := bellmanford.BellmanFord[string, float64](acyclic(), "v0", bellmanford.WithObserver(m.Observer()))
	require.NoError(t, err)
	_, err = bellmanford.BellmanFord[string, float64](cyclic(), "v0", bellmanford.WithObserver(m.Observer()))
	require.Error(t, err)

	assert.Equal(t, 8.0, testutil.ToFloat64(m.PassesCounter()))
	// acyclic: v1, v2 in pass 1; cyclic: three updates in each of 4 passes.
	assert.Equal(t, 14.0, testutil.ToFloat64(m.RelaxationsCounter()))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.LastEdgesGauge()))

	expected := `
# HELP bfpath_bellmanford_runs_total Completed Bellman-Ford runs by outcome
# TYPE bfpath_bellmanford_runs_total counter
bfpath_bellmanford_runs_total{outcome="negative_cycle"} 1
bfpath_bellmanford_runs_total{outcome="ok"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "bfpath_bellmanford_runs_total"))

	n, err := testutil.GatherAndCount(reg, "bfpath_bellmanford_run_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestTracer(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	tr := instrument.NewTracer(tp.Tracer("test"))

	_, err := bellmanford.BellmanFord[string, float64](acyclic(), "v0",
		bellmanford.WithObserver(tr.Observer(context.Background())))
	require.NoError(t, err)
	_, err = bellmanford.BellmanFord[string, float64](cyclic(), "v0",
		bellmanford.WithObserver(tr.Observer(context.Background())))
	require.Error(t, err)

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)

	ok := spans[0]
	assert.Equal(t, instrument.SpanName, ok.Name)
	assert.Equal(t, codes.Ok, ok.Status.Code)
	assert.Len(t, ok.Events, 4)
	attrs := map[string]int64{}
	for _, kv := range ok.Attributes {
		attrs[string(kv.Key)] = kv.Value.AsInt64()
	}
	assert.Equal(t, map[string]int64{
		string(instrument.AttrNodes):  4,
		string(instrument.AttrEdges):  2,
		string(instrument.AttrPasses): 4,
	}, attrs)

	bad := spans[1]
	assert.Equal(t, codes.Error, bad.Status.Code)
	assert.Equal(t, "bellmanford: negative cycle detected at (v0 -> v1)", bad.Status.Description)
	// Four pass events plus the recorded exception.
	assert.Len(t, bad.Events, 5)
}

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, _ = bellmanford.BellmanFord[string, float64](cyclic(), "v0", bellmanford.WithObserver(instrument.NewLogObserver(l)))

	out := buf.String()
	assert.Contains(t, out, "msg=bellmanford.start nodes=4 edges=4")
	assert.Equal(t, 4, strings.Count(out, "msg=bellmanford.pass"))
	assert.Contains(t, out, "level=WARN msg=bellmanford.finish passes=4")
}

type counting struct{ starts, passes, finishes int }

func (c *counting) Start(int, int)    { c.starts++ }
func (c *counting) Pass(int, int)     { c.passes++ }
func (c *counting) Finish(int, error) { c.finishes++ }

func TestMulti(t *testing.T) {
	a, b := &counting{}, &counting{}
	_, err := bellmanford.BellmanFord[string, float64](acyclic(), "v0",
		bellmanford.WithObserver(instrument.Multi(a, nil, b)))
	require.NoError(t, err)

	for _, c := range []*counting{a, b} {
		assert.Equal(t, counting{starts: 1, passes: 4, finishes: 1}, *c)
	}
}
