package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/bfpath/bellmanford"
	"github.com/katalvlaran/bfpath/config"
	"github.com/katalvlaran/bfpath/core"
	"github.com/katalvlaran/bfpath/instrument"
)

// referenceGraph returns v0→v1 (2.2), v1→v2 (2.4), v2→v0 (-5.3), v3→v2 (-1.0).
// The acyclic variant keeps only the first two edges; v3 stays isolated.
func referenceGraph(acyclic bool) (*core.Graph, error) {
	g := core.NewGraph()
	for _, v := range []string{"v0", "v1", "v2", "v3"} {
		if err := g.AddVertex(v); err != nil {
			return nil, err
		}
	}

	type arc struct {
		from, to string
		w        float64
	}
	arcs := []arc{{"v0", "v1", 2.2}, {"v1", "v2", 2.4}}
	if !acyclic {
		arcs = append(arcs, arc{"v2", "v0", -5.3}, arc{"v3", "v2", -1.0})
	}
	for _, a := range arcs {
		if _, err := g.AddEdge(a.from, a.to, a.w); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// run executes one engine call with the observers cfg asks for and writes the
// result to out. A negative cycle is printed and returned.
func run(ctx context.Context, out io.Writer, cfg config.Config, logger *slog.Logger) error {
	ctx = contextOrBackground(ctx)

	g, err := referenceGraph(cfg.Acyclic)
	if err != nil {
		return fmt.Errorf("build reference graph: %w", err)
	}

	observers := []bellmanford.Observer{instrument.NewLogObserver(logger)}

	var reg *prometheus.Registry
	if cfg.Metrics {
		reg = prometheus.NewRegistry()
		observers = append(observers, instrument.NewMetrics(reg).Observer())
	}

	var (
		exporter *tracetest.InMemoryExporter
		tp       *sdktrace.TracerProvider
	)
	if cfg.Trace {
		exporter = tracetest.NewInMemoryExporter()
		tp = sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
		defer func() { _ = tp.Shutdown(ctx) }()
		tr := instrument.NewTracer(tp.Tracer(instrument.TracerName))
		observers = append(observers, tr.Observer(ctx))
	}

	logger.Debug("run.start", "source", cfg.Source, "workers", cfg.Workers, "acyclic", cfg.Acyclic)
	dist, runErr := bellmanford.BellmanFord[string, float64](g, cfg.Source,
		bellmanford.WithWorkers(cfg.Workers),
		bellmanford.WithObserver(instrument.Multi(observers...)),
	)

	if runErr != nil {
		fmt.Fprintln(out, runErr)
	} else {
		printDistances(out, dist)
		if logger.Enabled(ctx, slog.LevelDebug) {
			if verr := bellmanford.Verify[string, float64](g, dist); verr != nil {
				logger.Error("run.verify", "error", verr)
			} else {
				logger.Debug("run.verify", "ok", true)
			}
		}
	}

	if exporter != nil {
		printSpans(out, exporter.GetSpans())
	}
	if reg != nil {
		if err := printMetrics(out, reg); err != nil {
			return err
		}
	}

	return runErr
}

func printDistances(out io.Writer, dist map[string]float64) {
	for _, v := range slices.Sorted(maps.Keys(dist)) {
		d := dist[v]
		if bellmanford.IsInf(d) {
			fmt.Fprintf(out, "δ(%s) = ∞\n", v)
			continue
		}
		fmt.Fprintf(out, "δ(%s) = %.1f\n", v, d)
	}
}

func printSpans(out io.Writer, spans tracetest.SpanStubs) {
	for _, s := range spans {
		fmt.Fprintf(out, "span %s status=%s events=%d duration=%s\n",
			s.Name, s.Status.Code, len(s.Events), s.EndTime.Sub(s.StartTime))
	}
}

func printMetrics(out io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}

	return nil
}
