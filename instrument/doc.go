// Package instrument provides bellmanford.Observer implementations for
// Prometheus metrics, OpenTelemetry tracing and slog logging.
//
// Collectors are long-lived and safe for concurrent use; each call to
// Observer(...) returns a fresh per-run observer, so several BellmanFord
// runs may share one Metrics or Tracer concurrently:
//
//	reg := prometheus.NewRegistry()
//	metrics := instrument.NewMetrics(reg)
//	tracer := instrument.NewTracer(otel.Tracer("bfpath"))
//
//	dist, err := bellmanford.BellmanFord[string, float64](g, "v0",
//	    bellmanford.WithObserver(instrument.Multi(
//	        metrics.Observer(),
//	        tracer.Observer(ctx),
//	        instrument.NewLogObserver(slog.Default()),
//	    )),
//	)
//
// Metrics exposed (namespace "bfpath", subsystem "bellmanford"):
//
//	runs_total{outcome}         counter   outcome = "ok" | "negative_cycle"
//	passes_total                counter   relaxation passes executed
//	relaxations_total           counter   distance updates performed
//	run_duration_seconds        histogram wall time from Start to Finish
//	last_run_nodes / _edges     gauge     size of the most recent graph
package instrument
