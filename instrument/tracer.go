package instrument

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/bfpath/bellmanford"
)

// TracerName is the instrumentation scope used when NewTracer gets nil.
const TracerName = "github.com/katalvlaran/bfpath/bellmanford"

// SpanName is the name of the span covering one run.
const SpanName = "bellmanford.run"

// Span attribute keys.
const (
	AttrNodes   = attribute.Key("bellmanford.nodes")
	AttrEdges   = attribute.Key("bellmanford.edges")
	AttrPass    = attribute.Key("bellmanford.pass")
	AttrRelaxed = attribute.Key("bellmanford.relaxed")
	AttrPasses  = attribute.Key("bellmanford.passes")
)

// Tracer turns each run into one OpenTelemetry span with a "pass" event per
// relaxation pass.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer wraps t; nil selects otel.Tracer(TracerName) from the global provider.
func NewTracer(t trace.Tracer) *Tracer {
	if t == nil {
		t = otel.Tracer(TracerName)
	}

	return &Tracer{tracer: t}
}

// Observer returns a per-run observer whose span is a child of ctx's span.
func (t *Tracer) Observer(ctx context.Context) bellmanford.Observer {
	if ctx == nil {
		ctx = context.Background()
	}

	return &traceRun{tracer: t.tracer, ctx: ctx}
}

type traceRun struct {
	tracer trace.Tracer
	ctx    context.Context
	span   trace.Span
}

func (r *traceRun) Start(nodes, edges int) {
	_, r.span = r.tracer.Start(r.ctx, SpanName, trace.WithAttributes(
		AttrNodes.Int(nodes),
		AttrEdges.Int(edges),
	))
}

func (r *traceRun) Pass(pass, relaxed int) {
	if r.span == nil {
		return
	}
	r.span.AddEvent("pass", trace.WithAttributes(
		AttrPass.Int(pass),
		AttrRelaxed.Int(relaxed),
	))
}

func (r *traceRun) Finish(passes int, err error) {
	if r.span == nil {
		return
	}
	r.span.SetAttributes(AttrPasses.Int(passes))
	if err != nil {
		r.span.RecordError(err)
		r.span.SetStatus(codes.Error, err.Error())
	} else {
		r.span.SetStatus(codes.Ok, "")
	}
	r.span.End()
}
