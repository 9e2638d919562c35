package instrument

import (
	"log/slog"

	"github.com/katalvlaran/bfpath/bellmanford"
)

// NewLogObserver reports runs to l: one debug record per pass, one info record
// on success and one warn record on a negative cycle. A nil l uses slog.Default().
func NewLogObserver(l *slog.Logger) bellmanford.Observer {
	if l == nil {
		l = slog.Default()
	}

	return &logRun{l: l}
}

type logRun struct {
	l *slog.Logger
}

func (r *logRun) Start(nodes, edges int) {
	r.l.Debug("bellmanford.start", "nodes", nodes, "edges", edges)
}

func (r *logRun) Pass(pass, relaxed int) {
	r.l.Debug("bellmanford.pass", "pass", pass, "relaxed", relaxed)
}

func (r *logRun) Finish(passes int, err error) {
	if err != nil {
		r.l.Warn("bellmanford.finish", "passes", passes, "error", err)
		return
	}
	r.l.Info("bellmanford.finish", "passes", passes)
}

// Multi fans notifications out to every non-nil observer, in order.
func Multi(observers ...bellmanford.Observer) bellmanford.Observer {
	out := make(multi, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			out = append(out, o)
		}
	}

	return out
}

type multi []bellmanford.Observer

func (m multi) Start(nodes, edges int) {
	for _, o := range m {
		o.Start(nodes, edges)
	}
}

func (m multi) Pass(pass, relaxed int) {
	for _, o := range m {
		o.Pass(pass, relaxed)
	}
}

func (m multi) Finish(passes int, err error) {
	for _, o := range m {
		o.Finish(passes, err)
	}
}
