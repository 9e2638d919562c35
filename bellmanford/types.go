package bellmanford

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by the bellmanford package.
var (
	// ErrNegativeCycle indicates that a cycle of negative total weight is
	// reachable from the source, so shortest distances are undefined.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle detected")

	// ErrInvariantViolated is returned by Verify when a distance map does not
	// satisfy dist[v] <= dist[u] + w for some edge with a reachable source.
	ErrInvariantViolated = errors.New("bellmanford: relaxed-edge invariant violated")
)

// Weight is the set of numeric types usable as edge weights: totally
// ordered, closed under addition, with a representable infinity.
type Weight interface {
	constraints.Signed | constraints.Float
}

// Edge is a directed weighted arc From→To.
type Edge[N comparable, W Weight] struct {
	From   N
	To     N
	Weight W
}

// Graph is the capability set the engine consumes.
//
// Nodes enumerates every node identifier once. NodeCount bounds the number of
// relaxation passes. EachEdge enumerates every directed edge; it must be
// repeatable and stable while BellmanFord runs.
type Graph[N comparable, W Weight] interface {
	Nodes() []N
	NodeCount() int
	EachEdge(fn func(from, to N, weight W))
}

// NegativeCycleError reports the witness edge at which the verify scan found
// a still-relaxable edge. It matches ErrNegativeCycle under errors.Is.
type NegativeCycleError[N comparable] struct {
	From N
	To   N
}

// Error implements error.
func (e *NegativeCycleError[N]) Error() string {
	return fmt.Sprintf("%s at (%v -> %v)", ErrNegativeCycle.Error(), e.From, e.To)
}

// Is reports whether target is ErrNegativeCycle.
func (e *NegativeCycleError[N]) Is(target error) bool {
	return target == ErrNegativeCycle
}

// Infinity returns the "unreachable" sentinel for W: +Inf for floating point
// types and the maximum representable value for signed integers.
func Infinity[W Weight]() W {
	var w W
	v := reflect.ValueOf(&w).Elem()
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		v.SetFloat(math.Inf(1))
	default:
		// Signed integer of v.Type().Bits() width.
		v.SetInt(math.MaxInt64 >> (64 - v.Type().Bits()))
	}

	return w
}

// minimum returns the smallest value of W: -Inf for floating point types and
// the minimum representable value for signed integers.
func minimum[W Weight]() W {
	var w W
	v := reflect.ValueOf(&w).Elem()
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		v.SetFloat(math.Inf(-1))
	default:
		v.SetInt(math.MinInt64 >> (64 - v.Type().Bits()))
	}

	return w
}

// IsInf reports whether w is the unreachable sentinel (or beyond it).
func IsInf[W Weight](w W) bool {
	return w >= Infinity[W]()
}

// Observer receives lifecycle notifications from a single BellmanFord run.
// All calls happen on the goroutine that invoked BellmanFord.
type Observer interface {
	// Start is called once, after initialization.
	Start(nodes, edges int)
	// Pass is called after each of the |V| relaxation passes (1-based).
	Pass(pass, relaxed int)
	// Finish is called once with the number of passes run and the result error.
	Finish(passes int, err error)
}

type nopObserver struct{}

func (nopObserver) Start(int, int)    {}
func (nopObserver) Pass(int, int)     {}
func (nopObserver) Finish(int, error) {}

// Options configures a BellmanFord run.
type Options struct {
	// Workers is the number of goroutines relaxing edges within one pass.
	// Values ≤ 1 select the sequential engine.
	Workers int

	// Observer receives run notifications. Never nil after DefaultOptions.
	Observer Observer

	// OnPass is called after each pass with its 1-based index and the number
	// of distance updates it performed.
	OnPass func(pass, relaxed int)
}

// Option represents a functional option for configuring BellmanFord.
type Option func(*Options)

// DefaultOptions returns sequential execution with no-op hooks.
func DefaultOptions() Options {
	return Options{
		Workers:  1,
		Observer: nopObserver{},
		OnPass:   func(int, int) {},
	}
}

// WithWorkers relaxes each pass with n goroutines. n ≤ 1 means sequential.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.Workers = n
	}
}

// WithObserver attaches an Observer. A nil observer is ignored.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithOnPass registers a per-pass callback. A nil fn is ignored.
func WithOnPass(fn func(pass, relaxed int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPass = fn
		}
	}
}
