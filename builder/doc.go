// Package builder generates deterministic core.Graph fixtures for tests,
// benchmarks and demos of the shortest-path engine.
//
// Usage:
//
//	g, err := builder.BuildGraph(
//	    nil,                                   // core options (directed by default)
//	    []builder.BuilderOption{
//	        builder.WithSeed(42),
//	        builder.WithIDPrefix("v"),
//	        builder.WithWeightFn(builder.IntegerWeightFn(-2, 9)),
//	    },
//	    builder.RandomSparse(50, 0.1),
//	)
//
// Constructors:
//
//	Path(n)            0→1→…→n-1                  n ≥ 2
//	Cycle(n)           0→1→…→n-1→0                n ≥ 2
//	Complete(n)        every i→j, i≠j             n ≥ 1
//	RandomSparse(n,p)  each i→j with probability p   requires an RNG
//
// Constructors compose: later constructors see the vertices and edges of
// earlier ones, and vertex IDs are shared through the ID scheme, so
// BuildGraph(nil, opts, Path(4), Cycle(3)) overlays a triangle on a path.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource, and
// wrapped core errors (e.g. core.ErrMultiEdgeNotAllowed when constructors
// overlap on a simple graph).
package builder
