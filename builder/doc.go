// Package builder generates deterministic engine inputs: labelled graphs for
// the shortest-path engines, layered problems for multistage and symmetric
// cost matrices for tsp.
//
// Configuration follows the functional-options style:
//
//   - WithSeed / WithRand:   RNG for stochastic constructors.
//   - WithWeightFn:          per-edge (or per-pair) weight generator.
//   - WithIDScheme:          vertex labels (DefaultIDFn, ExcelColumnIDFn, ...).
//
// Graph topologies are Constructors composed by BuildGraph:
//
//	g, err := builder.BuildGraph(6,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(-2, 9))},
//	    builder.Path(), builder.RandomSparse(0.3))
//
// Guarantees:
//
//   - Determinism: same inputs, options, seed and constructor order ⇒ identical output.
//   - Option constructors panic on programmer error (nil RNG, nil WeightFn,
//     empty weight range); build functions return sentinel errors.
package builder
