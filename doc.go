// Package coloc implements cooperative localization: estimating the
// unknown positions of mobile agent nodes from noisy pairwise distance
// measurements to fixed anchor nodes and to other agents, where two
// nodes can only measure each other within a visibility limit.
//
// # Quick Start
//
//	truths, err := point.ReadFile("samples/sample1.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := coloc.Solve(truths, "leastsquarescoop",
//	    coloc.WithSigma(0.05),
//	    coloc.WithVisibility(5),
//	    coloc.WithIterations(100),
//	    coloc.WithSeed(1),
//	)
//
// The result holds one estimated position per input node, in input
// order, anchors pinned to their true coordinates. Iterative
// algorithms can also expose every refinement step:
//
//	frames, err := coloc.Animate(truths, "leastsquarescoop", coloc.WithSeed(1))
//
// # Algorithms
//
// Built-in algorithms are registered by name:
//
//   - leastsquares: anchor-only least squares, non-cooperative
//   - leastsquarescoop: cooperative least squares, iterative
//   - mds: multidimensional scaling, 2D only
//
// Additional algorithms implement solver.Solver (and optionally
// solver.Animator) and register through solver.Register.
//
// # Determinism
//
// All randomness — measurement noise and algorithm initialization — is
// drawn from seedable Mersenne Twister sources. With WithSeed set, two
// runs over the same input are bit-identical.
package coloc
