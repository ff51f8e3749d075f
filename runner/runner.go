// Package runner drives an algorithm over a prepared measurement graph.
// It owns only sequencing: one-shot solving, or materializing the
// snapshot sequence of an iterative algorithm. Algorithm internals stay
// inside the solver implementations.
package runner

import (
	"fmt"

	"github.com/k3ap/cooperative-localization/network"
	"github.com/k3ap/cooperative-localization/point"
	"github.com/k3ap/cooperative-localization/solver"
)

// Run executes a one-shot solve.
func Run(s solver.Solver, points []point.Point, g *network.Graph, cfg solver.Config) (*solver.Result, error) {
	res, err := s.Solve(points, g, cfg)
	if err != nil {
		return nil, fmt.Errorf("runner: %s: %w", s.Name(), err)
	}
	return res, nil
}

// Animate materializes the snapshot sequence of an iterative algorithm,
// one estimate per refinement step, cfg.IterationCount() in total.
// Algorithms without the iterative capability yield
// solver.ErrAnimateUnsupported.
func Animate(s solver.Solver, points []point.Point, g *network.Graph, cfg solver.Config) ([]solver.Estimate, error) {
	a, ok := s.(solver.Animator)
	if !ok {
		return nil, fmt.Errorf("runner: %s: %w", s.Name(), solver.ErrAnimateUnsupported)
	}

	frames := make([]solver.Estimate, 0, cfg.IterationCount())
	for e := range a.Animate(points, g, cfg) {
		frames = append(frames, e)
	}
	return frames, nil
}
