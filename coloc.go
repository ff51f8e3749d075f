package coloc

import (
	"github.com/k3ap/cooperative-localization/network"
	"github.com/k3ap/cooperative-localization/point"
	"github.com/k3ap/cooperative-localization/runner"
	"github.com/k3ap/cooperative-localization/solver"

	// Register the built-in algorithms.
	_ "github.com/k3ap/cooperative-localization/solver/coop"
	_ "github.com/k3ap/cooperative-localization/solver/lsq"
	_ "github.com/k3ap/cooperative-localization/solver/mds"
)

// Solve builds a noisy measurement graph over truths and runs the
// named algorithm on it, returning one position estimate per node in
// input order.
func Solve(truths []point.Truth, algorithm string, optFns ...Option) (*solver.Result, error) {
	o := applyOptions(optFns)

	s, views, g, cfg, err := prepare(truths, algorithm, o)
	if err != nil {
		return nil, err
	}

	res, err := runner.Run(s, views, g, cfg)
	under := 0
	if res != nil {
		under = len(res.UnderDetermined)
	}
	o.logger.LogSolve(algorithm, len(truths), under, err)
	return res, err
}

// Animate is Solve for iterative algorithms: it returns every
// intermediate estimate, one frame per refinement step. Algorithms
// without intermediate state return ErrAnimateUnsupported.
func Animate(truths []point.Truth, algorithm string, optFns ...Option) ([]solver.Estimate, error) {
	o := applyOptions(optFns)

	s, views, g, cfg, err := prepare(truths, algorithm, o)
	if err != nil {
		return nil, err
	}

	frames, err := runner.Animate(s, views, g, cfg)
	o.logger.LogSolve(algorithm, len(truths), 0, err)
	return frames, err
}

// Algorithms returns the names of all registered algorithms, sorted.
func Algorithms() []string {
	return solver.Names()
}

func prepare(truths []point.Truth, algorithm string, o options) (solver.Solver, []point.Point, *network.Graph, solver.Config, error) {
	s, err := solver.New(algorithm)
	if err != nil {
		return nil, nil, nil, solver.Config{}, err
	}

	log := o.logger.WithAlgorithm(algorithm).WithSeed(o.seed)

	g, err := network.Build(truths, network.Config{
		Sigma:      o.sigma,
		Visibility: o.visibility,
		Rand:       network.NewRand(o.seed),
	})
	if err != nil {
		return nil, nil, nil, solver.Config{}, err
	}
	log.LogBuild(g.Len(), o.sigma, o.visibility, g.Connected())

	if !g.Connected() {
		log.Warn("measurement graph is disconnected", "nodes", g.Len())
	}
	for i, t := range truths {
		if t.Type() == point.Agent && !g.Localizable(i) {
			log.Warn("no anchor reachable from agent", "node", i)
		}
	}

	cfg := solver.Config{
		Iterations: o.iterations,
		Rand:       network.NewRand(o.seed + 1),
		Logger:     log.Logger,
	}
	return s, point.Restrict(truths), g, cfg, nil
}
