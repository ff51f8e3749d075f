// Package harness compares algorithm configurations across samples and
// noise levels. Every (sample, algorithm, sigma) cell is run a fixed
// number of times with per-repeat seeds derived from one base seed, so
// a whole comparison is reproducible. Cells execute concurrently; the
// solvers themselves remain single-threaded.
package harness

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/k3ap/cooperative-localization/network"
	"github.com/k3ap/cooperative-localization/point"
	"github.com/k3ap/cooperative-localization/score"
	"github.com/k3ap/cooperative-localization/solver"
)

// DefaultRepeats is used when Config.Repeats is not positive.
const DefaultRepeats = 50

// ErrNoAgents is returned when a sample contains no agent nodes.
var ErrNoAgents = errors.New("harness: sample has no agents")

// SolverSpec names an algorithm and its iteration budget.
type SolverSpec struct {
	Name       string
	Iterations int
}

// ParseSolverSpec parses "name" or "name:iterations".
func ParseSolverSpec(s string) (SolverSpec, error) {
	name, itstr, found := strings.Cut(s, ":")
	spec := SolverSpec{Name: name}
	if !found {
		return spec, nil
	}
	iterations, err := strconv.Atoi(itstr)
	if err != nil || iterations <= 0 {
		return SolverSpec{}, fmt.Errorf("harness: bad iteration count in %q", s)
	}
	spec.Iterations = iterations
	return spec, nil
}

// String formats the spec the way ParseSolverSpec reads it.
func (s SolverSpec) String() string {
	if s.Iterations > 0 {
		return fmt.Sprintf("%s:%d", s.Name, s.Iterations)
	}
	return s.Name
}

// Config describes a comparison grid.
type Config struct {
	Solvers     []SolverSpec
	Files       []string
	Sigmas      []float64
	Repeats     int
	Visibility  float64
	Seed        int64
	Parallelism int
}

func (c Config) repeats() int {
	if c.Repeats <= 0 {
		return DefaultRepeats
	}
	return c.Repeats
}

func (c Config) parallelism() int {
	if c.Parallelism <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Parallelism
}

// Row is the aggregated outcome of one grid cell.
type Row struct {
	Sample  string
	Solver  string
	Sigma   float64
	RMSE    float64
	Seconds float64
}

// Run executes the whole grid and returns one row per cell, in
// deterministic grid order (files outermost, sigmas innermost)
// regardless of completion order.
func Run(ctx context.Context, cfg Config, log *slog.Logger) ([]Row, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	total := len(cfg.Files) * len(cfg.Solvers) * len(cfg.Sigmas)
	rows := make([]Row, total)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.parallelism())

	cell := 0
	for _, file := range cfg.Files {
		for _, spec := range cfg.Solvers {
			for _, sigma := range cfg.Sigmas {
				i := cell
				cell++
				file, spec, sigma := file, spec, sigma
				// Independent seed stream per cell.
				seed := cfg.Seed + int64(i)*1_000_003

				eg.Go(func() error {
					row, err := runCell(ctx, cfg, file, spec, sigma, seed, log)
					if err != nil {
						return err
					}
					rows[i] = row
					return nil
				})
			}
		}
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func runCell(ctx context.Context, cfg Config, file string, spec SolverSpec, sigma float64, seed int64, log *slog.Logger) (Row, error) {
	runID := uuid.NewString()

	truths, err := point.ReadFile(file)
	if err != nil {
		return Row{}, err
	}

	agents := 0
	for _, tr := range truths {
		if tr.Type() == point.Agent {
			agents++
		}
	}
	if agents == 0 {
		return Row{}, fmt.Errorf("%w: %s", ErrNoAgents, file)
	}

	s, err := solver.New(spec.Name)
	if err != nil {
		return Row{}, err
	}

	points := point.Restrict(truths)
	repeats := cfg.repeats()

	var totalSq float64
	var totalTime time.Duration

	for r := 0; r < repeats; r++ {
		if err := ctx.Err(); err != nil {
			return Row{}, err
		}

		g, err := network.Build(truths, network.Config{
			Sigma:      sigma,
			Visibility: cfg.Visibility,
			Rand:       network.NewRand(seed + 2*int64(r)),
		})
		if err != nil {
			return Row{}, err
		}

		start := time.Now()
		res, err := s.Solve(points, g, solver.Config{
			Iterations: spec.Iterations,
			Rand:       network.NewRand(seed + 2*int64(r) + 1),
			Logger:     log,
		})
		if err != nil {
			return Row{}, fmt.Errorf("harness: %s on %s: %w", spec, file, err)
		}
		totalTime += time.Since(start)

		errs, err := score.PerAgent(truths, res.Estimate)
		if err != nil {
			return Row{}, err
		}
		for _, e := range errs {
			totalSq += e * e
		}
	}

	row := Row{
		Sample:  file,
		Solver:  spec.String(),
		Sigma:   sigma,
		RMSE:    math.Sqrt(totalSq / float64(repeats) / float64(agents)),
		Seconds: totalTime.Seconds() / float64(repeats),
	}

	log.Info("cell completed",
		"run", runID,
		"sample", file,
		"solver", spec.String(),
		"sigma", sigma,
		"rmse", row.RMSE,
	)
	return row, nil
}
