// Package solver defines the contract between the localization engine
// and pluggable estimation algorithms, and the registry through which
// algorithms are looked up by name.
//
// Every algorithm implements Solver. Iterative algorithms additionally
// implement Animator, which exposes the refinement steps as a lazy
// sequence of estimate snapshots. Callers detect the capability with a
// type assertion rather than assuming it exists.
package solver

import (
	"fmt"
	"iter"
	"log/slog"
	"math"
	"math/rand"

	"github.com/k3ap/cooperative-localization/network"
	"github.com/k3ap/cooperative-localization/point"
)

// DefaultIterations is used when Config.Iterations is not positive.
const DefaultIterations = 100

// Estimate holds one estimated position per node, in input order.
type Estimate [][]float64

// NewEstimate allocates a zero estimate for n nodes of the given
// dimension.
func NewEstimate(n, dim int) Estimate {
	rows := make([][]float64, n)
	backing := make([]float64, n*dim)
	for i := range rows {
		rows[i] = backing[i*dim : (i+1)*dim : (i+1)*dim]
	}
	return rows
}

// Clone returns a deep copy of the estimate.
func (e Estimate) Clone() Estimate {
	if e == nil {
		return nil
	}
	out := make(Estimate, len(e))
	for i, row := range e {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// EqualWithin reports whether two estimates have the same shape and
// coordinates within tol.
func (e Estimate) EqualWithin(o Estimate, tol float64) bool {
	if len(e) != len(o) {
		return false
	}
	for i, row := range e {
		if len(row) != len(o[i]) {
			return false
		}
		for k, x := range row {
			if math.Abs(x-o[i][k]) > tol {
				return false
			}
		}
	}
	return true
}

// Config carries the per-run algorithm settings.
type Config struct {
	// Iterations bounds iterative refinement. Non-positive values fall
	// back to DefaultIterations.
	Iterations int

	// Rand is used by algorithms that need random initialization. If
	// nil, an unseeded source is used; pass network.NewRand for
	// reproducible runs.
	Rand *rand.Rand

	// Logger receives per-node degeneracy events at debug level. If
	// nil, logging is disabled.
	Logger *slog.Logger
}

// IterationCount returns the effective iteration bound.
func (c Config) IterationCount() int {
	if c.Iterations <= 0 {
		return DefaultIterations
	}
	return c.Iterations
}

// Log returns a usable logger, substituting a discarding one when none
// is configured.
func (c Config) Log() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// UnderDetermined records an agent that had fewer usable measurements
// than a unique least-squares solution requires. The algorithm's
// documented fallback was applied for that node.
type UnderDetermined struct {
	// Node is the input-order index of the agent.
	Node int
	// Have is the number of usable reference measurements.
	Have int
	// Need is the minimum required for a well-posed solve (dim+1).
	Need int
}

func (u UnderDetermined) String() string {
	return fmt.Sprintf("node %d: %d of %d required measurements", u.Node, u.Have, u.Need)
}

// Result is the outcome of a one-shot solve.
type Result struct {
	// Estimate holds one position per input node, anchors pinned to
	// their true coordinates.
	Estimate Estimate

	// UnderDetermined lists agents that could not be uniquely solved.
	UnderDetermined []UnderDetermined
}

// Solver is the one-shot estimation capability every algorithm provides.
//
// Implementations must not mutate points, must return one estimate per
// input node in input order, and must pin anchors to their true
// coordinates exactly.
type Solver interface {
	// Name returns the registry name of the algorithm.
	Name() string

	// Solve produces the final position estimates for the given
	// measurement graph.
	Solve(points []point.Point, g *network.Graph, cfg Config) (*Result, error)
}

// Animator is the optional iterative capability. Animate returns a
// lazy, finite sequence of estimate snapshots, one per refinement step,
// exactly cfg.IterationCount() of them. Consumers may stop early by
// breaking out of the range loop; a fresh call restarts from the
// initial condition.
type Animator interface {
	Solver

	Animate(points []point.Point, g *network.Graph, cfg Config) iter.Seq[Estimate]
}

// PinAnchors copies every anchor's true coordinates into the estimate.
func PinAnchors(est Estimate, points []point.Point) {
	for i, p := range points {
		if coords, ok := p.Coords(); ok {
			copy(est[i], coords)
		}
	}
}
