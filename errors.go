package coloc

import (
	"github.com/k3ap/cooperative-localization/point"
	"github.com/k3ap/cooperative-localization/solver"
)

// Facade-level views of the error conditions callers most often branch
// on. They are the same values the subpackages return, so errors.Is
// works either way.
var (
	// ErrNoPoints is returned for an empty problem.
	ErrNoPoints = point.ErrNoPoints

	// ErrUnknownAlgorithm is returned when no algorithm is registered
	// under the requested name.
	ErrUnknownAlgorithm = solver.ErrUnknownSolver

	// ErrAnimateUnsupported is returned by Animate for algorithms that
	// only implement one-shot solving.
	ErrAnimateUnsupported = solver.ErrAnimateUnsupported
)
