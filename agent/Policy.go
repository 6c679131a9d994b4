// Package agent implements policies that select actions in an
// environment
package agent

import (
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/jitterbug/timestep"
)

// Policy represents a policy that an agent can have.
//
// Policies determine how agents select actions. A Policy does not
// learn, it only maps timesteps to actions.
type Policy interface {
	SelectAction(t timestep.TimeStep) *mat.VecDense
}
