package agent

import (
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/jitterbug/timestep"
)

// DemoAction is the constant motor command of the demonstration policy
const DemoAction = -0.8

// Constant is a Policy that always selects the same action
type Constant struct {
	action *mat.VecDense
}

// NewConstant returns a new Constant policy selecting action
func NewConstant(action []float64) *Constant {
	a := make([]float64, len(action))
	copy(a, action)
	return &Constant{mat.NewVecDense(len(a), a)}
}

// SelectAction returns a copy of the constant action
func (c *Constant) SelectAction(timestep.TimeStep) *mat.VecDense {
	return mat.VecDenseCopyOf(c.action)
}
