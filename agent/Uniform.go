package agent

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/jitterbug/environment"
	"github.com/samuelfneumann/jitterbug/timestep"
)

// Uniform is a Policy that selects actions uniformly at random within
// the bounds of an action specification. All action dimensions share
// a single source, so a seed determines the whole action sequence.
type Uniform struct {
	dims []distuv.Uniform
}

// NewUniform returns a new Uniform policy over the actions described
// by spec
func NewUniform(spec environment.Spec, seed uint64) (*Uniform, error) {
	if spec.Type != environment.Action {
		return nil, fmt.Errorf("newUniform: expected an action spec, "+
			"have type %v", spec.Type)
	}

	source := rand.NewSource(seed)
	dims := make([]distuv.Uniform, spec.Shape.Len())
	for i := range dims {
		low, high := spec.LowerBound.AtVec(i), spec.UpperBound.AtVec(i)
		if math.IsInf(low, 0) || math.IsInf(high, 0) || low > high {
			return nil, fmt.Errorf("newUniform: action dimension %v has "+
				"invalid bounds [%v, %v]", i, low, high)
		}
		dims[i] = distuv.Uniform{Min: low, Max: high, Src: source}
	}

	return &Uniform{dims}, nil
}

// SelectAction samples a new action
func (u *Uniform) SelectAction(timestep.TimeStep) *mat.VecDense {
	action := mat.NewVecDense(len(u.dims), nil)
	for i := range u.dims {
		action.SetVec(i, u.dims[i].Rand())
	}
	return action
}
