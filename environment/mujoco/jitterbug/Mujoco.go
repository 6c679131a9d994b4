package jitterbug

import (
	"fmt"

	"github.com/samuelfneumann/jitterbug/environment/mujoco/internal/mujocoenv"
	ts "github.com/samuelfneumann/jitterbug/timestep"
)

// ErrUnavailable is returned by NewMujoco when MuJoCo support was not
// compiled in
var ErrUnavailable = mujocoenv.ErrUnavailable

// NewMujoco returns a new Jitterbug environment simulated by MuJoCo,
// loading the model from the MJCF file at modelPath. MuJoCo support
// requires building with the mujoco build tag; otherwise NewMujoco
// returns an error wrapping ErrUnavailable.
func NewMujoco(task *Task, modelPath string, discount float64,
	opts ...Option) (*Jitterbug, ts.TimeStep, error) {
	m, err := mujocoenv.NewMujocoEnv(modelPath)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("newMujoco: %w", err)
	}

	j, step, err := NewEnv(task, &mujocoSim{m}, discount, opts...)
	if err != nil {
		m.Close()
		return nil, ts.TimeStep{}, fmt.Errorf("newMujoco: %w", err)
	}
	return j, step, nil
}

// mujocoSim adapts a MujocoEnv to the Simulator interface
type mujocoSim struct {
	*mujocoenv.MujocoEnv
}

func (m *mujocoSim) ResetContext(edit func(Model) error) error {
	return m.MujocoEnv.ResetContext(func(e *mujocoenv.Editor) error {
		return edit(e)
	})
}
