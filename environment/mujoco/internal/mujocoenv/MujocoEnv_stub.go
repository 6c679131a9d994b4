//go:build !mujoco

package mujocoenv

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"

	"github.com/samuelfneumann/jitterbug/environment"
)

// MujocoEnv is unavailable without the mujoco build tag
type MujocoEnv struct {
	Nu, Nv, Nq int
}

// NewMujocoEnv always returns ErrUnavailable
func NewMujocoEnv(string) (*MujocoEnv, error) {
	return nil, ErrUnavailable
}

func (m *MujocoEnv) JointQPos(string) ([]float64, error) { return nil, ErrUnavailable }
func (m *MujocoEnv) JointQVel(string) ([]float64, error) { return nil, ErrUnavailable }
func (m *MujocoEnv) GeomXPos(string) ([]float64, error)  { return nil, ErrUnavailable }
func (m *MujocoEnv) BodyXQuat(string) ([]float64, error) { return nil, ErrUnavailable }
func (m *MujocoEnv) BodyXMat(string) ([]float64, error)  { return nil, ErrUnavailable }

// Editor is unavailable without the mujoco build tag
type Editor struct{}

func (e *Editor) SetBodyXY(string, float64, float64) error { return ErrUnavailable }
func (e *Editor) SetBodyQuat(string, quat.Number) error    { return ErrUnavailable }
func (e *Editor) SetGeomAlpha(string, float64) error       { return ErrUnavailable }

func (m *MujocoEnv) ResetContext(func(*Editor) error) error { return ErrUnavailable }
func (m *MujocoEnv) Reset() error                           { return ErrUnavailable }
func (m *MujocoEnv) Timestep() float64                      { return 0 }
func (m *MujocoEnv) Close()                                 {}

func (m *MujocoEnv) DoSimulation(*mat.VecDense, int) error { return ErrUnavailable }

func (m *MujocoEnv) ActionSpec() environment.Spec {
	empty := mat.NewVecDense(1, nil)
	return environment.NewSpec(empty, environment.Action, empty, empty,
		environment.Continuous)
}
