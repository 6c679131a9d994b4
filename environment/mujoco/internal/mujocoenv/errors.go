// Package mujocoenv wraps a MuJoCo model and its simulation data,
// giving named access to the simulation state. The binding uses cgo
// and is only compiled with the mujoco build tag. Without the tag,
// NewMujocoEnv returns ErrUnavailable.
package mujocoenv

import (
	"errors"
	"fmt"
)

// ErrUnavailable is returned when MuJoCo support was not compiled in
var ErrUnavailable = errors.New("mujoco support not compiled in, " +
	"rebuild with -tags mujoco")

// ErrNoSuchName is returned when a named model element does not exist
var ErrNoSuchName = errors.New("no such name in model")

func noSuchName(kind, name string) error {
	return fmt.Errorf("%w: %v %q", ErrNoSuchName, kind, name)
}

// jointWidths returns the number of generalized positions and
// velocities of a MuJoCo joint type (mjtJoint)
func jointWidths(jointType int) (nq, nv int) {
	switch jointType {
	case 0: // mjJNT_FREE
		return 7, 6
	case 1: // mjJNT_BALL
		return 4, 3
	default: // mjJNT_SLIDE, mjJNT_HINGE
		return 1, 1
	}
}
