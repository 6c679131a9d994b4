//go:build !mujoco

package mujocoenv

import (
	"errors"
	"testing"
)

func TestNewMujocoEnvUnavailable(t *testing.T) {
	m, err := NewMujocoEnv("jitterbug.xml")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("newMujocoEnv: have(%v) want(%v)", err, ErrUnavailable)
	}
	if m != nil {
		t.Errorf("newMujocoEnv: expected nil environment")
	}
}

func TestJointWidths(t *testing.T) {
	tests := []struct {
		jointType int
		nq, nv    int
	}{
		{0, 7, 6},
		{1, 4, 3},
		{2, 1, 1},
		{3, 1, 1},
	}
	for _, test := range tests {
		nq, nv := jointWidths(test.jointType)
		if nq != test.nq || nv != test.nv {
			t.Errorf("jointWidths(%v): have(%v, %v) want(%v, %v)",
				test.jointType, nq, nv, test.nq, test.nv)
		}
	}
}
