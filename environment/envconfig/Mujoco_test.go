//go:build !mujoco

package envconfig

import (
	"errors"
	"testing"

	"github.com/samuelfneumann/jitterbug/environment/mujoco/jitterbug"
)

func TestCreateMujocoUnavailable(t *testing.T) {
	c := Default()
	c.ModelPath = "jitterbug.xml"

	if _, _, err := c.CreateMujoco(); !errors.Is(err, jitterbug.ErrUnavailable) {
		t.Errorf("createMujoco: have(%v) want(%v)", err,
			jitterbug.ErrUnavailable)
	}
}
