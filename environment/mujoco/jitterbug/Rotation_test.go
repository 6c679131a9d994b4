package jitterbug

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		angle, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{math.Pi / 2, math.Pi / 2},
		{-math.Pi / 2, -math.Pi / 2},
	}

	for _, test := range tests {
		if got := NormalizeAngle(test.angle); got != test.want {
			t.Errorf("normalizeAngle(%v): have(%v) want(%v)", test.angle,
				got, test.want)
		}
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		angle := (rng.Float64() - 0.5) * 40 * math.Pi
		got := NormalizeAngle(angle)

		if got <= -math.Pi || got > math.Pi {
			t.Fatalf("normalizeAngle(%v): %v outside (-π, π]", angle, got)
		}
		if math.Abs(math.Cos(got)-math.Cos(angle)) > 1e-9 ||
			math.Abs(math.Sin(got)-math.Sin(angle)) > 1e-9 {
			t.Fatalf("normalizeAngle(%v): %v is not the same direction",
				angle, got)
		}
	}
}

func TestRotationMatrixIdentity(t *testing.T) {
	r := RotationMatrix(quat.Number{Real: 1})
	if !mat.Equal(r, mat.NewDiagDense(3, []float64{1, 1, 1})) {
		t.Errorf("rotationMatrix: have %v want identity", mat.Formatted(r))
	}
}

func TestRotationMatrixAboutZ(t *testing.T) {
	// The body's X axis should point along world +Y
	r := RotationMatrix(YawQuat(math.Pi / 2))

	want := mat.NewDense(3, 3, []float64{
		0, -1, 0,
		1, 0, 0,
		0, 0, 1,
	})
	if !mat.EqualApprox(r, want, 1e-12) {
		t.Errorf("rotationMatrix: \nhave\n%v\nwant\n%v", mat.Formatted(r),
			mat.Formatted(want))
	}
}

func TestYaw(t *testing.T) {
	for _, yaw := range []float64{0, 0.3, 1, math.Pi / 2, 3, -0.3, -2.5} {
		if got := Yaw(YawQuat(yaw)); math.Abs(got-yaw) > 1e-12 {
			t.Errorf("yaw(yawQuat(%v)): have(%v)", yaw, got)
		}
	}

	// Yaw ignores tilt about the body's X axis
	tilted := quat.Mul(YawQuat(1), quat.Number{
		Real: math.Cos(0.2),
		Imag: math.Sin(0.2),
	})
	if got := Yaw(tilted); math.Abs(got-1) > 1e-12 {
		t.Errorf("yaw(tilted): have(%v) want(1)", got)
	}
}
