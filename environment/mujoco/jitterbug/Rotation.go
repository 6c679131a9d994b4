package jitterbug

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// RobotYawOffset is subtracted from the raw yaw of the Jitterbug body.
// The model faces the -Y direction of its local frame, so rotating
// by 90° clockwise aligns its face with the +X axis.
const RobotYawOffset = math.Pi / 2

// RotationMatrix returns the rotation matrix of the unit quaternion q.
// The layout matches MuJoCo's mju_quat2Mat: element (i, j) of the
// matrix is the i-th global coordinate of the body's j-th local axis.
func RotationMatrix(q quat.Number) *mat.Dense {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag

	ww, xx, yy, zz := w*w, x*x, y*y, z*z
	wx, wy, wz := w*x, w*y, w*z
	xy, xz, yz := x*y, x*z, y*z

	return mat.NewDense(3, 3, []float64{
		ww + xx - yy - zz, 2 * (xy - wz), 2 * (xz + wy),
		2 * (xy + wz), ww - xx + yy - zz, 2 * (yz - wx),
		2 * (xz - wy), 2 * (yz + wx), ww - xx - yy + zz,
	})
}

// Yaw returns the heading of the orientation q about the world Z axis,
// on the range [-π, π]
func Yaw(q quat.Number) float64 {
	r := RotationMatrix(q)
	return math.Atan2(r.At(1, 0), r.At(0, 0))
}

// YawQuat returns the quaternion of a rotation by yaw radians about
// the world Z axis
func YawQuat(yaw float64) quat.Number {
	return quat.Number{Real: math.Cos(yaw / 2), Kmag: math.Sin(yaw / 2)}
}

// NormalizeAngle maps angle onto (-π, π] by adding or subtracting
// whole turns. An angle of -π maps to π.
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle <= -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// heading returns the unit 2-vector (cos(yaw), sin(yaw))
func heading(yaw float64) *mat.VecDense {
	return mat.NewVecDense(2, []float64{math.Cos(yaw), math.Sin(yaw)})
}

// quatFromSlice converts a (w, x, y, z) slice to a quaternion
func quatFromSlice(q []float64) quat.Number {
	return quat.Number{Real: q[0], Imag: q[1], Jmag: q[2], Kmag: q[3]}
}
