package jitterbug

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/jitterbug/utils/floatutils"
)

// Pose is the position and orientation of a rigid body
type Pose struct {
	Position    *mat.VecDense // (x, y, z)
	Orientation quat.Number   // unit quaternion
}

// Vec returns the pose as the 7-vector (x, y, z, qw, qx, qy, qz)
func (p Pose) Vec() *mat.VecDense {
	q := p.Orientation
	return mat.NewVecDense(7, []float64{
		p.Position.AtVec(0), p.Position.AtVec(1), p.Position.AtVec(2),
		q.Real, q.Imag, q.Jmag, q.Kmag,
	})
}

// Velocity is the linear and angular velocity of a rigid body
type Velocity struct {
	Linear  *mat.VecDense
	Angular *mat.VecDense
}

// Vec returns the velocity as the 6-vector (linear xyz, angular xyz)
func (v Velocity) Vec() *mat.VecDense {
	out := mat.NewVecDense(6, nil)
	for i := 0; i < 3; i++ {
		out.SetVec(i, v.Linear.AtVec(i))
		out.SetVec(i+3, v.Angular.AtVec(i))
	}
	return out
}

// Kinematics derives the quantities the Jitterbug tasks are defined
// in terms of from the raw state of a Physics. Kinematics never
// changes the Physics it reads.
type Kinematics struct {
	Physics
}

// NewKinematics returns a Kinematics reading from p
func NewKinematics(p Physics) Kinematics {
	return Kinematics{p}
}

// RobotPose returns the pose of the Jitterbug's root body
func (k Kinematics) RobotPose() (Pose, error) {
	qpos, err := k.JointQPos(RootJoint)
	if err != nil {
		return Pose{}, fmt.Errorf("robotPose: %v", err)
	}
	if len(qpos) != 7 {
		return Pose{}, fmt.Errorf("robotPose: expected 7 root positions, "+
			"have(%v)", len(qpos))
	}

	return Pose{
		Position:    mat.NewVecDense(3, []float64{qpos[0], qpos[1], qpos[2]}),
		Orientation: quatFromSlice(qpos[3:]),
	}, nil
}

// RobotVelocity returns the velocity of the Jitterbug's root body
func (k Kinematics) RobotVelocity() (Velocity, error) {
	qvel, err := k.JointQVel(RootJoint)
	if err != nil {
		return Velocity{}, fmt.Errorf("robotVelocity: %v", err)
	}
	if len(qvel) != 6 {
		return Velocity{}, fmt.Errorf("robotVelocity: expected 6 root "+
			"velocities, have(%v)", len(qvel))
	}

	return Velocity{
		Linear:  mat.NewVecDense(3, []float64{qvel[0], qvel[1], qvel[2]}),
		Angular: mat.NewVecDense(3, []float64{qvel[3], qvel[4], qvel[5]}),
	}, nil
}

// RobotYaw returns the heading of the Jitterbug's face about the world
// Z axis. Zero yaw faces +X.
func (k Kinematics) RobotYaw() (float64, error) {
	pose, err := k.RobotPose()
	if err != nil {
		return 0, fmt.Errorf("robotYaw: %v", err)
	}
	return Yaw(pose.Orientation) - RobotYawOffset, nil
}

// TargetPose returns the pose of the target marker
func (k Kinematics) TargetPose() (Pose, error) {
	pos, err := k.GeomXPos(TargetGeom)
	if err != nil {
		return Pose{}, fmt.Errorf("targetPose: %v", err)
	}
	q, err := k.BodyXQuat(TargetBody)
	if err != nil {
		return Pose{}, fmt.Errorf("targetPose: %v", err)
	}
	if len(pos) != 3 || len(q) != 4 {
		return Pose{}, fmt.Errorf("targetPose: expected 3 positions and 4 "+
			"orientation values, have(%v, %v)", len(pos), len(q))
	}

	return Pose{
		Position:    mat.NewVecDense(3, []float64{pos[0], pos[1], pos[2]}),
		Orientation: quatFromSlice(q),
	}, nil
}

// TargetYaw returns the heading of the target about the world Z axis
func (k Kinematics) TargetYaw() (float64, error) {
	pose, err := k.TargetPose()
	if err != nil {
		return 0, fmt.Errorf("targetYaw: %v", err)
	}
	return Yaw(pose.Orientation), nil
}

// TargetHeading returns the global heading of the target as the unit
// 2-vector (cos(yaw), sin(yaw))
func (k Kinematics) TargetHeading() (*mat.VecDense, error) {
	yaw, err := k.TargetYaw()
	if err != nil {
		return nil, fmt.Errorf("targetHeading: %v", err)
	}
	return heading(yaw), nil
}

// RobotToTarget returns the vector from the Jitterbug to the target
func (k Kinematics) RobotToTarget() (*mat.VecDense, error) {
	robot, err := k.RobotPose()
	if err != nil {
		return nil, fmt.Errorf("robotToTarget: %v", err)
	}
	target, err := k.TargetPose()
	if err != nil {
		return nil, fmt.Errorf("robotToTarget: %v", err)
	}

	v := mat.NewVecDense(3, nil)
	v.SubVec(target.Position, robot.Position)
	return v, nil
}

// RelativeYaw returns the angle from the Jitterbug's heading to the
// target's heading on the range (-π, π]
func (k Kinematics) RelativeYaw() (float64, error) {
	target, err := k.TargetYaw()
	if err != nil {
		return 0, fmt.Errorf("relativeYaw: %v", err)
	}
	robot, err := k.RobotYaw()
	if err != nil {
		return 0, fmt.Errorf("relativeYaw: %v", err)
	}
	return NormalizeAngle(target - robot), nil
}

// RelativeHeading returns the target heading relative to the Jitterbug
// as the unit 2-vector (cos(θ), sin(θ)), θ = RelativeYaw()
func (k Kinematics) RelativeHeading() (*mat.VecDense, error) {
	yaw, err := k.RelativeYaw()
	if err != nil {
		return nil, fmt.Errorf("relativeHeading: %v", err)
	}
	return heading(yaw), nil
}

// MotorPosition returns the angular position of the oscillating mass
func (k Kinematics) MotorPosition() (float64, error) {
	qpos, err := k.JointQPos(MotorJoint)
	if err != nil {
		return 0, fmt.Errorf("motorPosition: %v", err)
	}
	if len(qpos) != 1 {
		return 0, fmt.Errorf("motorPosition: expected a hinge joint, "+
			"have(%v) positions", len(qpos))
	}
	return qpos[0], nil
}

// MotorVelocity returns the angular velocity of the oscillating mass
func (k Kinematics) MotorVelocity() (float64, error) {
	qvel, err := k.JointQVel(MotorJoint)
	if err != nil {
		return 0, fmt.Errorf("motorVelocity: %v", err)
	}
	if len(qvel) != 1 {
		return 0, fmt.Errorf("motorVelocity: expected a hinge joint, "+
			"have(%v) velocities", len(qvel))
	}
	return qvel[0], nil
}

// Uprightness returns how well the Jitterbug's Z axis is aligned with
// the world Z axis, on [0, 1]. An upside down Jitterbug has
// uprightness 0.
func (k Kinematics) Uprightness() (float64, error) {
	xmat, err := k.BodyXMat(RobotBody)
	if err != nil {
		return 0, fmt.Errorf("uprightness: %v", err)
	}
	if len(xmat) != 9 {
		return 0, fmt.Errorf("uprightness: expected a 3x3 rotation "+
			"matrix, have(%v) values", len(xmat))
	}
	return Upright(xmat[8]), nil
}

// unitInterval bounds rewards and uprightness
var unitInterval = r1.Interval{Min: 0, Max: 1}

// Upright clamps the ZZ element of a body's rotation matrix to [0, 1]
func Upright(zz float64) float64 {
	if math.IsNaN(zz) {
		return 0
	}
	return floatutils.ClipInterval(zz, unitInterval)
}
