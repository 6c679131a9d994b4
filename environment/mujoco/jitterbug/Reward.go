package jitterbug

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/jitterbug/utils/floatutils"
)

// MaxSpeedPerStep is the speed along the target direction at which
// the move_in_direction reward saturates
const MaxSpeedPerStep = 0.3

// FaceDirectionReward returns the reward for facing a direction
// relativeYaw radians away from the target direction. The reward is 1
// when facing the target direction and decreases to 0 when facing
// directly away from it.
//
// See https://www.desmos.com/calculator/iaczzkaplq for a plot.
func FaceDirectionReward(relativeYaw float64) float64 {
	return 2/(math.Abs(relativeYaw)/math.Pi+1) - 1
}

// PositionReward returns the reward for being distance away from the
// target. The reward is 1 at the target and asymptotes to 0 at an
// infinite distance.
//
// See https://www.desmos.com/calculator/cppbhrtxlj for a plot.
func PositionReward(distance float64) float64 {
	return 1 / (10*distance + 1)
}

// MoveInDirectionReward returns the reward for moving with planar
// velocity velocityXY when the target direction is heading. Only
// velocity along heading is rewarded, and the reward saturates at 1
// once that speed reaches MaxSpeedPerStep.
func MoveInDirectionReward(velocityXY, heading mat.Vector) float64 {
	speed := math.Max(0, mat.Dot(velocityXY, heading))
	return floatutils.ClipInterval(speed/MaxSpeedPerStep, unitInterval)
}

func faceDirectionReward(k Kinematics) (float64, error) {
	angle, err := k.RelativeYaw()
	if err != nil {
		return 0, fmt.Errorf("faceDirectionReward: %v", err)
	}
	return FaceDirectionReward(angle), nil
}

func positionReward(k Kinematics) (float64, error) {
	v, err := k.RobotToTarget()
	if err != nil {
		return 0, fmt.Errorf("positionReward: %v", err)
	}
	return PositionReward(mat.Norm(v, 2)), nil
}

// moveFromOriginReward is the position reward in reverse. The target
// stays at the origin in this task.
func moveFromOriginReward(k Kinematics) (float64, error) {
	r, err := positionReward(k)
	if err != nil {
		return 0, fmt.Errorf("moveFromOriginReward: %v", err)
	}
	return 1 - r, nil
}

func moveInDirectionReward(k Kinematics) (float64, error) {
	vel, err := k.RobotVelocity()
	if err != nil {
		return 0, fmt.Errorf("moveInDirectionReward: %v", err)
	}
	h, err := k.TargetHeading()
	if err != nil {
		return 0, fmt.Errorf("moveInDirectionReward: %v", err)
	}
	return MoveInDirectionReward(vel.Linear.SliceVec(0, 2), h), nil
}

// moveToPoseReward multiplies the position and direction rewards so
// that both must be high for the reward to be high
func moveToPoseReward(k Kinematics) (float64, error) {
	position, err := positionReward(k)
	if err != nil {
		return 0, fmt.Errorf("moveToPoseReward: %v", err)
	}
	direction, err := faceDirectionReward(k)
	if err != nil {
		return 0, fmt.Errorf("moveToPoseReward: %v", err)
	}
	return position * direction, nil
}
