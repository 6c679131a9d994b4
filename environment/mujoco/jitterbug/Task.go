// Package jitterbug implements the Jitterbug tasks. The Jitterbug is a
// four-legged robot that moves by vibrating: a motor spins an
// off-centre mass, and the resulting oscillations make the robot
// hop and turn. Each task places a target marker at the start of every
// episode and rewards the Jitterbug for reaching some goal relative to
// that target.
//
// Five tasks are available, selected by Variant or by name:
//
//	Name				Goal
//	move_from_origin	move away from the origin
//	face_direction		face a random yaw
//	move_in_direction	move along a random direction
//	move_to_position	reach a random position
//	move_to_pose		reach a random position facing a random yaw
//
// Every reward is in [0, 1] and is scaled by the uprightness of the
// Jitterbug, so that a Jitterbug on its back receives no reward.
//
// Tasks compute everything from a Physics, which the physics engine
// provides. The Jitterbug environment in this package pairs a Task
// with a Simulator to produce an environment.Environment.
package jitterbug

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/jitterbug/environment"
)

// Bounds on the distance of the target from the origin in tasks where
// the target position is random
const (
	MinTargetRadius = 0.05
	MaxTargetRadius = 0.3
)

// Task implements one of the Jitterbug tasks. A Task fixes its Variant
// at construction. Tasks hold no state other than their random number
// generator, and each Task should be used with a single Physics.
type Task struct {
	variant Variant

	// starter samples (angle, radius, yaw) of the target on each reset
	starter environment.Starter
}

// New returns a new Task of the Variant with the given name. The seed
// determines all target placements. An unknown name returns an error
// wrapping ErrInvalidVariant.
func New(name string, seed uint64) (*Task, error) {
	v, err := ParseVariant(name)
	if err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}
	return NewFromVariant(v, seed), nil
}

// NewFromVariant returns a new Task of Variant v. NewFromVariant
// panics if v is not a valid Variant.
func NewFromVariant(v Variant, seed uint64) *Task {
	v.rules()

	bounds := []r1.Interval{
		{Min: 0, Max: 2 * math.Pi},                   // angle
		{Min: MinTargetRadius, Max: MaxTargetRadius}, // radius
		{Min: 0, Max: 2 * math.Pi},                   // yaw
	}

	return &Task{
		variant: v,
		starter: environment.NewUniformStarter(bounds, seed),
	}
}

// Variant returns the Variant of the Task
func (t *Task) Variant() Variant {
	return t.variant
}

// ShowsPointer returns whether the target heading indicator is visible
// in this Task
func (t *Task) ShowsPointer() bool {
	return t.variant.rules().showPointer
}

// InitializeEpisode places the target for a new episode. One sample of
// (angle, radius, yaw) is drawn on every call, whether or not the
// Variant uses it, so that episodes are reproducible from the seed.
// All changes are made inside a single p.ResetContext.
func (t *Task) InitializeEpisode(p Physics) error {
	rules := t.variant.rules()

	sample := t.starter.Start()
	angle, radius, yaw := sample.AtVec(0), sample.AtVec(1), sample.AtVec(2)

	err := p.ResetContext(func(m Model) error {
		if !rules.showPointer {
			if err := m.SetGeomAlpha(TargetPointerGeom, 0); err != nil {
				return err
			}
		}

		if rules.randomizePosition {
			x, y := radius*math.Sin(angle), radius*math.Cos(angle)
			if err := m.SetBodyXY(TargetBody, x, y); err != nil {
				return err
			}
		}

		if rules.randomizeYaw {
			if err := m.SetBodyQuat(TargetBody, YawQuat(yaw)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("initializeEpisode: %v", err)
	}
	return nil
}

// Observe returns the observation of p for this Task
func (t *Task) Observe(p Physics) (Observation, error) {
	rules := t.variant.rules()
	k := NewKinematics(p)

	pose, err := k.RobotPose()
	if err != nil {
		return Observation{}, fmt.Errorf("observe: %v", err)
	}
	vel, err := k.RobotVelocity()
	if err != nil {
		return Observation{}, fmt.Errorf("observe: %v", err)
	}
	motorPos, err := k.MotorPosition()
	if err != nil {
		return Observation{}, fmt.Errorf("observe: %v", err)
	}
	motorVel, err := k.MotorVelocity()
	if err != nil {
		return Observation{}, fmt.Errorf("observe: %v", err)
	}

	var obs Observation
	obs.add(FieldPosition, pose.Vec())
	obs.add(FieldVelocity, vel.Vec())
	obs.add(FieldMotorPosition, scalar(motorPos))
	obs.add(FieldMotorVelocity, scalar(motorVel))

	if rules.observeTargetPosition {
		v, err := k.RobotToTarget()
		if err != nil {
			return Observation{}, fmt.Errorf("observe: %v", err)
		}
		obs.add(FieldTargetPosition, v)
	}

	if rules.observeTargetDirection {
		h, err := k.RelativeHeading()
		if err != nil {
			return Observation{}, fmt.Errorf("observe: %v", err)
		}
		obs.add(FieldTargetDirection, h)
	}

	return obs, nil
}

// Reward returns the reward of p for this Task, on [0, 1]. The task
// reward is always scaled by the uprightness of the Jitterbug last.
func (t *Task) Reward(p Physics) (float64, error) {
	k := NewKinematics(p)

	r, err := t.variant.rules().reward(k)
	if err != nil {
		return 0, fmt.Errorf("reward: %v", err)
	}

	upright, err := k.Uprightness()
	if err != nil {
		return 0, fmt.Errorf("reward: %v", err)
	}

	return r * upright, nil
}

// Min returns the minimum possible reward
func (t *Task) Min() float64 {
	return 0.0
}

// Max returns the maximum possible reward
func (t *Task) Max() float64 {
	return 1.0
}

// RewardSpec returns the reward specification of the Task
func (t *Task) RewardSpec() environment.Spec {
	return environment.NewScalarSpec(environment.Reward, t.Min(), t.Max())
}

func (t *Task) String() string {
	return fmt.Sprintf("Jitterbug %v", t.variant)
}
