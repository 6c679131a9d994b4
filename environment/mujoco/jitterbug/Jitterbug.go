package jitterbug

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/jitterbug/environment"
	ts "github.com/samuelfneumann/jitterbug/timestep"
	"github.com/samuelfneumann/jitterbug/utils/floatutils"
)

// Default episode timing, in seconds of simulated time
const (
	DefaultTimeLimit       = 10.0
	DefaultControlTimestep = 0.01
)

// Simulator is a physics engine simulating the Jitterbug model
type Simulator interface {
	Physics

	// Reset resets the simulation to the model's initial state
	Reset() error

	// DoSimulation applies control and advances the simulation by
	// nFrames engine timesteps
	DoSimulation(control *mat.VecDense, nFrames int) error

	// Timestep returns the duration of a single engine timestep
	Timestep() float64

	// ActionSpec returns the bounds of the controls
	ActionSpec() environment.Spec

	// Close releases the simulation
	Close()
}

// Option configures a Jitterbug environment
type Option func(*options)

type options struct {
	timeLimit       float64
	controlTimestep float64
}

// WithTimeLimit sets the length of episodes in seconds
func WithTimeLimit(seconds float64) Option {
	return func(o *options) {
		o.timeLimit = seconds
	}
}

// WithControlTimestep sets the time between actions in seconds
func WithControlTimestep(seconds float64) Option {
	return func(o *options) {
		o.controlTimestep = seconds
	}
}

// Jitterbug implements the Jitterbug environment. An agent controls the
// Jitterbug's motor, and a Task determines the target placement,
// observations, and rewards.
//
// Each action is held for a control timestep, which spans a whole
// number of engine timesteps. Episodes end after a time limit, and no
// state of the Jitterbug ends an episode early.
//
// Observations are the flattened Task observations. The ordered
// record of the most recent observation is returned by Observation().
//
// Jitterbug satisfies the environment.Environment interface.
type Jitterbug struct {
	Simulator
	task *Task

	stepLimit *environment.StepLimit
	frameSkip int
	discount  float64
	obsLen    int

	currentTimeStep ts.TimeStep
	currentObs      Observation
}

// NewEnv returns a new Jitterbug environment running task on sim, as
// well as the first timestep of the first episode
func NewEnv(task *Task, sim Simulator, discount float64,
	opts ...Option) (*Jitterbug, ts.TimeStep, error) {
	o := options{
		timeLimit:       DefaultTimeLimit,
		controlTimestep: DefaultControlTimestep,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if task == nil {
		return nil, ts.TimeStep{}, fmt.Errorf("newEnv: nil task")
	}
	if sim == nil {
		return nil, ts.TimeStep{}, fmt.Errorf("newEnv: nil simulator")
	}
	if discount < 0 || discount > 1 {
		return nil, ts.TimeStep{}, fmt.Errorf("newEnv: discount should "+
			"be in [0, 1], have(%v)", discount)
	}
	if o.timeLimit <= 0 || o.controlTimestep <= 0 {
		return nil, ts.TimeStep{}, fmt.Errorf("newEnv: time limit and "+
			"control timestep should be positive, have(%v, %v)",
			o.timeLimit, o.controlTimestep)
	}

	frameSkip := int(math.Round(o.controlTimestep / sim.Timestep()))
	if frameSkip < 1 {
		return nil, ts.TimeStep{}, fmt.Errorf("newEnv: control timestep "+
			"%v is shorter than the engine timestep %v", o.controlTimestep,
			sim.Timestep())
	}
	cutoff := int(math.Round(o.timeLimit / o.controlTimestep))

	j := &Jitterbug{
		Simulator: sim,
		task:      task,
		stepLimit: environment.NewStepLimit(cutoff),
		frameSkip: frameSkip,
		discount:  discount,
		obsLen:    ObservationSize(task.Variant()),
	}

	firstStep, err := j.Reset()
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("newEnv: %v", err)
	}
	return j, firstStep, nil
}

// Task returns the Task of the environment
func (j *Jitterbug) Task() *Task {
	return j.task
}

// FrameSkip returns the number of engine timesteps per action
func (j *Jitterbug) FrameSkip() int {
	return j.frameSkip
}

// EpisodeSteps returns the number of actions in a full episode
func (j *Jitterbug) EpisodeSteps() int {
	return j.stepLimit.EpisodeSteps()
}

// Reset resets the environment to begin a new episode
func (j *Jitterbug) Reset() (ts.TimeStep, error) {
	if err := j.Simulator.Reset(); err != nil {
		return ts.TimeStep{}, fmt.Errorf("reset: %v", err)
	}
	if err := j.task.InitializeEpisode(j.Simulator); err != nil {
		return ts.TimeStep{}, fmt.Errorf("reset: %v", err)
	}

	obs, err := j.task.Observe(j.Simulator)
	if err != nil {
		return ts.TimeStep{}, fmt.Errorf("reset: could not get starting "+
			"state observation: %v", err)
	}

	firstStep := ts.New(ts.First, 0, j.discount, obs.Flatten(), 0)
	j.currentTimeStep = firstStep
	j.currentObs = obs

	return firstStep, nil
}

// Step takes one environmental step given some action
func (j *Jitterbug) Step(action *mat.VecDense) (ts.TimeStep, bool, error) {
	if action == nil {
		return ts.TimeStep{}, true, fmt.Errorf("step: nil action")
	}
	if action.Len() != j.ActionSpec().Shape.Len() {
		return ts.TimeStep{}, true, fmt.Errorf("step: invalid number of "+
			"action dimensions \n\thave(%v) \n\twant(%v)", action.Len(),
			j.ActionSpec().Shape.Len())
	}

	if err := j.DoSimulation(j.clipAction(action), j.frameSkip); err != nil {
		return ts.TimeStep{}, true, fmt.Errorf("step: %v", err)
	}

	obs, err := j.task.Observe(j.Simulator)
	if err != nil {
		return ts.TimeStep{}, true, fmt.Errorf("step: could not get next "+
			"state observation: %v", err)
	}
	reward, err := j.task.Reward(j.Simulator)
	if err != nil {
		return ts.TimeStep{}, true, fmt.Errorf("step: %v", err)
	}

	t := ts.New(ts.Mid, reward, j.discount, obs.Flatten(),
		j.currentTimeStep.Number+1)
	done := j.stepLimit.End(&t)

	j.currentTimeStep = t
	j.currentObs = obs

	return t, done, nil
}

// clipAction returns a copy of the argument action which is clipped to
// be within the action bounds of the environment.
func (j *Jitterbug) clipAction(action *mat.VecDense) *mat.VecDense {
	spec := j.ActionSpec()
	n := action.Len()

	clipped := make([]float64, n)
	low, high := make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		clipped[i] = action.AtVec(i)
		low[i], high[i] = spec.LowerBound.AtVec(i), spec.UpperBound.AtVec(i)
	}
	return mat.NewVecDense(n, floatutils.ClipSlice(clipped, low, high))
}

// CurrentTimeStep returns the current time step
func (j *Jitterbug) CurrentTimeStep() ts.TimeStep {
	return j.currentTimeStep
}

// Observation returns the ordered record of the current observation
func (j *Jitterbug) Observation() Observation {
	return j.currentObs
}

// ObservationSpec returns the observation specification of the
// environment
func (j *Jitterbug) ObservationSpec() environment.Spec {
	shape := mat.NewVecDense(j.obsLen, nil)

	low := mat.NewVecDense(j.obsLen, nil)
	high := mat.NewVecDense(j.obsLen, nil)
	for i := 0; i < j.obsLen; i++ {
		low.SetVec(i, math.Inf(-1))
		high.SetVec(i, math.Inf(1))
	}

	return environment.NewSpec(shape, environment.Observation, low, high,
		environment.Continuous)
}

// RewardSpec returns the reward specification of the environment
func (j *Jitterbug) RewardSpec() environment.Spec {
	return j.task.RewardSpec()
}

// DiscountSpec returns the discount specification of the environment
func (j *Jitterbug) DiscountSpec() environment.Spec {
	return environment.NewScalarSpec(environment.Discount, j.discount,
		j.discount)
}

func (j *Jitterbug) String() string {
	return fmt.Sprintf("%v  |  %v", j.task, j.currentTimeStep)
}
