package experiment

import (
	"fmt"

	"github.com/samuelfneumann/jitterbug/agent"
	env "github.com/samuelfneumann/jitterbug/environment"
	"github.com/samuelfneumann/jitterbug/experiment/checkpointer"
	"github.com/samuelfneumann/jitterbug/experiment/tracker"
	ts "github.com/samuelfneumann/jitterbug/timestep"
	"github.com/samuelfneumann/jitterbug/utils/progressbar"
)

// Online is an Experiment that runs a policy in an environment for a
// fixed number of steps, tracking every timestep
type Online struct {
	env.Environment
	agent.Policy
	maxSteps      uint
	currentSteps  uint
	trackers      []tracker.Tracker
	checkpointers []checkpointer.Checkpointer
	bar           *progressbar.ManualProgressBar
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given policy. The steps parameter determines how
// many timesteps the experiment is run for, and the t parameter
// is a slice of tracker.Tracker which determine what data is saved.
func NewOnline(e env.Environment, p agent.Policy, steps uint,
	t []tracker.Tracker, c []checkpointer.Checkpointer) *Online {
	return &Online{
		Environment:   e,
		Policy:        p,
		maxSteps:      steps,
		trackers:      t,
		checkpointers: c,
	}
}

// ShowProgress sets a progress bar which is advanced and displayed at
// every step of the experiment
func (o *Online) ShowProgress(bar *progressbar.ManualProgressBar) {
	o.bar = bar
}

// Register registers a tracker.Tracker with the Experiment so that
// data generated during the experiment can be tracked and saved
func (o *Online) Register(t tracker.Tracker) {
	o.trackers = append(o.trackers, t)
}

// Steps returns the number of steps taken so far
func (o *Online) Steps() uint {
	return o.currentSteps
}

// RunEpisode runs a single episode of the experiment
func (o *Online) RunEpisode() (bool, error) {
	step, err := o.Environment.Reset()
	if err != nil {
		return true, fmt.Errorf("runEpisode: %v", err)
	}
	o.track(step)
	if err := o.checkpoint(step); err != nil {
		return true, fmt.Errorf("runEpisode: %v", err)
	}

	for !step.Last() && o.currentSteps < o.maxSteps {
		o.currentSteps++

		action := o.Policy.SelectAction(step)
		step, _, err = o.Environment.Step(action)
		if err != nil {
			return true, fmt.Errorf("runEpisode: %v", err)
		}

		// Cache the environment step in each Tracker
		o.track(step)
		if err := o.checkpoint(step); err != nil {
			return true, fmt.Errorf("runEpisode: %v", err)
		}

		if o.bar != nil {
			o.bar.Increment()
			o.bar.Display()
		}
	}

	// Return whether or not the max timestep limit has been reached
	return o.currentSteps >= o.maxSteps, nil
}

// Run runs the entire experiment for all timesteps
func (o *Online) Run() error {
	if o.bar != nil {
		defer o.bar.Close()
	}

	for ended := false; !ended; {
		var err error
		if ended, err = o.RunEpisode(); err != nil {
			return fmt.Errorf("run: %v", err)
		}
	}
	return nil
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() error {
	for _, t := range o.trackers {
		if err := t.Save(); err != nil {
			return fmt.Errorf("save: %v", err)
		}
	}
	return nil
}

// track tracks the current timestep by caching its data in each Tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tr := range o.trackers {
		tr.Track(t)
	}
}

func (o *Online) checkpoint(t ts.TimeStep) error {
	for _, c := range o.checkpointers {
		if err := c.Checkpoint(t); err != nil {
			return err
		}
	}
	return nil
}
