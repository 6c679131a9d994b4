// Package experiment implements functionality for running an experiment
package experiment

import (
	"github.com/samuelfneumann/jitterbug/experiment/tracker"
	ts "github.com/samuelfneumann/jitterbug/timestep"
)

// Interface Experiment outlines structs that can run experiments.
// Experiments send each environment TimeStep to their Trackers, which
// cache the data they need in RAM to be later saved to disk by Save().
// Run() runs episodes until the maximum timestep limit is reached,
// and RunEpisode() runs a single episode.
//
// New Trackers can be registered with an Experiment through the
// constructor or through an Experiment's Register() method.
type Experiment interface {
	Run() error

	// RunEpisode returns whether or not the step limit was reached
	RunEpisode() (bool, error)

	// Tracks current timestep by sending it to Trackers
	track(ts.TimeStep)

	// Save all tracked data to disk
	Save() error

	// Adds a new tracker.Tracker to the (possibly already running)
	// experiment. Useful if you want to track data only after a
	// specified event.
	Register(t tracker.Tracker)

	// Saves snapshots of the environment
	checkpoint(ts.TimeStep) error
}
