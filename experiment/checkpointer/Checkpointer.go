// Package checkpointer implements Checkpointers, which save snapshots
// of an experiment as it runs
package checkpointer

import ts "github.com/samuelfneumann/jitterbug/timestep"

// Renderer is an object that can save a snapshot of itself to a file
type Renderer interface {
	Render(filename string) error
}

// Checkpointer checkpoints/saves Renderers based on timestep.TimeSteps
type Checkpointer interface {
	Checkpoint(ts.TimeStep) error
}
