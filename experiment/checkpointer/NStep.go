package checkpointer

import (
	"fmt"

	ts "github.com/samuelfneumann/jitterbug/timestep"
)

// nStep implements checkpointing every N steps
type nStep struct {
	interval int
	object   Renderer // Object to save

	// filename returns the name of the file to save the next snapshot
	// in. To save each snapshot in a separate numbered file (e.g.
	// frame1.png, frame2.png, ..., frameK.png) use FilenameEnumerator:
	//
	// n := NewNStep(10, env, FilenameEnumerator(0, "frame", ".png"))
	filename func() string
}

// NewNStep returns a checkpointer that checkpoints every n steps of
// each episode, including the first step
func NewNStep(n int, object Renderer, filename func() string) Checkpointer {
	if n <= 0 {
		panic(fmt.Sprintf("newNStep: interval should be positive, have(%v)",
			n))
	}
	return &nStep{
		interval: n,
		object:   object,
		filename: filename,
	}
}

// Checkpoint checkpoints the Checkpointer's tracked object by calling
// its Render() method
func (n *nStep) Checkpoint(t ts.TimeStep) error {
	if t.Number%n.interval == 0 {
		return n.object.Render(n.filename())
	}
	return nil
}
