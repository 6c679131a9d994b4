package checkpointer

import (
	"testing"

	ts "github.com/samuelfneumann/jitterbug/timestep"
)

type recorder struct {
	files []string
}

func (r *recorder) Render(filename string) error {
	r.files = append(r.files, filename)
	return nil
}

func TestNStep(t *testing.T) {
	r := &recorder{}
	c := NewNStep(3, r, FilenameEnumerator(0, "frame", ".png"))

	for i := 0; i <= 7; i++ {
		if err := c.Checkpoint(ts.New(ts.Mid, 0, 1, nil, i)); err != nil {
			t.Fatal(err)
		}
	}

	want := []string{"frame000001.png", "frame000002.png", "frame000003.png"}
	if len(r.files) != len(want) {
		t.Fatalf("checkpoint: have(%v) want(%v)", r.files, want)
	}
	for i := range want {
		if r.files[i] != want[i] {
			t.Errorf("checkpoint %v: have(%v) want(%v)", i, r.files[i],
				want[i])
		}
	}
}

func TestNStepInvalidInterval(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("newNStep: expected a panic for interval 0")
		}
	}()
	NewNStep(0, &recorder{}, FilenameEnumerator(0, "frame", ".png"))
}
