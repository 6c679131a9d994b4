package tracker

import (
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/samuelfneumann/jitterbug/environment"
	ts "github.com/samuelfneumann/jitterbug/timestep"
)

// episode returns the timesteps of an episode with the given rewards
// after the first step
func episode(rewards ...float64) []ts.TimeStep {
	steps := []ts.TimeStep{ts.New(ts.First, 0, 1, nil, 0)}
	for i, r := range rewards {
		stepType := ts.Mid
		if i == len(rewards)-1 {
			stepType = ts.Last
		}
		steps = append(steps, ts.New(stepType, r, 1, nil, i+1))
	}
	return steps
}

func TestReturn(t *testing.T) {
	g := NewWithT(t)

	filename := filepath.Join(t.TempDir(), "returns.bin")
	r := NewReturn(filename)
	for _, step := range episode(0.5, 0.25, 1) {
		r.Track(step)
	}
	for _, step := range episode(1, 1) {
		r.Track(step)
	}

	// Unfinished episodes are not recorded
	for _, step := range episode(1, 1)[:2] {
		r.Track(step)
	}
	g.Expect(r.Returns()).To(Equal([]float64{1.75, 2}))

	g.Expect(r.Save()).To(Succeed())
	data, err := LoadData(filename)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(data).To(Equal([]float64{1.75, 2}))
}

func TestReturnNonSequential(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("track: expected a panic for non-sequential timesteps")
		}
	}()

	r := NewReturn("")
	r.Track(ts.New(ts.First, 0, 1, nil, 0))
	r.Track(ts.New(ts.Mid, 0, 1, nil, 2))
}

func TestEpisodeLength(t *testing.T) {
	g := NewWithT(t)

	filename := filepath.Join(t.TempDir(), "lengths.bin")
	e := NewEpisodeLength(filename)
	for _, step := range append(episode(1, 2, 3), episode(4)...) {
		e.Track(step)
	}
	g.Expect(e.Lengths()).To(Equal([]float64{3, 1}))

	g.Expect(e.Save()).To(Succeed())
	data, err := LoadData(filename)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(data).To(Equal([]float64{3, 1}))
}

func TestLoadDataMissing(t *testing.T) {
	if _, err := LoadData(filepath.Join(t.TempDir(), "none.bin")); err == nil {
		t.Errorf("loadData: expected an error for a missing file")
	}
}

// stepEnv is an Environment that only reports its current timestep
type stepEnv struct {
	environment.Environment
	current ts.TimeStep
}

func (s *stepEnv) CurrentTimeStep() ts.TimeStep {
	return s.current
}

func TestRegister(t *testing.T) {
	g := NewWithT(t)

	env := &stepEnv{}
	e := NewEpisodeLength("")
	registered := Register(e, env)

	// The tracked timestep is the environment's, not the argument
	env.current = ts.New(ts.Last, 0, 1, nil, 7)
	registered.Track(ts.New(ts.Mid, 0, 1, nil, 1))
	g.Expect(e.Lengths()).To(Equal([]float64{7}))
}
