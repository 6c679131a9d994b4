package experiment

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/jitterbug/agent"
	"github.com/samuelfneumann/jitterbug/environment"
	"github.com/samuelfneumann/jitterbug/experiment/checkpointer"
	"github.com/samuelfneumann/jitterbug/experiment/tracker"
	ts "github.com/samuelfneumann/jitterbug/timestep"
	"github.com/samuelfneumann/jitterbug/utils/progressbar"
)

// countingEnv rewards each step with its action and ends episodes
// after a fixed number of steps
type countingEnv struct {
	environment.Environment
	episodeSteps int
	current      ts.TimeStep
	resets       int
	failAt       int
	renders      int
}

func (c *countingEnv) Reset() (ts.TimeStep, error) {
	c.resets++
	c.current = ts.New(ts.First, 0, 1, mat.NewVecDense(1, nil), 0)
	return c.current, nil
}

func (c *countingEnv) Step(a *mat.VecDense) (ts.TimeStep, bool, error) {
	n := c.current.Number + 1
	if n == c.failAt {
		return ts.TimeStep{}, true, errors.New("simulation diverged")
	}

	step := ts.New(ts.Mid, a.AtVec(0), 1, mat.NewVecDense(1, nil), n)
	environment.NewStepLimit(c.episodeSteps).End(&step)
	c.current = step
	return step, step.Last(), nil
}

func (c *countingEnv) Render(string) error {
	c.renders++
	return nil
}

func TestOnlineRun(t *testing.T) {
	g := NewWithT(t)

	e := &countingEnv{episodeSteps: 10}
	dir := t.TempDir()
	returns := tracker.NewReturn(filepath.Join(dir, "returns.bin"))
	lengths := tracker.NewEpisodeLength(filepath.Join(dir, "lengths.bin"))
	frames := checkpointer.NewNStep(5, e, checkpointer.FilenameEnumerator(0,
		filepath.Join(dir, "frame"), ".png"))

	o := NewOnline(e, agent.NewConstant([]float64{0.5}), 25,
		[]tracker.Tracker{returns}, []checkpointer.Checkpointer{frames})
	o.Register(lengths)

	var out bytes.Buffer
	o.ShowProgress(progressbar.NewManualProgressBarTo(&out, 10, 25))

	g.Expect(o.Run()).To(Succeed())
	g.Expect(o.Steps()).To(Equal(uint(25)))
	g.Expect(e.resets).To(Equal(3))

	// The third episode is cut off by the step limit
	g.Expect(returns.Returns()).To(Equal([]float64{5, 5}))
	g.Expect(lengths.Lengths()).To(Equal([]float64{10, 10}))

	// Steps 0, 5, and 10 of the first two episodes, 0 and 5 of the last
	g.Expect(e.renders).To(Equal(8))

	g.Expect(strings.Contains(out.String(), "100.00%")).To(BeTrue())

	g.Expect(o.Save()).To(Succeed())
	data, err := tracker.LoadData(filepath.Join(dir, "returns.bin"))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(data).To(Equal([]float64{5, 5}))
}

func TestOnlineRunEpisode(t *testing.T) {
	g := NewWithT(t)

	e := &countingEnv{episodeSteps: 4}
	o := NewOnline(e, agent.NewConstant([]float64{1}), 100, nil, nil)

	done, err := o.RunEpisode()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(done).To(BeFalse())
	g.Expect(o.Steps()).To(Equal(uint(4)))
	g.Expect(e.current.Last()).To(BeTrue())
}

func TestOnlineStepError(t *testing.T) {
	e := &countingEnv{episodeSteps: 10, failAt: 3}
	o := NewOnline(e, agent.NewConstant([]float64{1}), 100, nil, nil)

	if err := o.Run(); err == nil {
		t.Errorf("run: expected the step error to be returned")
	}
}

var _ Experiment = &Online{}
