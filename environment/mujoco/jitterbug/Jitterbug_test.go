package jitterbug

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/jitterbug/environment"
	ts "github.com/samuelfneumann/jitterbug/timestep"
)

var _ environment.Environment = &Jitterbug{}

func newTestEnv(t *testing.T, v Variant, opts ...Option) (*Jitterbug,
	*fakeSim, ts.TimeStep) {
	t.Helper()

	sim := newFakeSim()
	env, step, err := NewEnv(NewFromVariant(v, 9), sim, 0.99, opts...)
	if err != nil {
		t.Fatalf("newEnv: %v", err)
	}
	return env, sim, step
}

func TestNewEnv(t *testing.T) {
	g := NewWithT(t)

	env, sim, step := newTestEnv(t, FaceDirection)

	g.Expect(env.FrameSkip()).To(Equal(5))
	g.Expect(env.EpisodeSteps()).To(Equal(1000))
	g.Expect(sim.resets).To(Equal(2))

	g.Expect(step.First()).To(BeTrue())
	g.Expect(step.Number).To(Equal(0))
	g.Expect(step.Observation.Len()).To(Equal(17))
	g.Expect(env.CurrentTimeStep()).To(Equal(step))
	g.Expect(env.Observation().Names()).To(Equal(
		ObservationFields(FaceDirection)))

	g.Expect(env.ObservationSpec().Shape.Len()).To(Equal(17))
	g.Expect(env.RewardSpec().LowerBound.AtVec(0)).To(Equal(0.0))
	g.Expect(env.RewardSpec().UpperBound.AtVec(0)).To(Equal(1.0))
	g.Expect(env.DiscountSpec().UpperBound.AtVec(0)).To(Equal(0.99))
	g.Expect(env.ActionSpec().Shape.Len()).To(Equal(1))
}

func TestNewEnvInvalid(t *testing.T) {
	task := NewFromVariant(MoveToPose, 0)

	tests := []struct {
		name     string
		task     *Task
		discount float64
		opts     []Option
	}{
		{"nil task", nil, 0.99, nil},
		{"discount", task, 1.5, nil},
		{"time limit", task, 0.99, []Option{WithTimeLimit(-1)}},
		{"control timestep", task, 0.99, []Option{WithControlTimestep(0)}},
		{"frame skip", task, 0.99, []Option{WithControlTimestep(0.0009)}},
	}

	for _, test := range tests {
		if _, _, err := NewEnv(test.task, newFakeSim(), test.discount,
			test.opts...); err == nil {
			t.Errorf("newEnv(%v): expected an error", test.name)
		}
	}

	if _, _, err := NewEnv(task, nil, 0.99); err == nil {
		t.Errorf("newEnv(nil simulator): expected an error")
	}
}

func TestEpisodeTimeout(t *testing.T) {
	g := NewWithT(t)

	env, sim, _ := newTestEnv(t, MoveInDirection)
	action := mat.NewVecDense(1, []float64{-0.8})

	var (
		step ts.TimeStep
		done bool
		err  error
		n    int
	)
	for !done {
		step, done, err = env.Step(action)
		g.Expect(err).NotTo(HaveOccurred())
		n++

		g.Expect(step.Number).To(Equal(n))
		g.Expect(step.Discount).To(Equal(0.99))
		g.Expect(step.Reward).To(And(BeNumerically(">=", 0),
			BeNumerically("<=", 1)))
		if !done {
			g.Expect(step.Mid()).To(BeTrue())
		}
	}

	g.Expect(n).To(Equal(1000))
	g.Expect(step.Last()).To(BeTrue())
	g.Expect(step.EndType()).To(Equal(ts.Timeout))
	g.Expect(sim.steps).To(Equal(1000))
	g.Expect(sim.frames).To(Equal(5000))

	// A new episode starts from step 0 with a new target
	first, err := env.Reset()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(first.First()).To(BeTrue())
	g.Expect(first.Number).To(Equal(0))
}

func TestEnvOptions(t *testing.T) {
	g := NewWithT(t)

	env, _, _ := newTestEnv(t, MoveFromOrigin, WithTimeLimit(1),
		WithControlTimestep(0.02))
	g.Expect(env.FrameSkip()).To(Equal(10))
	g.Expect(env.EpisodeSteps()).To(Equal(50))
}

func TestActionClipping(t *testing.T) {
	env, sim, _ := newTestEnv(t, MoveToPosition)

	tests := []struct {
		action, want float64
	}{
		{5, 1},
		{-3, -1},
		{0.2, 0.2},
	}

	for _, test := range tests {
		action := mat.NewVecDense(1, []float64{test.action})
		if _, _, err := env.Step(action); err != nil {
			t.Fatal(err)
		}
		if got := sim.lastControl.AtVec(0); got != test.want {
			t.Errorf("step(%v): applied control have(%v) want(%v)",
				test.action, got, test.want)
		}
		if action.AtVec(0) != test.action {
			t.Errorf("step: action was modified")
		}
	}

	if _, _, err := env.Step(mat.NewVecDense(2, nil)); err == nil {
		t.Errorf("step: expected an error for a 2-dimensional action")
	}
	if _, _, err := env.Step(nil); err == nil {
		t.Errorf("step: expected an error for a nil action")
	}
}

func TestRender(t *testing.T) {
	g := NewWithT(t)

	env, _, _ := newTestEnv(t, MoveToPose)
	filename := filepath.Join(t.TempDir(), "frame.png")
	g.Expect(env.Render(filename)).To(Succeed())

	file, err := os.Open(filename)
	g.Expect(err).NotTo(HaveOccurred())
	defer file.Close()

	img, err := png.Decode(file)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(img.Bounds().Dx()).To(Equal(RenderSize))
	g.Expect(img.Bounds().Dy()).To(Equal(RenderSize))
}

func TestRenderError(t *testing.T) {
	f := newFakeSim()
	f.failingElements[RobotBody] = true
	if _, err := Render(f, true); err == nil {
		t.Errorf("render: expected an error")
	}
}
