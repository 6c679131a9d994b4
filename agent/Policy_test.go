package agent

import (
	"math"
	"testing"

	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/jitterbug/environment"
	"github.com/samuelfneumann/jitterbug/timestep"
)

func actionSpec(low, high []float64) environment.Spec {
	return environment.NewSpec(
		mat.NewVecDense(len(low), nil),
		environment.Action,
		mat.NewVecDense(len(low), low),
		mat.NewVecDense(len(high), high),
		environment.Continuous,
	)
}

func TestConstant(t *testing.T) {
	g := NewWithT(t)

	values := []float64{DemoAction, 0.5}
	p := NewConstant(values)
	values[0] = 100

	var step timestep.TimeStep
	a := p.SelectAction(step)
	g.Expect(a.RawVector().Data).To(Equal([]float64{DemoAction, 0.5}))

	// Changing a selected action does not change the policy
	a.SetVec(0, 3)
	g.Expect(p.SelectAction(step).AtVec(0)).To(Equal(DemoAction))
}

func TestUniform(t *testing.T) {
	g := NewWithT(t)

	spec := actionSpec([]float64{-1, 0}, []float64{1, 5})
	p, err := NewUniform(spec, 3)
	g.Expect(err).NotTo(HaveOccurred())
	q, err := NewUniform(spec, 3)
	g.Expect(err).NotTo(HaveOccurred())

	var step timestep.TimeStep
	for i := 0; i < 500; i++ {
		a := p.SelectAction(step)
		g.Expect(a.Len()).To(Equal(2))
		g.Expect(a.AtVec(0)).To(And(BeNumerically(">=", -1),
			BeNumerically("<", 1)))
		g.Expect(a.AtVec(1)).To(And(BeNumerically(">=", 0),
			BeNumerically("<", 5)))

		// Same seed, same actions
		g.Expect(q.SelectAction(step).RawVector().Data).To(
			Equal(a.RawVector().Data))
	}
}

func TestUniformInvalid(t *testing.T) {
	inf := math.Inf(1)
	if _, err := NewUniform(actionSpec([]float64{-inf}, []float64{inf}),
		0); err == nil {
		t.Errorf("newUniform: expected an error for unbounded actions")
	}

	obs := environment.NewScalarSpec(environment.Observation, 0, 1)
	if _, err := NewUniform(obs, 0); err == nil {
		t.Errorf("newUniform: expected an error for an observation spec")
	}
}

func TestConfig(t *testing.T) {
	g := NewWithT(t)
	spec := actionSpec([]float64{-1, -1}, []float64{1, 1})

	p, err := DefaultConfig().CreatePolicy(spec)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(p.SelectAction(timestep.TimeStep{}).RawVector().Data).To(
		Equal([]float64{DemoAction, DemoAction}))

	p, err = Config{Type: UniformPolicy, Seed: 1}.CreatePolicy(spec)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(p).To(BeAssignableToTypeOf(&Uniform{}))

	_, err = Config{Type: ConstantPolicy,
		Action: []float64{1, 2, 3}}.CreatePolicy(spec)
	g.Expect(err).To(HaveOccurred())

	g.Expect(Config{Type: "greedy"}.Validate()).NotTo(Succeed())
	g.Expect(Config{Type: ConstantPolicy}.Validate()).NotTo(Succeed())
}
