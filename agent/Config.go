package agent

import (
	"fmt"

	"github.com/samuelfneumann/jitterbug/environment"
)

// PolicyType represents a type of policy that can be configured
type PolicyType string

const (
	ConstantPolicy PolicyType = "constant"
	UniformPolicy  PolicyType = "uniform"
)

// Config represents a configuration for creating a Policy
type Config struct {
	Type PolicyType `yaml:"type" json:"type"`

	// Action is the action of a constant policy. A single value is
	// repeated over every action dimension.
	Action []float64 `yaml:"action,omitempty" json:"action,omitempty"`

	Seed uint64 `yaml:"seed" json:"seed"`
}

// DefaultConfig returns the configuration of the demonstration policy
func DefaultConfig() Config {
	return Config{Type: ConstantPolicy, Action: []float64{DemoAction}}
}

// Validate returns an error describing whether or not the
// configuration is valid
func (c Config) Validate() error {
	switch c.Type {
	case ConstantPolicy:
		if len(c.Action) == 0 {
			return fmt.Errorf("validate: constant policy needs an action")
		}
	case UniformPolicy:
	default:
		return fmt.Errorf("validate: no such policy type %q", c.Type)
	}
	return nil
}

// CreatePolicy creates the Policy that the config describes for
// actions described by spec
func (c Config) CreatePolicy(spec environment.Spec) (Policy, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("createPolicy: %v", err)
	}

	if c.Type == UniformPolicy {
		u, err := NewUniform(spec, c.Seed)
		if err != nil {
			return nil, fmt.Errorf("createPolicy: %v", err)
		}
		return u, nil
	}

	dims := spec.Shape.Len()
	action := c.Action
	if len(action) == 1 && dims > 1 {
		action = make([]float64, dims)
		for i := range action {
			action[i] = c.Action[0]
		}
	}
	if len(action) != dims {
		return nil, fmt.Errorf("createPolicy: constant action has %v "+
			"dimensions, want %v", len(action), dims)
	}
	return NewConstant(action), nil
}
