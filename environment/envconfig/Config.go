// Package envconfig provides configuration structs for configuring
// Jitterbug environments with default timing parameters and tasks.
// Environment configurations in this package are YAML and JSON
// serializable.
package envconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/samuelfneumann/jitterbug/environment/mujoco/jitterbug"
	ts "github.com/samuelfneumann/jitterbug/timestep"
)

// ModelEnv is the environment variable that may hold the path of the
// Jitterbug MJCF model
const ModelEnv = "JITTERBUG_MODEL"

// Config implements a specific configuration of a Jitterbug task
type Config struct {
	Task            string  `yaml:"task" json:"task"`
	Seed            uint64  `yaml:"seed" json:"seed"`
	TimeLimit       float64 `yaml:"time_limit" json:"time_limit"`
	ControlTimestep float64 `yaml:"control_timestep" json:"control_timestep"`
	Discount        float64 `yaml:"discount" json:"discount"`

	// ModelPath is the path of the MJCF model, used only by
	// CreateMujoco. If empty, the ModelEnv environment variable is
	// used.
	ModelPath string `yaml:"model_path,omitempty" json:"model_path,omitempty"`
}

// Default returns the default configuration, running the
// move_from_origin task for 10 seconds with actions every 10 ms
func Default() Config {
	return Config{
		Task:            jitterbug.MoveFromOrigin.String(),
		TimeLimit:       jitterbug.DefaultTimeLimit,
		ControlTimestep: jitterbug.DefaultControlTimestep,
		Discount:        1.0,
	}
}

// Load reads a Config from a YAML file. Fields missing from the file
// keep their default values.
func Load(path string) (Config, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load: %v", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("load: could not parse %v: %v", path, err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("load: %w", err)
	}
	return c, nil
}

// Save writes the Config to a YAML file
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("save: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save: %v", err)
	}
	return nil
}

// Validate returns an error describing why the Config is invalid, or
// nil if it is valid
func (c Config) Validate() error {
	if _, err := jitterbug.ParseVariant(c.Task); err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	if c.TimeLimit <= 0 {
		return fmt.Errorf("validate: time limit should be positive, "+
			"have(%v)", c.TimeLimit)
	}
	if c.ControlTimestep <= 0 {
		return fmt.Errorf("validate: control timestep should be positive, "+
			"have(%v)", c.ControlTimestep)
	}
	if c.Discount < 0 || c.Discount > 1 {
		return fmt.Errorf("validate: discount should be in [0, 1], "+
			"have(%v)", c.Discount)
	}
	return nil
}

// Model returns the path of the MJCF model, falling back to the
// ModelEnv environment variable
func (c Config) Model() string {
	if c.ModelPath != "" {
		return c.ModelPath
	}
	return os.Getenv(ModelEnv)
}

// Create returns the environment described by the Config running on
// sim, as well as the first timestep of the environment
func (c Config) Create(sim jitterbug.Simulator) (*jitterbug.Jitterbug,
	ts.TimeStep, error) {
	task, err := c.task()
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %w", err)
	}

	env, step, err := jitterbug.NewEnv(task, sim, c.Discount, c.options()...)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %w", err)
	}
	return env, step, nil
}

// CreateMujoco returns the environment described by the Config
// simulated by MuJoCo, as well as the first timestep of the environment
func (c Config) CreateMujoco() (*jitterbug.Jitterbug, ts.TimeStep, error) {
	task, err := c.task()
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("createMujoco: %w", err)
	}

	model := c.Model()
	if model == "" {
		return nil, ts.TimeStep{}, fmt.Errorf("createMujoco: no model "+
			"path, set model_path or %v", ModelEnv)
	}

	env, step, err := jitterbug.NewMujoco(task, model, c.Discount,
		c.options()...)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("createMujoco: %w", err)
	}
	return env, step, nil
}

func (c Config) task() (*jitterbug.Task, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return jitterbug.New(c.Task, c.Seed)
}

func (c Config) options() []jitterbug.Option {
	return []jitterbug.Option{
		jitterbug.WithTimeLimit(c.TimeLimit),
		jitterbug.WithControlTimestep(c.ControlTimestep),
	}
}
