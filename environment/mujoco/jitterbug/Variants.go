package jitterbug

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrInvalidVariant is returned when a task is requested by a name
	// that no Variant has
	ErrInvalidVariant = errors.New("invalid task variant")

	// ErrInconsistentDispatch is the panic value when a Variant has no
	// entry in the dispatch table. It always indicates a programming
	// error.
	ErrInconsistentDispatch = errors.New("task variant has no dispatch entry")
)

// Variant enumerates the Jitterbug tasks. A Variant determines how the
// target is placed at the start of each episode, which observations
// are returned, and how rewards are computed.
type Variant int

const (
	// MoveFromOrigin rewards moving away from the origin
	MoveFromOrigin Variant = iota

	// FaceDirection rewards turning to face a random target yaw
	FaceDirection

	// MoveInDirection rewards moving in a random target direction
	MoveInDirection

	// MoveToPosition rewards reaching a random target position
	MoveToPosition

	// MoveToPose rewards reaching a random target position while
	// facing a random target yaw
	MoveToPose

	numVariants
)

// Suite tags of the Jitterbug tasks
const (
	TagBenchmarking = "benchmarking"
	TagEasy         = "easy"
	TagHard         = "hard"
)

// variantRules is the dispatch entry of a Variant
type variantRules struct {
	name        string
	description string
	tags        []string

	// Target randomization at the start of an episode
	randomizePosition bool
	randomizeYaw      bool
	showPointer       bool

	// Task-specific observations
	observeTargetPosition  bool
	observeTargetDirection bool

	// reward is the reward before it is scaled by uprightness
	reward func(Kinematics) (float64, error)
}

// variants is the dispatch table of every Variant. It is the only
// place where Variant behaviour is defined.
var variants = [numVariants]variantRules{
	MoveFromOrigin: {
		name:        "move_from_origin",
		description: "Move the Jitterbug away from the origin",
		tags:        []string{TagBenchmarking, TagEasy},
		reward:      moveFromOriginReward,
	},
	FaceDirection: {
		name:                   "face_direction",
		description:            "Move the Jitterbug to face a certain yaw angle",
		tags:                   []string{TagBenchmarking, TagEasy},
		randomizeYaw:           true,
		showPointer:            true,
		observeTargetDirection: true,
		reward:                 faceDirectionReward,
	},
	MoveInDirection: {
		name:                   "move_in_direction",
		description:            "Move the Jitterbug in a certain direction",
		tags:                   []string{TagBenchmarking, TagEasy},
		randomizeYaw:           true,
		showPointer:            true,
		observeTargetDirection: true,
		reward:                 moveInDirectionReward,
	},
	MoveToPosition: {
		name:                  "move_to_position",
		description:           "Move the Jitterbug to a certain XYZ position",
		tags:                  []string{TagBenchmarking, TagHard},
		randomizePosition:     true,
		observeTargetPosition: true,
		reward:                positionReward,
	},
	MoveToPose: {
		name:                   "move_to_pose",
		description:            "Move the Jitterbug to a certain XYZRPY pose",
		tags:                   []string{TagBenchmarking, TagHard},
		randomizePosition:      true,
		randomizeYaw:           true,
		showPointer:            true,
		observeTargetPosition:  true,
		observeTargetDirection: true,
		reward:                 moveToPoseReward,
	},
}

// rules returns the dispatch entry of v, panicking with
// ErrInconsistentDispatch if v has none
func (v Variant) rules() *variantRules {
	if v < 0 || v >= numVariants || variants[v].name == "" ||
		variants[v].reward == nil {
		panic(fmt.Errorf("%w: %v", ErrInconsistentDispatch, int(v)))
	}
	return &variants[v]
}

// String returns the stable name of the Variant, which is used to
// select it by name
func (v Variant) String() string {
	if v < 0 || v >= numVariants {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variants[v].name
}

// Valid returns whether v is one of the enumerated Variants
func (v Variant) Valid() bool {
	return v >= 0 && v < numVariants
}

// Variants returns all Variants in order
func Variants() []Variant {
	out := make([]Variant, numVariants)
	for i := range out {
		out[i] = Variant(i)
	}
	return out
}

// ParseVariant returns the Variant with the given name
func ParseVariant(name string) (Variant, error) {
	for _, v := range Variants() {
		if v.String() == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("parseVariant: %w %q, options are %v",
		ErrInvalidVariant, name, names())
}

func names() []string {
	out := make([]string, numVariants)
	for i, v := range Variants() {
		out[i] = v.String()
	}
	return out
}

// Registry is a name-indexed, tagged collection of Variants from
// which Tasks are built. Registries are plain values; create one with
// NewRegistry wherever Tasks are composed.
type Registry struct {
	byName map[string]Variant
	order  []string
}

// NewRegistry returns a Registry of every Variant
func NewRegistry() *Registry {
	r := &Registry{
		byName: make(map[string]Variant, numVariants),
		order:  make([]string, 0, numVariants),
	}
	for _, v := range Variants() {
		name := v.rules().name
		r.byName[name] = v
		r.order = append(r.order, name)
	}
	return r
}

// Lookup returns the Variant registered under name
func (r *Registry) Lookup(name string) (Variant, error) {
	v, ok := r.byName[name]
	if !ok {
		return 0, fmt.Errorf("lookup: %w %q, options are %v",
			ErrInvalidVariant, name, r.order)
	}
	return v, nil
}

// Names returns the registered names in Variant order
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Tags returns the tags of the Variant registered under name
func (r *Registry) Tags(name string) ([]string, error) {
	v, err := r.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("tags: %w", err)
	}
	tags := v.rules().tags
	out := make([]string, len(tags))
	copy(out, tags)
	return out, nil
}

// Description returns a one line description of the Variant
// registered under name
func (r *Registry) Description(name string) (string, error) {
	v, err := r.Lookup(name)
	if err != nil {
		return "", fmt.Errorf("description: %w", err)
	}
	return v.rules().description, nil
}

// Tagged returns the sorted names of all Variants with the given tag
func (r *Registry) Tagged(tag string) []string {
	var out []string
	for name, v := range r.byName {
		for _, t := range v.rules().tags {
			if t == tag {
				out = append(out, name)
				break
			}
		}
	}
	sort.Strings(out)
	return out
}

// New returns a new Task of the Variant registered under name
func (r *Registry) New(name string, seed uint64) (*Task, error) {
	v, err := r.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}
	return NewFromVariant(v, seed), nil
}
