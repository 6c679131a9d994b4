package jitterbug

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Names of observation fields
const (
	FieldPosition        = "position"
	FieldVelocity        = "velocity"
	FieldMotorPosition   = "motor_position"
	FieldMotorVelocity   = "motor_velocity"
	FieldTargetPosition  = "target_position"
	FieldTargetDirection = "target_direction"
)

// fieldSizes stores the number of values in each observation field
var fieldSizes = map[string]int{
	FieldPosition:        7,
	FieldVelocity:        6,
	FieldMotorPosition:   1,
	FieldMotorVelocity:   1,
	FieldTargetPosition:  3,
	FieldTargetDirection: 2,
}

// Field is a single named entry of an Observation
type Field struct {
	Name  string
	Value *mat.VecDense
}

// Observation is an ordered record of named observation vectors.
// Fields are always ordered position, velocity, motor_position,
// motor_velocity, then target_position and target_direction if the
// task observes them.
type Observation struct {
	fields []Field
}

func (o *Observation) add(name string, value *mat.VecDense) {
	o.fields = append(o.fields, Field{name, value})
}

// Fields returns the fields of the observation in order
func (o Observation) Fields() []Field {
	out := make([]Field, len(o.fields))
	copy(out, o.fields)
	return out
}

// Names returns the field names of the observation in order
func (o Observation) Names() []string {
	out := make([]string, len(o.fields))
	for i, f := range o.fields {
		out[i] = f.Name
	}
	return out
}

// Get returns the field with the given name
func (o Observation) Get(name string) (*mat.VecDense, bool) {
	for _, f := range o.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Len returns the total number of values over all fields
func (o Observation) Len() int {
	n := 0
	for _, f := range o.fields {
		n += f.Value.Len()
	}
	return n
}

// Flatten concatenates all fields in order into a single vector
func (o Observation) Flatten() *mat.VecDense {
	out := mat.NewVecDense(o.Len(), nil)
	i := 0
	for _, f := range o.fields {
		for j := 0; j < f.Value.Len(); j++ {
			out.SetVec(i, f.Value.AtVec(j))
			i++
		}
	}
	return out
}

func (o Observation) String() string {
	str := ""
	for _, f := range o.fields {
		str += fmt.Sprintf("%v: %v  ", f.Name, mat.Formatted(f.Value.T()))
	}
	return str
}

// ObservationFields returns the field names that Tasks of Variant v
// observe, in order
func ObservationFields(v Variant) []string {
	rules := v.rules()

	fields := []string{FieldPosition, FieldVelocity, FieldMotorPosition,
		FieldMotorVelocity}
	if rules.observeTargetPosition {
		fields = append(fields, FieldTargetPosition)
	}
	if rules.observeTargetDirection {
		fields = append(fields, FieldTargetDirection)
	}
	return fields
}

// ObservationSize returns the length of the flattened observations of
// Tasks of Variant v
func ObservationSize(v Variant) int {
	n := 0
	for _, f := range ObservationFields(v) {
		n += fieldSizes[f]
	}
	return n
}
