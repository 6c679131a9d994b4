package jitterbug

import "gonum.org/v1/gonum/num/quat"

// Names of the model elements that the Jitterbug tasks read and write.
const (
	RootJoint         = "root"          // free joint of the Jitterbug body
	MotorJoint        = "jointMass"     // hinge joint of the oscillating mass
	RobotBody         = "jitterbug"     // Jitterbug core body
	TargetBody        = "target"        // target marker body
	TargetGeom        = "target"        // target marker geom
	TargetPointerGeom = "targetPointer" // heading indicator of the target
)

// Physics provides named access to the current state of a simulation
// of the Jitterbug model. Physics is implemented by a physics engine;
// the Jitterbug tasks only read from it, except for writes made
// through ResetContext when an episode starts.
//
// All orientations are unit quaternions ordered (w, x, y, z) and all
// rotation matrices are 3x3 matrices stored in row-major order.
type Physics interface {
	// JointQPos returns the generalized position of a joint. A free
	// joint has 7 values (x, y, z, qw, qx, qy, qz) and a hinge joint 1.
	JointQPos(joint string) ([]float64, error)

	// JointQVel returns the generalized velocity of a joint. A free
	// joint has 6 values (linear xyz, angular xyz) and a hinge joint 1.
	JointQVel(joint string) ([]float64, error)

	// GeomXPos returns the global position of a geom
	GeomXPos(geom string) ([]float64, error)

	// BodyXQuat returns the global orientation of a body
	BodyXQuat(body string) ([]float64, error)

	// BodyXMat returns the global rotation matrix of a body
	BodyXMat(body string) ([]float64, error)

	// ResetContext runs edit in a scoped edit of the model. Changes
	// made through the Model become visible to the read methods
	// only after ResetContext returns.
	ResetContext(edit func(Model) error) error
}

// Model is the writable view of a model given out by
// Physics.ResetContext
type Model interface {
	// SetBodyXY sets the x and y position of a body relative to its
	// parent, leaving z unchanged
	SetBodyXY(body string, x, y float64) error

	// SetBodyQuat sets the orientation of a body relative to its parent
	SetBodyQuat(body string, q quat.Number) error

	// SetGeomAlpha sets the alpha channel of a geom's colour
	SetGeomAlpha(geom string, alpha float64) error
}
