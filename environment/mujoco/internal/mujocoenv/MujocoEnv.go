//go:build mujoco

package mujocoenv

// #cgo LDFLAGS: -lmujoco
// #include <stdlib.h>
// #include <mujoco/mujoco.h>
import "C"

import (
	"fmt"
	"os"
	"unsafe"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"

	"github.com/samuelfneumann/jitterbug/environment"
)

// MujocoEnv holds a MuJoCo model and its simulation data
type MujocoEnv struct {
	Model *C.mjModel
	Data  *C.mjData

	Nu, Nv, Nq int
}

// NewMujocoEnv loads the MJCF model at xmlPath
func NewMujocoEnv(xmlPath string) (*MujocoEnv, error) {
	if _, err := os.Stat(xmlPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("newMujocoEnv: no such path '%v'", xmlPath)
	}

	model, data, err := loadXML(xmlPath)
	if err != nil {
		return nil, fmt.Errorf("newMujocoEnv: could not load XML: %v", err)
	}

	m := &MujocoEnv{
		Model: model,
		Data:  data,
		Nu:    int(model.nu),
		Nv:    int(model.nv),
		Nq:    int(model.nq),
	}
	C.mj_forward(m.Model, m.Data)

	return m, nil
}

func loadXML(file string) (*C.mjModel, *C.mjData, error) {
	// Create MjModel from XML
	modelName := C.CString(file)
	defer C.free(unsafe.Pointer(modelName))
	var errBuf [1000]C.char
	model := C.mj_loadXML(modelName, nil, &errBuf[0], C.int(len(errBuf)))
	if model == nil {
		return nil, nil, fmt.Errorf("could not construct model: %v",
			C.GoString(&errBuf[0]))
	}

	// Create the MjData
	data := C.mj_makeData(model)
	if data == nil {
		C.mj_deleteModel(model)
		return nil, nil, fmt.Errorf("could not construct mjData")
	}

	return model, data, nil
}

// f64s views a C array of n mjtNum as a Go slice without copying
func f64s(array *C.mjtNum, n int) []float64 {
	return unsafe.Slice((*float64)(unsafe.Pointer(array)), n)
}

// ints views a C array of n ints as a Go slice without copying
func ints(array *C.int, n int) []C.int {
	return unsafe.Slice(array, n)
}

// copyOf returns a copy of s
func copyOf(s []float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)
	return out
}

// id returns the id of the named element of type objType (mjtObj)
func (m *MujocoEnv) id(objType C.int, kind, name string) (int, error) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	id := int(C.mj_name2id(m.Model, objType, cName))
	if id < 0 {
		return -1, noSuchName(kind, name)
	}
	return id, nil
}

// joint returns the qpos and qvel address ranges of a named joint
func (m *MujocoEnv) joint(name string) (qposAdr, nq, dofAdr, nv int,
	err error) {
	id, err := m.id(C.mjOBJ_JOINT, "joint", name)
	if err != nil {
		return 0, 0, 0, 0, err
	}

	njnt := int(m.Model.njnt)
	jointType := int(ints(m.Model.jnt_type, njnt)[id])
	nq, nv = jointWidths(jointType)

	qposAdr = int(ints(m.Model.jnt_qposadr, njnt)[id])
	dofAdr = int(ints(m.Model.jnt_dofadr, njnt)[id])
	return qposAdr, nq, dofAdr, nv, nil
}

// JointQPos returns the generalized position of a joint
func (m *MujocoEnv) JointQPos(name string) ([]float64, error) {
	adr, nq, _, _, err := m.joint(name)
	if err != nil {
		return nil, fmt.Errorf("jointQPos: %w", err)
	}
	return copyOf(f64s(m.Data.qpos, m.Nq)[adr : adr+nq]), nil
}

// JointQVel returns the generalized velocity of a joint
func (m *MujocoEnv) JointQVel(name string) ([]float64, error) {
	_, _, adr, nv, err := m.joint(name)
	if err != nil {
		return nil, fmt.Errorf("jointQVel: %w", err)
	}
	return copyOf(f64s(m.Data.qvel, m.Nv)[adr : adr+nv]), nil
}

// GeomXPos returns the global position of a geom
func (m *MujocoEnv) GeomXPos(name string) ([]float64, error) {
	id, err := m.id(C.mjOBJ_GEOM, "geom", name)
	if err != nil {
		return nil, fmt.Errorf("geomXPos: %w", err)
	}
	xpos := f64s(m.Data.geom_xpos, 3*int(m.Model.ngeom))
	return copyOf(xpos[3*id : 3*id+3]), nil
}

// BodyXQuat returns the global orientation of a body
func (m *MujocoEnv) BodyXQuat(name string) ([]float64, error) {
	id, err := m.id(C.mjOBJ_BODY, "body", name)
	if err != nil {
		return nil, fmt.Errorf("bodyXQuat: %w", err)
	}
	xquat := f64s(m.Data.xquat, 4*int(m.Model.nbody))
	return copyOf(xquat[4*id : 4*id+4]), nil
}

// BodyXMat returns the global row-major rotation matrix of a body
func (m *MujocoEnv) BodyXMat(name string) ([]float64, error) {
	id, err := m.id(C.mjOBJ_BODY, "body", name)
	if err != nil {
		return nil, fmt.Errorf("bodyXMat: %w", err)
	}
	xmat := f64s(m.Data.xmat, 9*int(m.Model.nbody))
	return copyOf(xmat[9*id : 9*id+9]), nil
}

// Editor edits the model inside ResetContext
type Editor struct {
	env *MujocoEnv
}

// SetBodyXY sets the x and y position of a body relative to its parent
func (e *Editor) SetBodyXY(body string, x, y float64) error {
	id, err := e.env.id(C.mjOBJ_BODY, "body", body)
	if err != nil {
		return fmt.Errorf("setBodyXY: %w", err)
	}
	pos := f64s(e.env.Model.body_pos, 3*int(e.env.Model.nbody))
	pos[3*id] = x
	pos[3*id+1] = y
	return nil
}

// SetBodyQuat sets the orientation of a body relative to its parent
func (e *Editor) SetBodyQuat(body string, q quat.Number) error {
	id, err := e.env.id(C.mjOBJ_BODY, "body", body)
	if err != nil {
		return fmt.Errorf("setBodyQuat: %w", err)
	}
	bq := f64s(e.env.Model.body_quat, 4*int(e.env.Model.nbody))
	copy(bq[4*id:4*id+4], []float64{q.Real, q.Imag, q.Jmag, q.Kmag})
	return nil
}

// SetGeomAlpha sets the alpha channel of a geom's colour
func (e *Editor) SetGeomAlpha(geom string, alpha float64) error {
	id, err := e.env.id(C.mjOBJ_GEOM, "geom", geom)
	if err != nil {
		return fmt.Errorf("setGeomAlpha: %w", err)
	}
	rgba := unsafe.Slice((*float32)(unsafe.Pointer(e.env.Model.geom_rgba)),
		4*int(e.env.Model.ngeom))
	rgba[4*id+3] = float32(alpha)
	return nil
}

// ResetContext resets the simulation data, runs edit, and then
// recomputes all derived quantities. Edits are visible through the
// read methods only after ResetContext returns.
func (m *MujocoEnv) ResetContext(edit func(*Editor) error) error {
	C.mj_resetData(m.Model, m.Data)
	err := edit(&Editor{m})
	C.mj_forward(m.Model, m.Data)

	if err != nil {
		return fmt.Errorf("resetContext: %w", err)
	}
	return nil
}

// Reset resets the simulation data to the model's initial state
func (m *MujocoEnv) Reset() error {
	C.mj_resetData(m.Model, m.Data)
	C.mj_forward(m.Model, m.Data)
	return nil
}

// Timestep returns the duration of a single simulation step
func (m *MujocoEnv) Timestep() float64 {
	return float64(m.Model.opt.timestep)
}

// DoSimulation applies control and steps the simulation nFrames times
func (m *MujocoEnv) DoSimulation(control *mat.VecDense, nFrames int) error {
	if control.Len() != m.Nu {
		return fmt.Errorf("doSimulation: invalid control dimensions \n\t"+
			"have(%v) \n\twant(%v)", control.Len(), m.Nu)
	}

	ctrl := f64s(m.Data.ctrl, m.Nu)
	for i := range ctrl {
		ctrl[i] = control.AtVec(i)
	}

	for i := 0; i < nFrames; i++ {
		C.mj_step(m.Model, m.Data)
	}
	return nil
}

// ActionSpec returns the control range of the model's actuators
func (m *MujocoEnv) ActionSpec() environment.Spec {
	bounds := f64s(m.Model.actuator_ctrlrange, m.Nu*2)

	low := mat.NewVecDense(m.Nu, nil)
	high := mat.NewVecDense(m.Nu, nil)
	for i := 0; i < m.Nu; i++ {
		low.SetVec(i, bounds[2*i])
		high.SetVec(i, bounds[2*i+1])
	}

	return environment.NewSpec(mat.NewVecDense(m.Nu, nil),
		environment.Action, low, high, environment.Continuous)
}

// Close frees the model and data
func (m *MujocoEnv) Close() {
	C.mj_deleteData(m.Data)
	C.mj_deleteModel(m.Model)
}
