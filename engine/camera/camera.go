package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Perspective and zoom defaults. Field of view is held in degrees and only
// converted to radians when the projection matrix is built.
const (
	defaultFov    = 45.0
	defaultMinFov = 1.0
	defaultMaxFov = 45.0
	defaultAspect = 1.0
	defaultNear   = 0.1
	defaultFar    = 100.0
)

// cameraImpl is the single implementation of Camera.
type cameraImpl struct {
	mu *sync.Mutex

	fov    float32 // degrees
	minFov float32
	maxFov float32
	aspect float32
	near   float32
	far    float32

	viewMatrix           mgl32.Mat4
	projectionMatrix     mgl32.Mat4
	viewProjectionMatrix mgl32.Mat4

	controller FreeLookController
}

// Camera holds perspective settings and computes view/projection matrices
// from an attached FreeLookController. Pose (position/orientation) lives on
// the controller; the camera owns the lens: field of view, aspect ratio, and
// clip planes. Matrices are column-major, right-handed (OpenGL convention).
type Camera interface {
	// Fov returns the vertical field of view in degrees.
	//
	// Returns:
	//   - float32: field of view in degrees
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// ViewMatrix returns the current look-at view matrix. Pure accessor: two
	// calls without an intervening mutation return identical matrices.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the current perspective projection matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns the combined projection * view matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the combined view-projection matrix
	ViewProjectionMatrix() mgl32.Mat4

	// Controller returns the attached FreeLookController.
	// Returns nil if no controller is attached.
	//
	// Returns:
	//   - FreeLookController: the attached controller or nil
	Controller() FreeLookController

	// Update reads position/target/up from the controller and recomputes the
	// matrices. Should be called once per frame before the matrices are used.
	// If no controller is attached, this method does nothing.
	Update()

	// Zoom decreases the field of view by delta and clamps the result to the
	// configured bounds ([1°, 45°] by default). A positive delta (scroll up)
	// narrows the field of view, zooming in.
	//
	// Parameters:
	//   - delta: scroll amount in degrees
	Zoom(delta float32)

	// SetFov sets the vertical field of view in degrees, clamped to the
	// configured bounds, and recomputes matrices.
	//
	// Parameters:
	//   - fov: field of view in degrees
	SetFov(fov float32)

	// SetAspect sets the aspect ratio (width / height) and recomputes matrices.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetNear sets the near clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near float32)

	// SetFar sets the far clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far float32)

	// SetController attaches a FreeLookController to the camera and
	// recomputes matrices from its state.
	//
	// Parameters:
	//   - ctrl: the controller to attach
	SetController(ctrl FreeLookController)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with default perspective settings: 45°
// vertical field of view bounded to [1°, 45°], square aspect, near 0.1,
// far 100. A controller must be attached via SetController or the
// WithController option before the matrices carry pose data.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraOption) Camera {
	c := &cameraImpl{
		mu:                   &sync.Mutex{},
		fov:                  defaultFov,
		minFov:               defaultMinFov,
		maxFov:               defaultMaxFov,
		aspect:               defaultAspect,
		near:                 defaultNear,
		far:                  defaultFar,
		viewMatrix:           mgl32.Ident4(),
		projectionMatrix:     mgl32.Ident4(),
		viewProjectionMatrix: mgl32.Ident4(),
	}

	for _, option := range options {
		option(c)
	}

	c.fov = common.Clamp(c.fov, c.minFov, c.maxFov)
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) Controller() FreeLookController {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controller
}

func (c *cameraImpl) Update() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.controller == nil {
		return
	}
	c.updateMatrices()
}

func (c *cameraImpl) Zoom(delta float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// Clamp the resulting field of view, not the incoming delta: clamping the
	// delta would let large negative scrolls widen the view without bound.
	c.fov = common.Clamp(c.fov-delta, c.minFov, c.maxFov)
	c.updateMatrices()
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = common.Clamp(fov, c.minFov, c.maxFov)
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
	c.updateMatrices()
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
	c.updateMatrices()
}

func (c *cameraImpl) SetController(ctrl FreeLookController) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.controller = ctrl
	c.updateMatrices()
}

// updateMatrices recalculates the view, projection, and view-projection
// matrices. The view matrix reads eye/target/up from the attached controller;
// with no controller the view matrix stays at its previous value and only the
// projection is rebuilt. Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	if c.controller != nil {
		c.viewMatrix = mgl32.LookAtV(
			c.controller.Position(),
			c.controller.Target(),
			c.controller.Up(),
		)
	}

	c.projectionMatrix = mgl32.Perspective(
		mgl32.DegToRad(c.fov), c.aspect, c.near, c.far,
	)

	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
}
