package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Free-look defaults. Yaw of -90° places the forward vector exactly on
// (0, 0, -1) at zero pitch, looking "into the screen" in a right-handed world.
const (
	defaultYaw             = -90.0
	defaultPitch           = 0.0
	defaultMovementSpeed   = 2.5
	defaultLookSensitivity = 0.1

	// Pitch stops short of ±90° so the forward vector never becomes parallel
	// to the world up vector, which would degenerate the look-at basis.
	minPitch = -89.0
	maxPitch = 89.0
)

// freeLookControllerImpl is the single implementation of FreeLookController.
// Orientation is stored as yaw/pitch Euler angles in degrees; the forward and
// right vectors are derived state, recomputed under the mutex whenever the
// angles change so observers never see a stale basis.
type freeLookControllerImpl struct {
	mu *sync.Mutex

	position mgl32.Vec3
	worldUp  mgl32.Vec3

	// Derived from yaw/pitch, always unit length.
	forward mgl32.Vec3
	right   mgl32.Vec3

	yaw   float32 // degrees, unbounded
	pitch float32 // degrees, clamped when constrainPitch is set

	movementSpeed   float32
	lookSensitivity float32
	constrainPitch  bool
}

// Compile-time interface compliance check
var _ FreeLookController = &freeLookControllerImpl{}

// NewFreeLookController creates a new free-look controller with first-person
// defaults: origin position, yaw -90° (facing negative Z), level pitch,
// movement speed 2.5 units/s, look sensitivity 0.1, world up (0, 1, 0).
// The forward and right vectors are derived before the controller is returned.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - FreeLookController: the newly created controller
func NewFreeLookController(options ...FreeLookControllerOption) FreeLookController {
	fc := &freeLookControllerImpl{
		mu:       &sync.Mutex{},
		position: mgl32.Vec3{0, 0, 0},
		worldUp:  mgl32.Vec3{0, 1, 0},

		yaw:   defaultYaw,
		pitch: defaultPitch,

		movementSpeed:   defaultMovementSpeed,
		lookSensitivity: defaultLookSensitivity,
		constrainPitch:  true,
	}

	for _, option := range options {
		option(fc)
	}

	if fc.constrainPitch {
		fc.pitch = common.Clamp(fc.pitch, minPitch, maxPitch)
	}
	fc.updateVectors()
	return fc
}

// updateVectors re-derives the forward and right vectors from yaw and pitch.
// Standard spherical-to-Cartesian mapping: yaw is measured from the negative
// Z axis in the XZ plane, pitch from the XZ plane toward +Y.
// Caller must hold the mutex.
func (fc *freeLookControllerImpl) updateVectors() {
	yaw := float64(mgl32.DegToRad(fc.yaw))
	pitch := float64(mgl32.DegToRad(fc.pitch))

	fc.forward = mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
	fc.right = fc.forward.Cross(fc.worldUp).Normalize()
}

func (fc *freeLookControllerImpl) Position() mgl32.Vec3 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.position
}

func (fc *freeLookControllerImpl) SetPosition(position mgl32.Vec3) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.position = position
}

func (fc *freeLookControllerImpl) Target() mgl32.Vec3 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.position.Add(fc.forward)
}

func (fc *freeLookControllerImpl) Forward() mgl32.Vec3 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.forward
}

func (fc *freeLookControllerImpl) Right() mgl32.Vec3 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.right
}

func (fc *freeLookControllerImpl) Up() mgl32.Vec3 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.worldUp
}

func (fc *freeLookControllerImpl) Yaw() float32 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.yaw
}

func (fc *freeLookControllerImpl) SetYaw(yaw float32) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.yaw = yaw
	fc.updateVectors()
}

func (fc *freeLookControllerImpl) Pitch() float32 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.pitch
}

func (fc *freeLookControllerImpl) SetPitch(pitch float32) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.pitch = pitch
	if fc.constrainPitch {
		fc.pitch = common.Clamp(fc.pitch, minPitch, maxPitch)
	}
	fc.updateVectors()
}

func (fc *freeLookControllerImpl) MovementSpeed() float32 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.movementSpeed
}

func (fc *freeLookControllerImpl) LookSensitivity() float32 {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.lookSensitivity
}

func (fc *freeLookControllerImpl) Move(direction Direction, deltaTime float32) {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	velocity := fc.movementSpeed * deltaTime
	switch direction {
	case DirectionForward:
		fc.position = fc.position.Add(fc.forward.Mul(velocity))
	case DirectionBackward:
		fc.position = fc.position.Sub(fc.forward.Mul(velocity))
	case DirectionLeft:
		fc.position = fc.position.Sub(fc.right.Mul(velocity))
	case DirectionRight:
		fc.position = fc.position.Add(fc.right.Mul(velocity))
	}
}

func (fc *freeLookControllerImpl) Look(dx, dy float32) {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	fc.yaw += dx * fc.lookSensitivity
	// Screen Y grows downward: a positive dy must decrease pitch to look down.
	fc.pitch -= dy * fc.lookSensitivity

	if fc.constrainPitch {
		fc.pitch = common.Clamp(fc.pitch, minPitch, maxPitch)
	}

	fc.updateVectors()
}
