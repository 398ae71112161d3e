package camera

import "github.com/go-gl/mathgl/mgl32"

// Direction identifies a movement intent relative to the camera's current
// orientation. Movement is resolved against the controller's derived forward
// and right vectors, so the same key always moves "screen-relative".
type Direction int

const (
	// DirectionForward moves along the forward vector.
	DirectionForward Direction = iota

	// DirectionBackward moves against the forward vector.
	DirectionBackward

	// DirectionLeft strafes against the right vector.
	DirectionLeft

	// DirectionRight strafes along the right vector.
	DirectionRight
)

// FreeLookController is a first-person camera control system. It owns the
// camera pose (world-space position plus yaw/pitch orientation in degrees)
// and translates discrete per-frame input into pose updates. The attached
// Camera reads Position/Target/Up from the controller to build its view matrix.
//
// Yaw is unbounded and wraps through trigonometric periodicity; pitch is
// clamped short of ±90° (when the constraint is enabled) so the look
// direction never collapses onto the world up axis.
type FreeLookController interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space camera position
	Position() mgl32.Vec3

	// SetPosition sets the camera's world-space position directly.
	//
	// Parameters:
	//   - position: world-space coordinates
	SetPosition(position mgl32.Vec3)

	// Target returns the look-at point, which is always position + forward.
	//
	// Returns:
	//   - mgl32.Vec3: world-space target position
	Target() mgl32.Vec3

	// Forward returns the derived unit-length forward vector.
	//
	// Returns:
	//   - mgl32.Vec3: forward direction
	Forward() mgl32.Vec3

	// Right returns the derived unit-length right vector, orthogonal to both
	// the forward vector and the world up vector.
	//
	// Returns:
	//   - mgl32.Vec3: right direction
	Right() mgl32.Vec3

	// Up returns the fixed world up vector.
	//
	// Returns:
	//   - mgl32.Vec3: world up direction
	Up() mgl32.Vec3

	// Yaw returns the horizontal orientation angle in degrees.
	// -90° looks down the negative Z axis.
	//
	// Returns:
	//   - float32: yaw in degrees
	Yaw() float32

	// SetYaw sets the horizontal orientation angle directly and re-derives
	// the forward and right vectors.
	//
	// Parameters:
	//   - yaw: new yaw in degrees
	SetYaw(yaw float32)

	// Pitch returns the vertical orientation angle in degrees.
	// 0° is level with the XZ plane, positive looks up.
	//
	// Returns:
	//   - float32: pitch in degrees
	Pitch() float32

	// SetPitch sets the vertical orientation angle directly, clamped when the
	// pitch constraint is enabled, and re-derives the forward and right vectors.
	//
	// Parameters:
	//   - pitch: new pitch in degrees
	SetPitch(pitch float32)

	// MovementSpeed returns the movement speed in world units per second.
	//
	// Returns:
	//   - float32: movement speed
	MovementSpeed() float32

	// LookSensitivity returns the multiplier applied to raw cursor deltas.
	//
	// Returns:
	//   - float32: look sensitivity
	LookSensitivity() float32

	// Move displaces the camera position along the given direction.
	// The displacement is MovementSpeed * deltaTime along the forward vector
	// (forward/backward) or the right vector (left/right). Orientation is
	// unchanged.
	//
	// Parameters:
	//   - direction: movement intent
	//   - deltaTime: seconds since the last frame (>= 0)
	Move(direction Direction, deltaTime float32)

	// Look applies raw cursor-motion deltas to the orientation. Deltas are
	// scaled by LookSensitivity; dx increases yaw, dy decreases pitch (screen
	// Y grows downward, so positive dy looks down). Pitch is clamped to
	// [-89°, 89°] when the constraint is enabled. The forward and right
	// vectors are re-derived before Look returns.
	//
	// Parameters:
	//   - dx: horizontal cursor delta in device units
	//   - dy: vertical cursor delta in device units
	Look(dx, dy float32)
}
