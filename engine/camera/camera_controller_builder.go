package camera

import "github.com/go-gl/mathgl/mgl32"

// FreeLookControllerOption is a functional option for configuring a FreeLookController.
type FreeLookControllerOption func(*freeLookControllerImpl)

// WithPosition sets the initial world-space position.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - FreeLookControllerOption: functional option to set the position
func WithPosition(x, y, z float32) FreeLookControllerOption {
	return func(fc *freeLookControllerImpl) {
		fc.position = mgl32.Vec3{x, y, z}
	}
}

// WithYaw sets the initial horizontal orientation angle.
//
// Parameters:
//   - yaw: yaw in degrees (-90 = facing negative Z)
//
// Returns:
//   - FreeLookControllerOption: functional option to set the yaw
func WithYaw(yaw float32) FreeLookControllerOption {
	return func(fc *freeLookControllerImpl) {
		fc.yaw = yaw
	}
}

// WithPitch sets the initial vertical orientation angle.
// The value is clamped to the pitch bounds at construction when the pitch
// constraint is enabled.
//
// Parameters:
//   - pitch: pitch in degrees (0 = level)
//
// Returns:
//   - FreeLookControllerOption: functional option to set the pitch
func WithPitch(pitch float32) FreeLookControllerOption {
	return func(fc *freeLookControllerImpl) {
		fc.pitch = pitch
	}
}

// WithMovementSpeed sets the movement speed in world units per second.
//
// Parameters:
//   - speed: movement speed (values <= 0 leave the default in place)
//
// Returns:
//   - FreeLookControllerOption: functional option to set the movement speed
func WithMovementSpeed(speed float32) FreeLookControllerOption {
	return func(fc *freeLookControllerImpl) {
		if speed > 0 {
			fc.movementSpeed = speed
		}
	}
}

// WithLookSensitivity sets the multiplier applied to raw cursor deltas.
//
// Parameters:
//   - sensitivity: look sensitivity (values <= 0 leave the default in place)
//
// Returns:
//   - FreeLookControllerOption: functional option to set the look sensitivity
func WithLookSensitivity(sensitivity float32) FreeLookControllerOption {
	return func(fc *freeLookControllerImpl) {
		if sensitivity > 0 {
			fc.lookSensitivity = sensitivity
		}
	}
}

// WithWorldUp sets the fixed world up vector. The vector is normalized.
//
// Parameters:
//   - x, y, z: world up components
//
// Returns:
//   - FreeLookControllerOption: functional option to set the world up vector
func WithWorldUp(x, y, z float32) FreeLookControllerOption {
	return func(fc *freeLookControllerImpl) {
		fc.worldUp = mgl32.Vec3{x, y, z}.Normalize()
	}
}

// WithPitchConstraint enables or disables pitch clamping. Disabling the
// constraint allows the view to flip past vertical; the default is enabled.
//
// Parameters:
//   - constrain: whether pitch is clamped to [-89°, 89°]
//
// Returns:
//   - FreeLookControllerOption: functional option to set the pitch constraint
func WithPitchConstraint(constrain bool) FreeLookControllerOption {
	return func(fc *freeLookControllerImpl) {
		fc.constrainPitch = constrain
	}
}
