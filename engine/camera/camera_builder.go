package camera

// CameraOption is a functional option for configuring a Camera.
type CameraOption func(*cameraImpl)

// WithFov sets the camera's vertical field of view in degrees.
// The value is clamped to the field-of-view bounds at construction.
//
// Parameters:
//   - fov: field of view in degrees
//
// Returns:
//   - CameraOption: functional option to set the field of view
func WithFov(fov float32) CameraOption {
	return func(c *cameraImpl) {
		c.fov = fov
	}
}

// WithFovBounds sets the minimum and maximum field of view for zooming.
//
// Parameters:
//   - min: minimum field of view in degrees
//   - max: maximum field of view in degrees
//
// Returns:
//   - CameraOption: functional option to set the field-of-view bounds
func WithFovBounds(min, max float32) CameraOption {
	return func(c *cameraImpl) {
		if min > 0 && max >= min {
			c.minFov = min
			c.maxFov = max
		}
	}
}

// WithAspect sets the camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraOption: functional option to set the aspect ratio
func WithAspect(aspect float32) CameraOption {
	return func(c *cameraImpl) {
		c.aspect = aspect
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - CameraOption: functional option to set the near plane
func WithNear(near float32) CameraOption {
	return func(c *cameraImpl) {
		c.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraOption: functional option to set the far plane
func WithFar(far float32) CameraOption {
	return func(c *cameraImpl) {
		c.far = far
	}
}

// WithController attaches a controller to the camera.
// After all options are applied, the camera computes its matrices from the
// controller's state.
//
// Parameters:
//   - ctrl: the controller to attach
//
// Returns:
//   - CameraOption: functional option to attach the controller
func WithController(ctrl FreeLookController) CameraOption {
	return func(c *cameraImpl) {
		c.controller = ctrl
	}
}
