package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertMat4Near(t *testing.T, want, got mgl32.Mat4) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], vectorTol, "element %d", i)
	}
}

func TestViewMatrixMatchesLookAt(t *testing.T) {
	fc := NewFreeLookController(WithPosition(0, 0, 3))
	cam := NewCamera(WithController(fc))

	// The controller's forward comes from float32 trig, so it lands within an
	// ulp of (0, 0, -1) rather than exactly on it; compare within tolerance.
	want := mgl32.LookAtV(
		mgl32.Vec3{0, 0, 3},
		mgl32.Vec3{0, 0, 2},
		mgl32.Vec3{0, 1, 0},
	)
	assertMat4Near(t, want, cam.ViewMatrix())
}

func TestViewMatrixIsPure(t *testing.T) {
	fc := NewFreeLookController(WithPosition(1, 2, 3), WithYaw(12), WithPitch(-34))
	cam := NewCamera(WithController(fc))
	cam.Update()

	first := cam.ViewMatrix()
	second := cam.ViewMatrix()

	// Bit-identical, not merely close.
	assert.Equal(t, first, second)
}

func TestUpdateTracksControllerPose(t *testing.T) {
	fc := NewFreeLookController(WithPosition(0, 0, 3))
	cam := NewCamera(WithController(fc))
	before := cam.ViewMatrix()

	fc.Move(DirectionForward, 1.0)
	assert.Equal(t, before, cam.ViewMatrix(), "view must not change until Update")

	cam.Update()
	assert.NotEqual(t, before, cam.ViewMatrix())
}

func TestZoomClampsResultingFov(t *testing.T) {
	cam := NewCamera()

	// Scrolling down (negative delta) widens but never past the upper bound.
	cam.Zoom(-0.5)
	assert.Equal(t, float32(45), cam.Fov())

	cam.Zoom(10)
	assert.Equal(t, float32(35), cam.Fov())

	// A single huge scroll pins the field of view at the lower bound.
	cam.Zoom(1000)
	assert.Equal(t, float32(1), cam.Fov())

	cam.Zoom(-2)
	assert.Equal(t, float32(3), cam.Fov())
}

func TestZoomNeverLeavesBounds(t *testing.T) {
	cam := NewCamera()
	deltas := []float32{5, -100, 44, 3, -0.25, 400, -400, 1}

	for range 20 {
		for _, d := range deltas {
			cam.Zoom(d)
			assert.GreaterOrEqual(t, cam.Fov(), float32(1))
			assert.LessOrEqual(t, cam.Fov(), float32(45))
		}
	}
}

func TestProjectionMatchesPerspective(t *testing.T) {
	cam := NewCamera(
		WithFov(30),
		WithAspect(16.0/9.0),
		WithNear(0.5),
		WithFar(250),
	)

	want := mgl32.Perspective(mgl32.DegToRad(30), 16.0/9.0, 0.5, 250)
	assert.Equal(t, want, cam.ProjectionMatrix())
}

func TestSetAspectRecomputesProjection(t *testing.T) {
	cam := NewCamera(WithFov(45))
	before := cam.ProjectionMatrix()

	cam.SetAspect(800.0 / 600.0)

	assert.NotEqual(t, before, cam.ProjectionMatrix())
	want := mgl32.Perspective(mgl32.DegToRad(45), 800.0/600.0, cam.Near(), cam.Far())
	assert.Equal(t, want, cam.ProjectionMatrix())
}

func TestViewProjectionIsProjectionTimesView(t *testing.T) {
	fc := NewFreeLookController(WithPosition(2, 1, 5), WithYaw(-45))
	cam := NewCamera(WithController(fc), WithAspect(4.0/3.0))

	want := cam.ProjectionMatrix().Mul4(cam.ViewMatrix())
	assert.Equal(t, want, cam.ViewProjectionMatrix())
}

func TestConstructionClampsInitialFov(t *testing.T) {
	cam := NewCamera(WithFov(90))
	assert.Equal(t, float32(45), cam.Fov())

	wide := NewCamera(WithFovBounds(1, 120), WithFov(90))
	assert.Equal(t, float32(90), wide.Fov())
}
