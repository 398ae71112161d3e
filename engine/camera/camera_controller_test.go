package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const vectorTol = 1.0e-5

func assertVec3Near(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.InDelta(t, want.X(), got.X(), vectorTol)
	assert.InDelta(t, want.Y(), got.Y(), vectorTol)
	assert.InDelta(t, want.Z(), got.Z(), vectorTol)
}

func TestDefaultOrientationFacesNegativeZ(t *testing.T) {
	fc := NewFreeLookController()

	assert.Equal(t, float32(-90), fc.Yaw())
	assert.Equal(t, float32(0), fc.Pitch())
	assertVec3Near(t, mgl32.Vec3{0, 0, -1}, fc.Forward())
	assertVec3Near(t, mgl32.Vec3{1, 0, 0}, fc.Right())
}

func TestDerivedVectorsStayOrthonormal(t *testing.T) {
	for yaw := float32(-360); yaw <= 360; yaw += 30 {
		for pitch := float32(-89); pitch <= 89; pitch += 17.8 {
			fc := NewFreeLookController(WithYaw(yaw), WithPitch(pitch))

			forward := fc.Forward()
			right := fc.Right()

			assert.InDelta(t, 1.0, float64(forward.Len()), vectorTol, "forward length at yaw=%v pitch=%v", yaw, pitch)
			assert.InDelta(t, 1.0, float64(right.Len()), vectorTol, "right length at yaw=%v pitch=%v", yaw, pitch)
			assert.InDelta(t, 0.0, float64(forward.Dot(right)), vectorTol, "forward·right at yaw=%v pitch=%v", yaw, pitch)
			assert.InDelta(t, 0.0, float64(right.Dot(fc.Up())), vectorTol, "right·up at yaw=%v pitch=%v", yaw, pitch)
		}
	}
}

func TestLookUpdatesVectorsBeforeReturning(t *testing.T) {
	fc := NewFreeLookController()

	// Turn 90° right (sensitivity 0.1, so 900 device units) to face +X.
	fc.Look(900, 0)

	assert.InDelta(t, 0, float64(fc.Yaw()), vectorTol)
	assertVec3Near(t, mgl32.Vec3{1, 0, 0}, fc.Forward())
	assertVec3Near(t, mgl32.Vec3{0, 0, 1}, fc.Right())
}

func TestPitchConstraintHoldsUnderRepeatedInput(t *testing.T) {
	fc := NewFreeLookController()

	// Positive dy looks down; force far past the clamp repeatedly.
	for range 10 {
		fc.Look(0, 1000)
	}
	assert.Equal(t, float32(-89), fc.Pitch())
	assert.InDelta(t, 1.0, float64(fc.Forward().Len()), vectorTol)

	for range 10 {
		fc.Look(0, -1000)
	}
	assert.Equal(t, float32(89), fc.Pitch())
	assert.InDelta(t, 1.0, float64(fc.Forward().Len()), vectorTol)
}

func TestPitchConstraintCanBeDisabled(t *testing.T) {
	fc := NewFreeLookController(WithPitchConstraint(false))

	fc.Look(0, 1000)

	assert.InDelta(t, -100, float64(fc.Pitch()), 1e-3)
}

func TestMoveForwardThenBackwardReturnsToStart(t *testing.T) {
	fc := NewFreeLookController(
		WithPosition(1.5, -2, 7),
		WithYaw(37),
		WithPitch(-12),
	)
	start := fc.Position()

	fc.Move(DirectionForward, 0.72)
	fc.Move(DirectionBackward, 0.72)

	assertVec3Near(t, start, fc.Position())
}

func TestMoveForwardScenario(t *testing.T) {
	// Camera at (0,0,3) facing -Z with speed 2.5 moves to (0,0,0.5)
	// after one full second of forward input.
	fc := NewFreeLookController(WithPosition(0, 0, 3), WithMovementSpeed(2.5))

	fc.Move(DirectionForward, 1.0)

	assertVec3Near(t, mgl32.Vec3{0, 0, 0.5}, fc.Position())
}

func TestStrafeMovesAlongRightVector(t *testing.T) {
	fc := NewFreeLookController(WithPosition(0, 0, 3), WithMovementSpeed(2.5))

	fc.Move(DirectionRight, 1.0)
	assertVec3Near(t, mgl32.Vec3{2.5, 0, 3}, fc.Position())

	fc.Move(DirectionLeft, 2.0)
	assertVec3Near(t, mgl32.Vec3{-2.5, 0, 3}, fc.Position())
}

func TestMoveWithZeroDeltaTimeIsANoOp(t *testing.T) {
	fc := NewFreeLookController(WithPosition(4, 5, 6))

	fc.Move(DirectionForward, 0)

	assert.Equal(t, mgl32.Vec3{4, 5, 6}, fc.Position())
}

func TestMovementIgnoresPitchConstraintState(t *testing.T) {
	// Movement follows the pitched forward vector: looking up and moving
	// forward gains altitude.
	fc := NewFreeLookController(WithPitch(45), WithMovementSpeed(1))

	fc.Move(DirectionForward, 1.0)

	assert.Greater(t, fc.Position().Y(), float32(0.5))
}

func TestTargetIsPositionPlusForward(t *testing.T) {
	fc := NewFreeLookController(WithPosition(0, 0, 3))

	assertVec3Near(t, mgl32.Vec3{0, 0, 2}, fc.Target())
}

func TestConstructionClampsInitialPitch(t *testing.T) {
	fc := NewFreeLookController(WithPitch(135))

	assert.Equal(t, float32(89), fc.Pitch())
}
