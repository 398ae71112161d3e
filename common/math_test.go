package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(1), Clamp(float32(-3.5), 1, 45))
	assert.Equal(t, float32(45), Clamp(float32(100), 1, 45))
	assert.Equal(t, float32(20), Clamp(float32(20), 1, 45))
	assert.Equal(t, -89.0, Clamp(-200.0, -89.0, 89.0))
	assert.Equal(t, 7, Clamp(7, 0, 10))
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "fallback", Coalesce("", "fallback", "later"))
	assert.Equal(t, "first", Coalesce("first", "second"))
	assert.Equal(t, 0, Coalesce(0, 0))
	assert.Equal(t, 3, Coalesce(0, 3, 5))
}
