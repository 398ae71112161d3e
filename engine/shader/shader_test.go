package shader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyDefaults(t *testing.T) {
	assert.Equal(t, "lit", NewShader(WithKey("lit")).Key())
	assert.Equal(t, "shaders/basic.vert", NewShader(WithVertexFile("shaders/basic.vert")).Key())
	assert.Equal(t, "shader", NewShader(WithVertexSource("void main() {}")).Key())
}

func TestResolveSourcePrefersInline(t *testing.T) {
	src, err := resolveSource("inline", "ignored/path.vert")
	assert.NoError(t, err)
	assert.Equal(t, "inline", src)
}

func TestResolveSourceReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "basic.vert")
	assert.NoError(t, os.WriteFile(path, []byte("#version 460 core\n"), 0o644))

	src, err := resolveSource("", path)
	assert.NoError(t, err)
	assert.Equal(t, "#version 460 core\n", src)
}

func TestResolveSourceErrors(t *testing.T) {
	_, err := resolveSource("", "")
	assert.Error(t, err)

	_, err = resolveSource("", filepath.Join(t.TempDir(), "missing.vert"))
	assert.Error(t, err)
}

func TestProgramIsZeroBeforeCompile(t *testing.T) {
	s := NewShader(WithVertexSource("v"), WithFragmentSource("f"))
	assert.Equal(t, uint32(0), s.Program())
}
