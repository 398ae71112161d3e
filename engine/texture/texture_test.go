package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// encodeTestPNG builds a 2x2 PNG with a distinct color in each corner so row
// order is observable after decoding.
func encodeTestPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})     // top-left: red
	img.Set(1, 0, color.RGBA{G: 255, A: 255})     // top-right: green
	img.Set(0, 1, color.RGBA{B: 255, A: 255})     // bottom-left: blue
	img.Set(1, 1, color.RGBA{255, 255, 255, 255}) // bottom-right: white

	var buf bytes.Buffer
	assert.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodeBytesFlipsRowsForGL(t *testing.T) {
	data, err := DecodeBytes(encodeTestPNG(t))

	assert.NoError(t, err)
	assert.Equal(t, 2, data.Width)
	assert.Equal(t, 2, data.Height)
	assert.Len(t, data.Pixels, 16)

	// The bottom image row must come first: blue then white.
	assert.Equal(t, []byte{0, 0, 255, 255}, data.Pixels[0:4])
	assert.Equal(t, []byte{255, 255, 255, 255}, data.Pixels[4:8])
	// Then the top row: red then green.
	assert.Equal(t, []byte{255, 0, 0, 255}, data.Pixels[8:12])
	assert.Equal(t, []byte{0, 255, 0, 255}, data.Pixels[12:16])
}

func TestDecodeBytesRejectsGarbage(t *testing.T) {
	_, err := DecodeBytes([]byte("not an image"))
	assert.Error(t, err)
}

func TestDecodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tex.png")
	assert.NoError(t, os.WriteFile(path, encodeTestPNG(t), 0o644))

	data, err := DecodeFile(path)

	assert.NoError(t, err)
	assert.Equal(t, 2, data.Width)
	assert.Equal(t, 2, data.Height)
}

func TestDecodeFileMissing(t *testing.T) {
	_, err := DecodeFile(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestDecodeAllPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	raw := encodeTestPNG(t)
	paths := make([]string, 6)
	for i := range paths {
		paths[i] = filepath.Join(dir, "tex"+string(rune('a'+i))+".png")
		assert.NoError(t, os.WriteFile(paths[i], raw, 0o644))
	}

	results, err := DecodeAll(paths, 3)

	assert.NoError(t, err)
	assert.Len(t, results, len(paths))
	for i, data := range results {
		assert.NotNil(t, data, "result %d", i)
		assert.Equal(t, 2, data.Width)
	}
}

func TestDecodeAllReportsPerPathErrors(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.png")
	assert.NoError(t, os.WriteFile(good, encodeTestPNG(t), 0o644))
	bad := filepath.Join(dir, "missing.png")

	results, err := DecodeAll([]string{good, bad}, 2)

	assert.Error(t, err)
	assert.NotNil(t, results[0])
	assert.Nil(t, results[1])
}

func TestDecodeAllEmptyInput(t *testing.T) {
	results, err := DecodeAll(nil, 4)
	assert.NoError(t, err)
	assert.Nil(t, results)
}

func TestNewTextureNameDefaults(t *testing.T) {
	assert.Equal(t, "assets/container.png", NewTexture(WithFile("assets/container.png")).Name())
	assert.Equal(t, "crate", NewTexture(WithFile("assets/container.png"), WithName("crate")).Name())
	assert.Equal(t, "texture", NewTexture().Name())
}
