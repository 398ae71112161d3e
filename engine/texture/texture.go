package texture

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/go-gl/gl/v4.6-core/gl"
)

// textureImpl is the single implementation of Texture.
type textureImpl struct {
	mu *sync.Mutex

	name string
	path string
	data *ImageData

	id uint32
}

// Texture defines the interface for a 2D OpenGL texture. Pixel data comes
// from a file path or a pre-decoded ImageData (builder options); Upload
// creates the GL texture object and must be called with a current context
// before Bind.
type Texture interface {
	// Name retrieves the identifier for this texture, used for logs.
	//
	// Returns:
	//   - string: the texture's name
	Name() string

	// ID returns the GL texture object name, or 0 before Upload.
	//
	// Returns:
	//   - uint32: the GL texture object
	ID() uint32

	// Width returns the texture width in pixels, or 0 before decode.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the texture height in pixels, or 0 before decode.
	//
	// Returns:
	//   - int: height in pixels
	Height() int

	// Upload decodes the source if needed and creates the GL texture object
	// with repeating wrap modes, linear filtering, and generated mipmaps.
	//
	// Returns:
	//   - error: error if decoding fails or no pixel source was provided
	Upload() error

	// Bind makes the texture current on the given texture unit.
	//
	// Parameters:
	//   - unit: the texture unit index (0 for gl.TEXTURE0, and so on)
	Bind(unit uint32)

	// Delete releases the GL texture object.
	Delete()
}

// Compile-time interface compliance check
var _ Texture = &textureImpl{}

// NewTexture creates a new Texture from the provided options. No GL calls are
// made until Upload, so textures can be constructed (and their images decoded
// off-thread) before a context exists.
//
// Parameters:
//   - options: functional options providing the pixel source and an optional name
//
// Returns:
//   - Texture: the newly created (not yet uploaded) texture
func NewTexture(options ...TextureOption) Texture {
	t := &textureImpl{
		mu: &sync.Mutex{},
	}
	for _, option := range options {
		option(t)
	}
	t.name = common.Coalesce(t.name, t.path, "texture")
	return t
}

func (t *textureImpl) Name() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.name
}

func (t *textureImpl) ID() uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.id
}

func (t *textureImpl) Width() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.data == nil {
		return 0
	}
	return t.data.Width
}

func (t *textureImpl) Height() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.data == nil {
		return 0
	}
	return t.data.Height
}

func (t *textureImpl) Upload() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.data == nil {
		if t.path == "" {
			return fmt.Errorf("texture %s: no image or path provided", t.name)
		}
		data, err := DecodeFile(t.path)
		if err != nil {
			return fmt.Errorf("texture %s: %w", t.name, err)
		}
		t.data = data
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA8,
		int32(t.data.Width),
		int32(t.data.Height),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(t.data.Pixels),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	t.id = id
	return nil
}

func (t *textureImpl) Bind(unit uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

func (t *textureImpl) Delete() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}
