package texture

// TextureOption is a functional option for configuring a Texture.
type TextureOption func(*textureImpl)

// WithName sets the texture's identifier, used for log and error messages.
// Defaults to the file path, or "texture" for in-memory images.
//
// Parameters:
//   - name: the identifier to use
//
// Returns:
//   - TextureOption: functional option to set the name
func WithName(name string) TextureOption {
	return func(t *textureImpl) {
		t.name = name
	}
}

// WithFile provides the pixel source as an image file path, decoded at Upload.
//
// Parameters:
//   - path: path to a PNG or JPEG file
//
// Returns:
//   - TextureOption: functional option to set the file path
func WithFile(path string) TextureOption {
	return func(t *textureImpl) {
		t.path = path
	}
}

// WithImage provides pre-decoded pixel data, e.g. from DecodeAll.
// Takes precedence over WithFile.
//
// Parameters:
//   - data: decoded RGBA pixel data
//
// Returns:
//   - TextureOption: functional option to set the pixel data
func WithImage(data *ImageData) TextureOption {
	return func(t *textureImpl) {
		t.data = data
	}
}
