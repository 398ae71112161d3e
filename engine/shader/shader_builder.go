package shader

// ShaderOption is a functional option for configuring a Shader.
type ShaderOption func(*shaderImpl)

// WithKey sets the shader's identifier, used for caching and log messages.
// Defaults to the vertex file path, or "shader" for inline-only sources.
//
// Parameters:
//   - key: the identifier to use
//
// Returns:
//   - ShaderOption: functional option to set the key
func WithKey(key string) ShaderOption {
	return func(s *shaderImpl) {
		s.key = key
	}
}

// WithVertexSource provides the vertex stage as an inline GLSL string.
// Takes precedence over WithVertexFile.
//
// Parameters:
//   - source: GLSL vertex shader source
//
// Returns:
//   - ShaderOption: functional option to set the vertex source
func WithVertexSource(source string) ShaderOption {
	return func(s *shaderImpl) {
		s.vertexSource = source
	}
}

// WithVertexFile provides the vertex stage as a file path, read at Compile.
//
// Parameters:
//   - path: path to the GLSL vertex shader file
//
// Returns:
//   - ShaderOption: functional option to set the vertex file path
func WithVertexFile(path string) ShaderOption {
	return func(s *shaderImpl) {
		s.vertexPath = path
	}
}

// WithFragmentSource provides the fragment stage as an inline GLSL string.
// Takes precedence over WithFragmentFile.
//
// Parameters:
//   - source: GLSL fragment shader source
//
// Returns:
//   - ShaderOption: functional option to set the fragment source
func WithFragmentSource(source string) ShaderOption {
	return func(s *shaderImpl) {
		s.fragmentSource = source
	}
}

// WithFragmentFile provides the fragment stage as a file path, read at Compile.
//
// Parameters:
//   - path: path to the GLSL fragment shader file
//
// Returns:
//   - ShaderOption: functional option to set the fragment file path
func WithFragmentFile(path string) ShaderOption {
	return func(s *shaderImpl) {
		s.fragmentPath = path
	}
}
