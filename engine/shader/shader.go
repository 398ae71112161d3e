package shader

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// shaderImpl is the single implementation of Shader.
// It holds the GLSL sources for the vertex/fragment pair, the linked program
// object, and a cache of uniform locations keyed by name.
type shaderImpl struct {
	mu *sync.Mutex

	key string

	vertexSource   string
	vertexPath     string
	fragmentSource string
	fragmentPath   string

	program          uint32
	uniformLocations map[string]int32
}

// Shader defines the interface for a GLSL vertex/fragment program pair.
// Sources are provided through builder options (inline or from file paths);
// Compile performs the GL-side compile and link and must be called with a
// current OpenGL context before Use or any uniform setter.
type Shader interface {
	// Key retrieves the identifier for this shader, used for caching and logs.
	//
	// Returns:
	//   - string: the shader's key
	Key() string

	// Program returns the GL program object name, or 0 before Compile.
	//
	// Returns:
	//   - uint32: the linked program object
	Program() uint32

	// Compile compiles the vertex and fragment stages and links them into a
	// program. Sources set inline take precedence over file paths. Compile
	// and link failures carry the GL info log in the returned error and leave
	// any previously linked program intact; on success the previous program
	// is released and its cached uniform locations are discarded.
	//
	// Returns:
	//   - error: error if reading, compiling, or linking fails
	Compile() error

	// Use installs the program as part of the current rendering state.
	Use()

	// SetInt uploads an integer uniform (also used for sampler units).
	//
	// Parameters:
	//   - name: the uniform variable name
	//   - value: the value to upload
	SetInt(name string, value int32)

	// SetFloat uploads a float uniform.
	//
	// Parameters:
	//   - name: the uniform variable name
	//   - value: the value to upload
	SetFloat(name string, value float32)

	// SetVec3 uploads a vec3 uniform.
	//
	// Parameters:
	//   - name: the uniform variable name
	//   - value: the vector to upload
	SetVec3(name string, value mgl32.Vec3)

	// SetMat4 uploads a mat4 uniform in column-major order.
	//
	// Parameters:
	//   - name: the uniform variable name
	//   - value: the matrix to upload
	SetMat4(name string, value mgl32.Mat4)

	// Delete releases the GL program object. The shader may not be used
	// afterward.
	Delete()
}

// Compile-time interface compliance check
var _ Shader = &shaderImpl{}

// NewShader creates a new Shader from the provided options. No GL calls are
// made until Compile, so shaders can be constructed before a context exists.
//
// Parameters:
//   - options: functional options providing sources and an optional key
//
// Returns:
//   - Shader: the newly created (not yet compiled) shader
func NewShader(options ...ShaderOption) Shader {
	s := &shaderImpl{
		mu:               &sync.Mutex{},
		uniformLocations: make(map[string]int32),
	}
	for _, option := range options {
		option(s)
	}
	s.key = common.Coalesce(s.key, s.vertexPath, "shader")
	return s
}

func (s *shaderImpl) Key() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.key
}

func (s *shaderImpl) Program() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.program
}

func (s *shaderImpl) Compile() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	vertexSource, err := resolveSource(s.vertexSource, s.vertexPath)
	if err != nil {
		return fmt.Errorf("shader %s: vertex stage: %w", s.key, err)
	}
	fragmentSource, err := resolveSource(s.fragmentSource, s.fragmentPath)
	if err != nil {
		return fmt.Errorf("shader %s: fragment stage: %w", s.key, err)
	}

	vertex, err := compileStage(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return fmt.Errorf("shader %s: vertex stage: %w", s.key, err)
	}
	fragment, err := compileStage(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		gl.DeleteShader(vertex)
		return fmt.Errorf("shader %s: fragment stage: %w", s.key, err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	// Stage objects are no longer needed once the program is linked.
	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		infoLog := programInfoLog(program)
		gl.DeleteProgram(program)
		return fmt.Errorf("shader %s: failed to link program: %s", s.key, infoLog)
	}

	// Recompiling replaces the previous program; its object and any uniform
	// locations cached against it are no longer valid.
	if s.program != 0 {
		gl.DeleteProgram(s.program)
		clear(s.uniformLocations)
	}
	s.program = program
	return nil
}

func (s *shaderImpl) Use() {
	s.mu.Lock()
	defer s.mu.Unlock()
	gl.UseProgram(s.program)
}

func (s *shaderImpl) SetInt(name string, value int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gl.Uniform1i(s.location(name), value)
}

func (s *shaderImpl) SetFloat(name string, value float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gl.Uniform1f(s.location(name), value)
}

func (s *shaderImpl) SetVec3(name string, value mgl32.Vec3) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gl.Uniform3f(s.location(name), value.X(), value.Y(), value.Z())
}

func (s *shaderImpl) SetMat4(name string, value mgl32.Mat4) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gl.UniformMatrix4fv(s.location(name), 1, false, &value[0])
}

func (s *shaderImpl) Delete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.program != 0 {
		gl.DeleteProgram(s.program)
		s.program = 0
	}
	clear(s.uniformLocations)
}

// location returns the uniform location for name, consulting the cache first.
// GL returns -1 for unknown names; the result is cached either way so a
// misspelled uniform only costs one lookup. Caller must hold the mutex.
func (s *shaderImpl) location(name string) int32 {
	if loc, ok := s.uniformLocations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.program, gl.Str(name+"\x00"))
	s.uniformLocations[name] = loc
	return loc
}

// resolveSource picks the inline source if set, otherwise reads the file path.
//
// Parameters:
//   - source: inline GLSL source (may be empty)
//   - path: file path fallback (may be empty)
//
// Returns:
//   - string: the GLSL source to compile
//   - error: error if neither is available or the file cannot be read
func resolveSource(source, path string) (string, error) {
	if source != "" {
		return source, nil
	}
	if path == "" {
		return "", fmt.Errorf("no source or path provided")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// compileStage compiles a single shader stage and returns the stage object.
//
// Parameters:
//   - stageType: gl.VERTEX_SHADER or gl.FRAGMENT_SHADER
//   - source: the GLSL source for the stage
//
// Returns:
//   - uint32: the compiled stage object
//   - error: error carrying the GL info log if compilation fails
func compileStage(stageType uint32, source string) (uint32, error) {
	stage := gl.CreateShader(stageType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(stage, 1, csources, nil)
	free()
	gl.CompileShader(stage)

	var status int32
	gl.GetShaderiv(stage, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(stage, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength)+1)
		gl.GetShaderInfoLog(stage, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(stage)
		return 0, fmt.Errorf("failed to compile: %s", strings.TrimRight(infoLog, "\x00"))
	}

	return stage, nil
}

// programInfoLog fetches the link info log for a program object.
//
// Parameters:
//   - program: the GL program object
//
// Returns:
//   - string: the info log text
func programInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	infoLog := strings.Repeat("\x00", int(logLength)+1)
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
	return strings.TrimRight(infoLog, "\x00")
}
