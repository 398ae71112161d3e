package engine

import "github.com/Carmen-Shannon/oxy-gl/engine/window"

// EngineOption is a functional option for configuring an Engine.
type EngineOption func(*engine)

// WithWindow attaches the window the engine drives. Required before Run.
//
// Parameters:
//   - w: the window instance
//
// Returns:
//   - EngineOption: option function to apply
func WithWindow(w window.Window) EngineOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: whether profiling output is active
//
// Returns:
//   - EngineOption: option function to apply
func WithProfiling(enabled bool) EngineOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithFrameLimit caps the frame rate in frames per second (0 = uncapped).
//
// Parameters:
//   - fps: maximum frames per second
//
// Returns:
//   - EngineOption: option function to apply
func WithFrameLimit(fps float64) EngineOption {
	return func(e *engine) {
		e.SetFrameLimit(fps)
	}
}
