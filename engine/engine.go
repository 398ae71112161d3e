package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-gl/engine/profiler"
	"github.com/Carmen-Shannon/oxy-gl/engine/window"
)

// engine implements the Engine interface.
// Unlike a multi-queue engine, everything runs on the window's message loop:
// OpenGL commands are only valid on the thread that owns the context, so the
// update callback, profiler, and frame cap all share that single thread.
type engine struct {
	window window.Window

	profiler         *profiler.Profiler
	profilingEnabled bool

	updateCallback func(deltaTime float32)

	frameLimit time.Duration // minimum frame duration; 0 = uncapped
}

// Engine is the main entry point. It owns the window and drives the
// single-threaded frame loop: poll input, fire the update callback with the
// frame delta time, present, repeat until the window closes.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetUpdateCallback registers the function called each frame.
	// Use this for input processing, camera updates, and draw calls.
	//
	// Parameters:
	//   - callback: function to call each frame, receiving the delta time in seconds
	SetUpdateCallback(callback func(deltaTime float32))

	// SetFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default; vsync usually caps it anyway).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetFrameLimit(fps float64)

	// Run starts the main loop (blocks until the window closes).
	Run()

	// Quit closes the window, ending the main loop.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// A window must be supplied via WithWindow before Run.
//
// Parameters:
//   - options: functional options for engine configuration (window, profiling, frame limit)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineOption) Engine {
	e := &engine{
		profiler: profiler.NewProfiler(),
	}

	for _, opt := range options {
		opt(e)
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Run() {
	e.window.SetUpdateCallback(func(deltaTime float32) {
		frameStart := time.Now()

		if e.updateCallback != nil {
			e.updateCallback(deltaTime)
		}

		if e.profilingEnabled && e.profiler != nil {
			e.profiler.Tick()
		}

		if e.frameLimit > 0 {
			if remaining := e.frameLimit - time.Since(frameStart); remaining > 0 {
				time.Sleep(remaining)
			}
		}
	})
	e.window.ProcessMessages()
}

func (e *engine) Quit() {
	if e.window != nil {
		_ = e.window.Close()
	}
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetUpdateCallback registers the function called each frame.
func (e *engine) SetUpdateCallback(callback func(deltaTime float32)) {
	e.updateCallback = callback
}

// SetFrameLimit sets an optional frame rate cap.
// Pass 0 to uncap the loop.
func (e *engine) SetFrameLimit(fps float64) {
	if fps <= 0 {
		e.frameLimit = 0
		return
	}
	e.frameLimit = time.Second / time.Duration(fps)
}
