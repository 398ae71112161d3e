package window

import (
	"fmt"
	"time"
)

// Window provides platform windowing, an OpenGL context, and input event
// handling. Wraps platform-specific window implementations with a common
// interface. Input state is delivered through explicitly registered callbacks
// owned by the caller; nothing is stashed behind the platform window handle.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	// The callback receives the time in seconds since the previous iteration
	// and runs before the frame is presented.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func(deltaTime float32))

	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetScrollCallback sets the callback for mouse scroll wheel events.
	//
	// Parameters:
	//   - callback: function receiving scroll delta (positive = up/zoom in, negative = down/zoom out)
	SetScrollCallback(callback func(delta float32))

	// SetKeyDownCallback sets the callback for key press events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetCursorDeltaCallback sets the callback for cursor movement. The
	// window tracks the previous cursor sample and delivers deltas in device
	// units; the first sample after creation or after a capture toggle is
	// swallowed so consumers never see the initial jump.
	//
	// Parameters:
	//   - callback: function receiving the cursor motion since the last sample
	SetCursorDeltaCallback(callback func(dx, dy float32))

	// CaptureCursor hides and locks the cursor to the window (mouse-look
	// mode) or releases it.
	//
	// Parameters:
	//   - capture: true to capture the cursor, false to release it
	CaptureCursor(capture bool)

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop. Blocks until the window
	// is closed. Each iteration polls events, calls the update callback with
	// the frame delta time, and swaps the front and back buffers.
	ProcessMessages()

	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event callbacks.
type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// width is the current framebuffer width in pixels.
	width int

	// height is the current framebuffer height in pixels.
	height int

	// resizable controls whether the user can resize the window.
	resizable bool

	// vsync synchronizes buffer swaps with the display refresh rate.
	vsync bool

	// debugContext requests an OpenGL debug context at creation, enabling
	// the driver's debug output channel.
	debugContext bool

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// lastFrame is the timestamp of the previous message loop iteration.
	lastFrame time.Time

	// onUpdate is called each iteration of the message loop (if set).
	onUpdate func(deltaTime float32)

	// onResize is called when the framebuffer is resized.
	onResize func(width, height int)

	// onScroll is called for mouse wheel events.
	onScroll func(delta float32)

	// onKeyDown is called when a key is pressed.
	onKeyDown func(keyCode uint32)

	// onKeyUp is called when a key is released.
	onKeyUp func(keyCode uint32)

	// onCursorDelta is called with cursor motion deltas.
	onCursorDelta func(dx, dy float32)
}

var _ Window = &engineWindow{}

// NewWindow creates a new Window with the specified options and a current
// OpenGL core-profile context. Applies default values first, then each option
// in order. Must be called from the main goroutine; the calling goroutine is
// locked to its OS thread for the lifetime of the context.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window with a live OpenGL context
func NewWindow(options ...WindowOption) Window {
	w := &engineWindow{
		title:  "oxy-gl",
		width:  800,
		height: 600,
		vsync:  true,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func(deltaTime float32)) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetScrollCallback(callback func(delta float32)) {
	w.onScroll = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *engineWindow) SetCursorDeltaCallback(callback func(dx, dy float32)) {
	w.onCursorDelta = callback
}

func (w *engineWindow) CaptureCursor(capture bool) {
	platformCaptureCursor(w, capture)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	w.lastFrame = time.Now()
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		now := time.Now()
		dt := float32(now.Sub(w.lastFrame).Seconds())
		w.lastFrame = now

		if w.onUpdate != nil {
			w.onUpdate(dt)
		}

		platformPresent(w)
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}
