package window

// WindowOption is a functional option for configuring an engineWindow.
// Use the With* functions to create options.
type WindowOption func(w *engineWindow)

// WithTitle sets the window title displayed in the title bar.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowOption: option function to apply
func WithTitle(title string) WindowOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithWidth sets the initial window width.
//
// Parameters:
//   - width: initial width in pixels
//
// Returns:
//   - WindowOption: option function to apply
func WithWidth(width int) WindowOption {
	return func(w *engineWindow) {
		w.width = width
	}
}

// WithHeight sets the initial window height.
//
// Parameters:
//   - height: initial height in pixels
//
// Returns:
//   - WindowOption: option function to apply
func WithHeight(height int) WindowOption {
	return func(w *engineWindow) {
		w.height = height
	}
}

// WithResizable allows the user to resize the window. Defaults to fixed size.
//
// Parameters:
//   - resizable: whether the window can be resized
//
// Returns:
//   - WindowOption: option function to apply
func WithResizable(resizable bool) WindowOption {
	return func(w *engineWindow) {
		w.resizable = resizable
	}
}

// WithVSync controls whether buffer swaps wait for the display refresh.
// Defaults to enabled.
//
// Parameters:
//   - vsync: whether to synchronize swaps with the display
//
// Returns:
//   - WindowOption: option function to apply
func WithVSync(vsync bool) WindowOption {
	return func(w *engineWindow) {
		w.vsync = vsync
	}
}

// WithDebugContext requests an OpenGL debug context, enabling the driver's
// debug output channel (see the gldebug package). Defaults to disabled.
//
// Parameters:
//   - debug: whether to request a debug context
//
// Returns:
//   - WindowOption: option function to apply
func WithDebugContext(debug bool) WindowOption {
	return func(w *engineWindow) {
		w.debugContext = debug
	}
}
