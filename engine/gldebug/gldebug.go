// Package gldebug routes the OpenGL debug output channel to the standard
// logger. The driver reports API misuse, performance warnings, and shader
// compiler notes through this channel with far better context than
// glGetError polling.
package gldebug

import (
	"log"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// Driver message IDs that are pure noise (buffer placement and usage hints,
// mostly from NVIDIA drivers).
var ignoredMessageIDs = map[uint32]bool{
	131169: true,
	131185: true,
	131218: true,
	131204: true,
}

// Install enables synchronous debug output on the current context if it was
// created with the debug flag (see window.WithDebugContext). On contexts
// without the flag this is a no-op.
//
// Returns:
//   - bool: true if debug output was enabled
func Install() bool {
	var flags int32
	gl.GetIntegerv(gl.CONTEXT_FLAGS, &flags)
	if flags&gl.CONTEXT_FLAG_DEBUG_BIT == 0 {
		return false
	}

	log.Println("[gldebug] enabling OpenGL debug output")
	gl.Enable(gl.DEBUG_OUTPUT)
	// Synchronous delivery keeps messages on the offending call's stack at
	// the cost of some driver parallelism.
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.DebugMessageCallback(handler, nil)
	gl.DebugMessageControl(gl.DONT_CARE, gl.DONT_CARE, gl.DONT_CARE, 0, nil, true)
	return true
}

// handler is the driver-invoked debug callback. It filters known-noisy
// message IDs and logs everything else with decoded severity, type, and
// source.
func handler(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
	if ignoredMessageIDs[id] {
		return
	}
	log.Printf("[gldebug] %s %s in %s: %s", severityString(severity), typeString(gltype), sourceString(source), message)
}

// severityString decodes a GL debug severity to a short marker.
func severityString(severity uint32) string {
	switch severity {
	case gl.DEBUG_SEVERITY_HIGH:
		return "!!!"
	case gl.DEBUG_SEVERITY_MEDIUM:
		return "!! "
	case gl.DEBUG_SEVERITY_LOW:
		return "!  "
	}
	return "   "
}

// sourceString decodes a GL debug source enum to a readable name.
func sourceString(source uint32) string {
	switch source {
	case gl.DEBUG_SOURCE_API:
		return "API"
	case gl.DEBUG_SOURCE_WINDOW_SYSTEM:
		return "Window System"
	case gl.DEBUG_SOURCE_SHADER_COMPILER:
		return "Shader Compiler"
	case gl.DEBUG_SOURCE_THIRD_PARTY:
		return "Third Party"
	case gl.DEBUG_SOURCE_APPLICATION:
		return "Application"
	case gl.DEBUG_SOURCE_OTHER:
		return "Other"
	}
	return "Unknown"
}

// typeString decodes a GL debug type enum to a readable name.
func typeString(gltype uint32) string {
	switch gltype {
	case gl.DEBUG_TYPE_ERROR:
		return "Error"
	case gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR:
		return "Deprecated Behaviour"
	case gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR:
		return "Undefined Behaviour"
	case gl.DEBUG_TYPE_PORTABILITY:
		return "Portability"
	case gl.DEBUG_TYPE_PERFORMANCE:
		return "Performance"
	case gl.DEBUG_TYPE_MARKER:
		return "Marker"
	case gl.DEBUG_TYPE_PUSH_GROUP:
		return "Push Group"
	case gl.DEBUG_TYPE_POP_GROUP:
		return "Pop Group"
	case gl.DEBUG_TYPE_OTHER:
		return "Other"
	}
	return "Unknown"
}
