// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about drag sequences, workspace layout, and exports.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetDragHooks(&myDragHooks{})
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Drag().OnSurfaceEnter(noteID, x, y)
//	// ... per-frame moves ...
//	observability.Drag().OnSurfaceExit(noteID, x, y)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Drag Hooks
// =============================================================================

// DragHooks receives events from drag-surface handoffs and per-frame moves.
// Drag events are synchronous UI-frame events and carry no context.
type DragHooks interface {
	// OnSurfaceEnter records a node migrating onto the drag surface
	// at the captured workspace-space position.
	OnSurfaceEnter(nodeID string, x, y float64)

	// OnDragMove records a per-frame drag update.
	OnDragMove(nodeID string, x, y float64)

	// OnSurfaceExit records a node migrating back onto the canvas
	// at its final workspace-space position.
	OnSurfaceExit(nodeID string, x, y float64)
}

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from workspace layout bookkeeping.
type LayoutHooks interface {
	// OnContentResize records a content-bounds recompute.
	OnContentResize(itemCount int, width, height float64)
}

// =============================================================================
// Export Hooks
// =============================================================================

// ExportHooks receives events from board export operations.
type ExportHooks interface {
	// OnExportStart records the beginning of an export.
	OnExportStart(ctx context.Context, format string)

	// OnExportComplete records a finished export with output size.
	OnExportComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopDragHooks is a no-op implementation of DragHooks.
type NoopDragHooks struct{}

func (NoopDragHooks) OnSurfaceEnter(string, float64, float64) {}
func (NoopDragHooks) OnDragMove(string, float64, float64)     {}
func (NoopDragHooks) OnSurfaceExit(string, float64, float64)  {}

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnContentResize(int, float64, float64) {}

// NoopExportHooks is a no-op implementation of ExportHooks.
type NoopExportHooks struct{}

func (NoopExportHooks) OnExportStart(context.Context, string) {}
func (NoopExportHooks) OnExportComplete(context.Context, string, int, time.Duration, error) {
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	dragHooks   DragHooks   = NoopDragHooks{}
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	exportHooks ExportHooks = NoopExportHooks{}
	hooksMu     sync.RWMutex
)

// SetDragHooks registers custom drag hooks.
// This should be called once at application startup before any drag operations.
func SetDragHooks(h DragHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		dragHooks = h
	}
}

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any layout operations.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetExportHooks registers custom export hooks.
// This should be called once at application startup before any export operations.
func SetExportHooks(h ExportHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		exportHooks = h
	}
}

// Drag returns the registered drag hooks.
func Drag() DragHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return dragHooks
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Export returns the registered export hooks.
func Export() ExportHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return exportHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	dragHooks = NoopDragHooks{}
	layoutHooks = NoopLayoutHooks{}
	exportHooks = NoopExportHooks{}
}
