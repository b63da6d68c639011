package board

import (
	"github.com/matzehuels/pinboard/pkg/geom"
	"github.com/matzehuels/pinboard/pkg/observability"
	"github.com/matzehuels/pinboard/pkg/scene"

	pberrors "github.com/matzehuels/pinboard/pkg/errors"
)

// =============================================================================
// Workspace
// =============================================================================

// BoundsReporter is implemented by content items that occupy workspace area.
// The workspace unions these rectangles when recomputing content bounds.
type BoundsReporter interface {
	BoundingRect() geom.Rect
}

// Options configures a new workspace.
type Options struct {
	// Rendered marks the workspace as interactively rendered. Headless
	// workspaces (tests, batch exports) never allocate a drag surface.
	Rendered bool

	// AcceleratedSurface is the platform capability flag for the overlay
	// drag path. Fixed at construction; nodes created later inherit it.
	AcceleratedSurface bool

	// Scale is the initial zoom factor. Zero means 1.0.
	Scale float64
}

// Workspace is the canvas a board's notes live on.
// It owns the canvas render root and the per-workspace drag surface.
type Workspace struct {
	canvas   *scene.Node
	surface  *DragSurface // nil unless rendered with the accelerated path
	rendered bool

	scale  float64
	scroll geom.Point

	items  []BoundsReporter
	bounds geom.Rect
}

// NewWorkspace creates a workspace with the given options.
func NewWorkspace(opts Options) *Workspace {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	w := &Workspace{
		canvas:   scene.NewNode("canvas"),
		rendered: opts.Rendered,
		scale:    scale,
	}
	if opts.Rendered && opts.AcceleratedSurface {
		w.surface = newDragSurface()
	}
	return w
}

// CanvasRoot returns the root node all canvas content attaches under.
func (w *Workspace) CanvasRoot() *scene.Node { return w.canvas }

// Rendered reports whether the workspace is interactively rendered.
func (w *Workspace) Rendered() bool { return w.rendered }

// Surface returns the workspace's drag surface, or nil when the workspace
// is headless or the platform lacks the accelerated path.
func (w *Workspace) Surface() *DragSurface { return w.surface }

// UseDragSurface reports whether nodes on this workspace should take the
// surface path for drags.
func (w *Workspace) UseDragSurface() bool {
	return w.rendered && w.surface != nil
}

// =============================================================================
// Content Bounds
// =============================================================================

// RegisterBounds adds an item to content-bounds bookkeeping.
func (w *Workspace) RegisterBounds(item BoundsReporter) {
	if item == nil {
		return
	}
	w.items = append(w.items, item)
}

// UnregisterBounds removes an item from content-bounds bookkeeping.
func (w *Workspace) UnregisterBounds(item BoundsReporter) {
	for i, it := range w.items {
		if it == item {
			w.items = append(w.items[:i], w.items[i+1:]...)
			return
		}
	}
}

// ResizeContents recomputes the union of all registered item rectangles.
// Called after any move or size change that can affect the scrollable area.
func (w *Workspace) ResizeContents() {
	var bounds geom.Rect
	for _, item := range w.items {
		bounds = bounds.Union(item.BoundingRect())
	}
	w.bounds = bounds
	observability.Layout().OnContentResize(len(w.items), bounds.Width(), bounds.Height())
}

// ContentBounds returns the bounds from the last ResizeContents call.
func (w *Workspace) ContentBounds() geom.Rect { return w.bounds }

// =============================================================================
// Viewport
// =============================================================================

// Scale returns the current zoom factor.
func (w *Workspace) Scale() float64 { return w.scale }

// SetScale sets the zoom factor. Workspace-space coordinates are invariant
// under zoom; only the screen mapping changes.
func (w *Workspace) SetScale(scale float64) error {
	if err := pberrors.ValidateScale(scale); err != nil {
		return err
	}
	w.scale = scale
	return nil
}

// Scroll returns the current pan offset in screen units.
func (w *Workspace) Scroll() geom.Point { return w.scroll }

// ScrollTo sets the pan offset in screen units.
func (w *Workspace) ScrollTo(p geom.Point) { w.scroll = p }

// WorkspaceToScreen maps a workspace-space point to screen coordinates
// under the current pan and zoom.
func (w *Workspace) WorkspaceToScreen(p geom.Point) geom.Point {
	return p.Scale(w.scale).Add(w.scroll)
}

// ScreenToWorkspace maps a screen point back into workspace units.
func (w *Workspace) ScreenToWorkspace(p geom.Point) geom.Point {
	return p.Sub(w.scroll).Scale(1 / w.scale)
}
