package board

import (
	"github.com/matzehuels/pinboard/pkg/geom"
	"github.com/matzehuels/pinboard/pkg/observability"
	"github.com/matzehuels/pinboard/pkg/scene"

	pberrors "github.com/matzehuels/pinboard/pkg/errors"
)

// =============================================================================
// Draggable
// =============================================================================

// Draggable is what the coordinator needs from a movable content item.
// It is implemented by note.Note; any positioned item with a render root
// can take the same handoff path.
type Draggable interface {
	// ID identifies the item in hooks and errors.
	ID() string

	// RenderRoot returns the item's render root, or nil when headless.
	RenderRoot() *scene.Node

	// UsesDragSurface reports whether this item takes the surface path,
	// fixed at the item's construction.
	UsesDragSurface() bool

	// Position returns the item's current workspace-space position.
	Position() geom.Point

	// ApplyTransform overwrites the item's local transform wholesale.
	// Headless items ignore the write.
	ApplyTransform(t geom.Transform)

	// SkewX returns the item's opaque skew component, reapplied alongside
	// translations written during a drag.
	SkewX() float64
}

// =============================================================================
// Coordinator
// =============================================================================

// Coordinator moves one draggable item between the canvas frame and the
// workspace's drag surface, keeping its workspace-space position identical
// across both transitions.
type Coordinator struct {
	ws     *Workspace
	target Draggable
}

// NewCoordinator creates a coordinator for target on ws.
func NewCoordinator(ws *Workspace, target Draggable) *Coordinator {
	return &Coordinator{ws: ws, target: target}
}

// EnterDragSurface migrates the target onto the drag surface.
//
// No-op when the target does not use the surface path or is headless.
// Returns a SURFACE_OCCUPIED error, with no state touched, when a different
// node is already hosted.
func (c *Coordinator) EnterDragSurface() error {
	if c.ws == nil || c.target == nil || !c.target.UsesDragSurface() {
		return nil
	}
	surface := c.ws.Surface()
	root := c.target.RenderRoot()
	if surface == nil || root == nil {
		return nil
	}
	if cur := surface.CurrentBlock(); cur != nil && cur != root {
		return pberrors.New(pberrors.ErrCodeSurfaceOccupied,
			"cannot start drag for %q: drag surface already hosts %q", c.target.ID(), cur.ID())
	}

	// Capture the position while the node is still under the canvas frame,
	// then re-express it entirely through the surface translation. The
	// surface must carry the position before the reparent happens or the
	// node renders one frame at the origin.
	pos := c.target.Position()
	c.target.ApplyTransform(geom.Transform{})
	surface.Translate(pos.X, pos.Y)
	if err := surface.SetBlocksAndShow(root); err != nil {
		return err
	}

	observability.Drag().OnSurfaceEnter(c.target.ID(), pos.X, pos.Y)
	return nil
}

// DuringDrag moves the target to p, a workspace-space position.
//
// On the surface path this is a single surface-translation write. Otherwise
// the target's own transform is written, with its skew component spliced in
// next to the new translation.
func (c *Coordinator) DuringDrag(p geom.Point) {
	if c.target == nil {
		return
	}
	if c.ws != nil && c.target.UsesDragSurface() {
		if surface := c.ws.Surface(); surface != nil {
			surface.Translate(p.X, p.Y)
			observability.Drag().OnDragMove(c.target.ID(), p.X, p.Y)
			return
		}
	}
	c.target.ApplyTransform(geom.Transform{Translation: p, SkewX: c.target.SkewX()})
	observability.Drag().OnDragMove(c.target.ID(), p.X, p.Y)
}

// ExitDragSurface migrates the target back onto the canvas at final.
//
// No-op when the target does not use the surface path, is headless, or is
// not the surface's hosted node. The target's transform is written before
// the surface clears so the node never shows its stale pre-drag position.
func (c *Coordinator) ExitDragSurface(final geom.Point) {
	if c.ws == nil || c.target == nil || !c.target.UsesDragSurface() {
		return
	}
	surface := c.ws.Surface()
	root := c.target.RenderRoot()
	if surface == nil || root == nil || surface.CurrentBlock() != root {
		return
	}

	c.target.ApplyTransform(geom.Transform{Translation: final, SkewX: c.target.SkewX()})
	surface.ClearAndHide(c.ws.CanvasRoot())

	observability.Drag().OnSurfaceExit(c.target.ID(), final.X, final.Y)
}
