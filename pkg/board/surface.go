package board

import (
	"github.com/matzehuels/pinboard/pkg/geom"
	"github.com/matzehuels/pinboard/pkg/scene"

	pberrors "github.com/matzehuels/pinboard/pkg/errors"
)

// =============================================================================
// DragSurface
// =============================================================================

// DragSurface is the overlay layer a node migrates onto while it is being
// dragged. It hosts at most one node root at a time and carries a single
// translation, so a drag frame is one write regardless of subtree size.
//
// The surface's translation lives outside the scene chain: the hosted node's
// workspace-space position is the sum of its (neutralized) local chain plus
// this translation, per the package invariant.
type DragSurface struct {
	group       *scene.Node
	translation geom.Point
	current     *scene.Node
	visible     bool
}

func newDragSurface() *DragSurface {
	return &DragSurface{group: scene.NewNode("drag-surface")}
}

// Group returns the scene node hosted roots are parented under.
// Position walks treat reaching this group as leaving the canvas frame.
func (s *DragSurface) Group() *scene.Node { return s.group }

// Translate sets the surface's translation in workspace units.
func (s *DragSurface) Translate(x, y float64) {
	s.translation = geom.Point{X: x, Y: y}
}

// Translation returns the surface's current translation.
func (s *DragSurface) Translation() geom.Point { return s.translation }

// CurrentBlock returns the root of the node the surface currently hosts,
// or nil when the surface is empty.
func (s *DragSurface) CurrentBlock() *scene.Node { return s.current }

// Visible reports whether the surface is shown.
func (s *DragSurface) Visible() bool { return s.visible }

// SetBlocksAndShow reparents root onto the surface and makes it visible.
//
// Hosting a second, different root while one is already present is a caller
// protocol violation and returns a SURFACE_OCCUPIED error without touching
// either node. Re-showing the already-hosted root is allowed.
func (s *DragSurface) SetBlocksAndShow(root *scene.Node) error {
	if root == nil {
		return nil
	}
	if s.current != nil && s.current != root {
		return pberrors.New(pberrors.ErrCodeSurfaceOccupied,
			"drag surface already hosts %q", s.current.ID())
	}
	s.group.AppendChild(root)
	s.current = root
	s.visible = true
	return nil
}

// ClearAndHide empties the surface, resets its translation, and hides it.
// The hosted root, if any, is reparented under dest; a nil dest leaves the
// root detached (disposal during an in-flight drag).
func (s *DragSurface) ClearAndHide(dest *scene.Node) {
	if s.current != nil {
		if dest != nil {
			dest.AppendChild(s.current)
		} else {
			s.current.Detach()
		}
	}
	s.current = nil
	s.translation = geom.Point{}
	s.visible = false
}
