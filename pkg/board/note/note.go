// Package note implements the positionable, resizable annotation rendered on
// a pinboard canvas.
//
// A Note owns exactly one render root in the scene tree and keeps its
// position as a structured transform on that root. While the note is being
// dragged on a workspace with the accelerated surface path, its visuals live
// under the drag surface instead; board.Coordinator performs that handoff.
// The note itself only ever answers "where am I" through the parent-chain
// walk, so both rendering contexts agree on one source of truth.
package note

import (
	"github.com/google/uuid"

	"github.com/matzehuels/pinboard/pkg/board"
	"github.com/matzehuels/pinboard/pkg/geom"
	"github.com/matzehuels/pinboard/pkg/scene"
)

// Note is a comment-style annotation positioned on a workspace.
type Note struct {
	ws   *board.Workspace
	root *scene.Node

	id      string
	content string

	// Mutable dimensions, independent of position. Not validated here;
	// board files are the boundary where sizes get checked.
	width  float64
	height float64

	// Fixed at construction from platform capability and surface availability.
	useDragSurface bool

	dragging bool
	skewX    float64
}

// Options configures a new note.
type Options struct {
	ID      string // generated UUID when empty
	Content string
	Width   float64
	Height  float64
	SkewX   float64
}

// New creates a note attached under ws's canvas root and registers it for
// content-bounds bookkeeping.
func New(ws *board.Workspace, opts Options) *Note {
	id := opts.ID
	if id == "" {
		id = uuid.NewString()
	}
	n := &Note{
		ws:             ws,
		root:           scene.NewNode(id),
		id:             id,
		content:        opts.Content,
		width:          opts.Width,
		height:         opts.Height,
		useDragSurface: ws.UseDragSurface(),
		skewX:          opts.SkewX,
	}
	if n.skewX != 0 {
		n.root.SetTransform(geom.Transform{SkewX: n.skewX})
	}
	ws.CanvasRoot().AppendChild(n.root)
	ws.RegisterBounds(n)
	return n
}

// ID returns the note's identifier.
func (n *Note) ID() string { return n.id }

// Content returns the note's text content.
func (n *Note) Content() string { return n.content }

// SetContent replaces the note's text content.
func (n *Note) SetContent(s string) { n.content = s }

// Width returns the note's width in workspace units.
func (n *Note) Width() float64 { return n.width }

// SetWidth sets the note's width. No validation happens at this layer.
func (n *Note) SetWidth(w float64) { n.width = w }

// Height returns the note's height in workspace units.
func (n *Note) Height() float64 { return n.height }

// SetHeight sets the note's height. No validation happens at this layer.
func (n *Note) SetHeight(h float64) { n.height = h }

// RenderRoot returns the note's render root, or nil after disposal.
func (n *Note) RenderRoot() *scene.Node { return n.root }

// UsesDragSurface reports whether this note takes the surface path for
// drags. Fixed at construction.
func (n *Note) UsesDragSurface() bool { return n.useDragSurface }

// SkewX returns the note's skew component in degrees.
func (n *Note) SkewX() float64 { return n.skewX }

// SetSkewX sets the skew component and rewrites the root transform keeping
// the current translation.
func (n *Note) SetSkewX(deg float64) {
	n.skewX = deg
	if n.root == nil {
		return
	}
	t := n.root.Transform()
	t.SkewX = deg
	n.root.SetTransform(t)
}

// Dragging reports whether the note is in its cosmetic dragging state.
func (n *Note) Dragging() bool { return n.dragging }

// SetDragging toggles the cosmetic dragging state. Position and transform
// are untouched.
func (n *Note) SetDragging(adding bool) {
	n.dragging = adding
}

// Position returns the note's workspace-space position.
//
// It walks the render root's ancestor chain accumulating local translations,
// stopping at the canvas root or the drag-surface group, whichever comes
// first. If the walk ends at the surface group and the surface hosts this
// note, the surface's own translation is added. A disposed (headless) note
// reports (0,0); that is a defined degenerate case, not an error.
func (n *Note) Position() geom.Point {
	if n.root == nil {
		return geom.Point{}
	}
	surface := n.ws.Surface()
	stop := func(c *scene.Node) bool {
		if c == n.ws.CanvasRoot() {
			return true
		}
		return surface != nil && c == surface.Group()
	}
	sum, stopped := scene.AccumulateTranslation(n.root, stop)
	if surface != nil && stopped == surface.Group() && surface.CurrentBlock() == n.root {
		sum = sum.Add(surface.Translation())
	}
	return sum
}

// Translate moves the note to the absolute position (x, y), overwriting any
// prior transform wholesale. It repositions the visuals only; it does not
// notify the workspace of a layout change.
func (n *Note) Translate(x, y float64) {
	if n.root == nil {
		return
	}
	n.root.SetTransform(geom.Translate(x, y))
}

// MoveBy shifts the note by (dx, dy) relative to its current position and
// asks the workspace for a content-bounds recompute. Safe only because the
// workspace model is single-threaded; there is no preemption within a move.
func (n *Note) MoveBy(dx, dy float64) {
	if n.root == nil {
		return
	}
	p := n.Position()
	n.Translate(p.X+dx, p.Y+dy)
	n.ws.ResizeContents()
}

// ApplyTransform overwrites the note's local transform wholesale.
// A headless note ignores the write.
func (n *Note) ApplyTransform(t geom.Transform) {
	if n.root == nil {
		return
	}
	n.root.SetTransform(t)
}

// BoundingRect returns the rectangle the note occupies in workspace units.
func (n *Note) BoundingRect() geom.Rect {
	p := n.Position()
	return geom.Rect{Left: p.X, Top: p.Y, Right: p.X + n.width, Bottom: p.Y + n.height}
}

// Dispose detaches the note's render root and drops the render handle, so
// later calls observe the headless degenerate case. Idempotent; a note
// parked on the drag surface mid-drag is pulled off it first.
func (n *Note) Dispose() {
	if n.root == nil {
		return
	}
	if surface := n.ws.Surface(); surface != nil && surface.CurrentBlock() == n.root {
		surface.ClearAndHide(nil)
	}
	n.root.Detach()
	n.root = nil
	n.ws.UnregisterBounds(n)
	n.ws.ResizeContents()
}

// Compile-time check that Note satisfies the drag handoff contract.
var _ board.Draggable = (*Note)(nil)

// Compile-time check that Note participates in content-bounds bookkeeping.
var _ board.BoundsReporter = (*Note)(nil)
