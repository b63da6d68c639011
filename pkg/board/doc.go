// Package board implements the workspace a pinboard canvas is organized
// around: the canvas render root, the viewport (pan/zoom), content-bounds
// bookkeeping, and the drag surface used while a note is being moved.
//
// # Overview
//
// A [Workspace] owns a single canvas root in the [scene] tree plus, when the
// workspace is interactively rendered on a platform with the accelerated
// overlay path, a single [DragSurface]. The surface is a dedicated layer that
// can host at most one migrated node at a time: moving a node there means a
// drag frame costs one translation write instead of a relayout of every
// sibling on the canvas.
//
// # Position Invariant
//
// At any instant, a node's true workspace-space position equals the sum of
// the parent-chain translations from its render root up to (but excluding)
// the canvas root or the drag-surface group, plus the surface's own
// translation iff the surface currently hosts that node's root. Every
// operation in this package preserves that equality, and exactly one of
// {attached under canvas, attached under surface} holds for a live node.
//
// # Drag Handoff
//
// The [Coordinator] owns the two migration transitions and the per-frame
// update for one [Draggable] target:
//
//	Idle(onCanvas) --EnterDragSurface--> OnSurface --ExitDragSurface--> Idle(onCanvas)
//
// Operation ordering inside the transitions is load-bearing. Entering, the
// position is captured before the node's local transform is neutralized, and
// the surface translation is set before the reparent; exiting, the node's
// local transform is written before the surface forgets its translation.
// Either ordering reversed produces a one-frame visible jump.
//
// All coordinator operations degrade to safe no-ops when the surface path is
// unsupported or the target is headless; the only surfaced failure is a
// SURFACE_OCCUPIED error when a second node is pushed onto an occupied
// surface, which is a caller protocol violation.
//
// # Concurrency
//
// The workspace model is single-threaded and cooperative: pointer-move
// handlers run to completion before the next is processed, so drag updates
// are strictly ordered by arrival and no locking is needed.
package board
