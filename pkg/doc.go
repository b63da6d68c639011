// Package pkg provides the core libraries for pinboard's draggable note canvas.
//
// # Overview
//
// Pinboard models freely positionable notes on a pannable, zoomable canvas.
// The pkg directory is organized into five main areas:
//
//  1. [geom] - Points, rectangles, and structured render transforms
//  2. [scene] - The parent-linked render tree notes attach into
//  3. [board] - The workspace, drag surface, and drag coordination
//  4. [boardfile] - TOML board definitions and instantiation
//  5. [export] - DOT and SVG rendering of boards
//
// # Architecture
//
// The typical data flow through pinboard:
//
//	Board File (TOML)
//	         ↓
//	    [boardfile] package (parse + validate + instantiate)
//	         ↓
//	    [board] + [board/note] packages (positions, drags, content bounds)
//	         ↓
//	    [export] package (DOT → SVG via Graphviz)
//	         ↓
//	    SVG/DOT output
//
// # Quick Start
//
//	ws := board.NewWorkspace(board.Options{Rendered: true, AcceleratedSurface: true})
//	n := note.New(ws, note.Options{Content: "Kickoff", Width: 160, Height: 90})
//	n.Translate(20, 40)
//
//	coord := board.NewCoordinator(ws, n)
//	_ = coord.EnterDragSurface()
//	coord.DuringDrag(geom.Point{X: 40, Y: 60})
//	coord.ExitDragSurface(geom.Point{X: 40, Y: 60})
//
// Supporting packages provide caching ([cache]), structured errors
// ([errors]), observability hooks ([observability]), and build metadata
// ([buildinfo]).
package pkg
