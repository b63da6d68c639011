// Package boardfile reads and writes pinboard board definitions in TOML.
//
// A board file declares a workspace plus the notes on it:
//
//	title = "roadmap"
//
//	[workspace]
//	scale = 1.0
//	rendered = true
//	accelerated_surface = true
//
//	[[note]]
//	id = "kickoff"
//	content = "Kickoff meeting notes"
//	x = 10.0
//	y = 20.0
//	width = 120.0
//	height = 80.0
//
// Files are validated on load; the in-memory note layer itself accepts any
// numeric values, so this package is where malformed input is rejected.
package boardfile

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pinboard/pkg/board"
	"github.com/matzehuels/pinboard/pkg/board/note"

	pberrors "github.com/matzehuels/pinboard/pkg/errors"
)

// =============================================================================
// File Format
// =============================================================================

// Board is the top-level board definition.
type Board struct {
	Title     string    `toml:"title"`
	Workspace Workspace `toml:"workspace"`
	Notes     []Note    `toml:"note"`
}

// Workspace holds the workspace-level settings of a board file.
type Workspace struct {
	Scale              float64 `toml:"scale,omitempty"` // 0 means 1.0
	Rendered           bool    `toml:"rendered"`
	AcceleratedSurface bool    `toml:"accelerated_surface"`
}

// Note is a single annotation declaration.
type Note struct {
	ID      string  `toml:"id,omitempty"` // generated when empty
	Content string  `toml:"content"`
	X       float64 `toml:"x"`
	Y       float64 `toml:"y"`
	Width   float64 `toml:"width"`
	Height  float64 `toml:"height"`
	SkewX   float64 `toml:"skew_x,omitempty"`
}

// =============================================================================
// Load / Save
// =============================================================================

// Parse decodes and validates a board definition from TOML bytes.
func Parse(data []byte) (Board, error) {
	var b Board
	if err := toml.Unmarshal(data, &b); err != nil {
		return Board{}, pberrors.Wrap(pberrors.ErrCodeInvalidBoard, err, "decode board file")
	}
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// Load reads and validates a board definition from a TOML file.
func Load(path string) (Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Board{}, pberrors.Wrap(pberrors.ErrCodeFileNotFound, err, "board file %s", path)
		}
		return Board{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data)
}

// Marshal serializes a board definition to TOML bytes.
func Marshal(b Board) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(b); err != nil {
		return nil, fmt.Errorf("encode board: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes a board definition to a TOML file.
func Save(b Board, path string) error {
	data, err := Marshal(b)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// =============================================================================
// Validation
// =============================================================================

// Validate checks the board definition for malformed values.
func (b Board) Validate() error {
	if b.Workspace.Scale != 0 {
		if err := pberrors.ValidateScale(b.Workspace.Scale); err != nil {
			return err
		}
	}

	seen := make(map[string]bool, len(b.Notes))
	for i, n := range b.Notes {
		if n.ID != "" {
			if err := pberrors.ValidateNoteID(n.ID); err != nil {
				return err
			}
			if seen[n.ID] {
				return pberrors.New(pberrors.ErrCodeInvalidBoard, "duplicate note id %q", n.ID)
			}
			seen[n.ID] = true
		}
		if err := pberrors.ValidateDimensions(n.Width, n.Height); err != nil {
			return pberrors.Wrap(pberrors.ErrCodeInvalidBoard, err, "note %d", i)
		}
	}
	return nil
}

// =============================================================================
// Instantiation
// =============================================================================

// Build instantiates the board definition into a live workspace with its
// notes attached and positioned, and returns both. Content bounds are
// computed before returning.
func Build(b Board) (*board.Workspace, []*note.Note) {
	ws := board.NewWorkspace(board.Options{
		Rendered:           b.Workspace.Rendered,
		AcceleratedSurface: b.Workspace.AcceleratedSurface,
		Scale:              b.Workspace.Scale,
	})

	notes := make([]*note.Note, 0, len(b.Notes))
	for _, spec := range b.Notes {
		n := note.New(ws, note.Options{
			ID:      spec.ID,
			Content: spec.Content,
			Width:   spec.Width,
			Height:  spec.Height,
			SkewX:   spec.SkewX,
		})
		n.Translate(spec.X, spec.Y)
		notes = append(notes, n)
	}

	ws.ResizeContents()
	return ws, notes
}

// Snapshot captures live notes back into a board definition, preserving the
// workspace settings from the original definition.
func Snapshot(b Board, ws *board.Workspace, notes []*note.Note) Board {
	out := Board{Title: b.Title, Workspace: b.Workspace}
	out.Workspace.Scale = ws.Scale()
	for _, n := range notes {
		if n.RenderRoot() == nil {
			continue // disposed
		}
		p := n.Position()
		out.Notes = append(out.Notes, Note{
			ID:      n.ID(),
			Content: n.Content(),
			X:       p.X,
			Y:       p.Y,
			Width:   n.Width(),
			Height:  n.Height(),
			SkewX:   n.SkewX(),
		})
	}
	return out
}
