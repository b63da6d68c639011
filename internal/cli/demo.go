package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pinboard/pkg/board"
	"github.com/matzehuels/pinboard/pkg/board/note"
	"github.com/matzehuels/pinboard/pkg/boardfile"
	"github.com/matzehuels/pinboard/pkg/geom"
)

// dragStep is how far a note moves per keypress, in workspace units.
const dragStep = 10

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDraggingStyle = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// newDemoCmd creates the demo command: an interactive terminal session for
// dragging a board's notes around.
func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo [file]",
		Short: "Drag a board's notes around interactively in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := boardfile.Load(args[0])
			if err != nil {
				return err
			}
			ws, notes := boardfile.Build(def)
			if len(notes) == 0 {
				return fmt.Errorf("board %s has no notes", args[0])
			}

			model := newDragModel(def.Title, ws, notes)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}
}

// =============================================================================
// DragModel - Interactive note dragging
// =============================================================================

// DragModel is the bubbletea model for interactively dragging notes.
// While a drag is live the selected note is parked on the drag surface;
// arrow keys move it and enter commits it back to the canvas.
type DragModel struct {
	Title  string
	Ws     *board.Workspace
	Notes  []*note.Note
	Cursor int

	coord    *board.Coordinator
	dragPos  geom.Point
	dragging bool
	status   string
}

// newDragModel creates a drag model with the first note selected.
func newDragModel(title string, ws *board.Workspace, notes []*note.Note) DragModel {
	return DragModel{Title: title, Ws: ws, Notes: notes}
}

func (m DragModel) Init() tea.Cmd {
	return nil
}

func (m DragModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "up", "k", "down", "j", "left", "h", "right", "l":
		if m.dragging {
			return m.move(key.String()), nil
		}
		return m.select_(key.String()), nil

	case "enter", " ":
		if m.dragging {
			return m.endDrag(), nil
		}
		return m.startDrag(), nil
	}
	return m, nil
}

// select_ moves the cursor between notes while no drag is live.
func (m DragModel) select_(key string) DragModel {
	switch key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Notes)-1 {
			m.Cursor++
		}
	}
	return m
}

// startDrag hands the selected note to the drag coordinator.
func (m DragModel) startDrag() DragModel {
	n := m.Notes[m.Cursor]
	m.coord = board.NewCoordinator(m.Ws, n)
	m.dragPos = n.Position()

	if err := m.coord.EnterDragSurface(); err != nil {
		m.coord = nil
		m.status = fmt.Sprintf("cannot drag %s: %v", n.ID(), err)
		return m
	}
	n.SetDragging(true)
	m.dragging = true
	m.status = fmt.Sprintf("dragging %s", n.ID())
	return m
}

// move advances the live drag by one step.
func (m DragModel) move(key string) DragModel {
	switch key {
	case "up", "k":
		m.dragPos.Y -= dragStep
	case "down", "j":
		m.dragPos.Y += dragStep
	case "left", "h":
		m.dragPos.X -= dragStep
	case "right", "l":
		m.dragPos.X += dragStep
	}
	m.coord.DuringDrag(m.dragPos)
	return m
}

// endDrag commits the drag and returns the note to the canvas.
func (m DragModel) endDrag() DragModel {
	n := m.Notes[m.Cursor]
	m.coord.ExitDragSurface(m.dragPos)
	n.SetDragging(false)
	n.MoveBy(0, 0) // refresh content bounds at the final position
	m.coord = nil
	m.dragging = false
	m.status = fmt.Sprintf("dropped %s at (%s, %s)", n.ID(), fmtCoord(m.dragPos.X), fmtCoord(m.dragPos.Y))
	return m
}

func (m DragModel) View() string {
	var b strings.Builder

	title := m.Title
	if title == "" {
		title = "pinboard"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	if m.dragging {
		b.WriteString(listDimStyle.Render("←↓↑→ move  ⏎ drop  q quit"))
	} else {
		b.WriteString(listDimStyle.Render("↑/↓ select  ⏎ drag  q quit"))
	}
	b.WriteString("\n\n")

	for i, n := range m.Notes {
		p := n.Position()
		line := fmt.Sprintf("%-12s (%s, %s)", n.ID(), fmtCoord(p.X), fmtCoord(p.Y))

		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
			if m.dragging {
				style = listDraggingStyle
			}
		}
		b.WriteString(cursor + style.Render(line) + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + listDimStyle.Render(m.status) + "\n")
	}
	return b.String()
}
