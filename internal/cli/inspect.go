package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pinboard/pkg/boardfile"
)

// newInspectCmd creates the inspect command for examining board files.
// It loads and validates a board file, instantiates it, and prints the notes
// with their workspace positions alongside the board's content bounds.
func newInspectCmd() *cobra.Command {
	var scale float64

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show the notes and content bounds of a board file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args[0], scale)
		},
	}

	cmd.Flags().Float64Var(&scale, "scale", 0, "override the board's zoom factor")

	return cmd
}

func runInspect(path string, scale float64) error {
	def, err := boardfile.Load(path)
	if err != nil {
		return err
	}

	ws, notes := boardfile.Build(def)
	if scale != 0 {
		if err := ws.SetScale(scale); err != nil {
			return err
		}
	}

	title := def.Title
	if title == "" {
		title = path
	}
	fmt.Println(StyleTitle.Render(title))
	printNewline()

	rows := make([][]string, 0, len(notes))
	for _, n := range notes {
		p := n.Position()
		s := ws.WorkspaceToScreen(p)
		rows = append(rows, []string{
			n.ID(),
			n.Content(),
			fmt.Sprintf("(%s, %s)", fmtCoord(p.X), fmtCoord(p.Y)),
			fmt.Sprintf("(%s, %s)", fmtCoord(s.X), fmtCoord(s.Y)),
			fmt.Sprintf("%sx%s", fmtCoord(n.Width()), fmtCoord(n.Height())),
		})
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(StyleDim).
		Headers("ID", "CONTENT", "POSITION", "SCREEN", "SIZE").
		Rows(rows...)
	fmt.Println(tbl)

	bounds := ws.ContentBounds()
	printNewline()
	printKeyValue("scale", fmtCoord(ws.Scale()))
	if !bounds.Empty() {
		printKeyValue("bounds", fmt.Sprintf("(%s, %s) to (%s, %s)",
			fmtCoord(bounds.Left), fmtCoord(bounds.Top),
			fmtCoord(bounds.Right), fmtCoord(bounds.Bottom)))
	}
	printStats(len(notes), bounds.Width(), bounds.Height(), false)

	return nil
}

// fmtCoord formats a workspace coordinate without trailing zeros.
func fmtCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
