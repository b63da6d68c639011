package export

import (
	"strings"
	"testing"

	"github.com/matzehuels/pinboard/pkg/board"
	"github.com/matzehuels/pinboard/pkg/board/note"
)

func makeNotes(t *testing.T) []*note.Note {
	t.Helper()
	ws := board.NewWorkspace(board.Options{Rendered: true})
	a := note.New(ws, note.Options{ID: "kickoff", Content: "Kickoff", Width: 120, Height: 80})
	a.Translate(10, 20)
	b := note.New(ws, note.Options{ID: "launch", Content: "Launch", Width: 100, Height: 60, SkewX: 1.5})
	b.Translate(200, 50)
	return []*note.Note{a, b}
}

func TestToDOT(t *testing.T) {
	notes := makeNotes(t)
	dot := ToDOT(notes, Options{})

	wants := []string{
		"graph board {",
		"layout=neato;",
		`"kickoff" [label="Kickoff", pos="10,-20!"`,
		`"launch" [label="Launch", pos="200,-50!"`,
	}
	for _, want := range wants {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q in:\n%s", want, dot)
		}
	}
}

func TestToDOTDetailed(t *testing.T) {
	notes := makeNotes(t)
	dot := ToDOT(notes, Options{Detailed: true})

	wants := []string{
		"at: (10, 20)",
		"size: 120x80",
		"skew: 1.5",
	}
	for _, want := range wants {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT(Detailed) missing %q in:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "Kickoff\\nat") && strings.Contains(dot, "skew: 0") {
		t.Error("ToDOT(Detailed) included zero skew in label")
	}
}

func TestToDOTSkipsDisposed(t *testing.T) {
	notes := makeNotes(t)
	notes[0].Dispose()

	dot := ToDOT(notes, Options{})
	if strings.Contains(dot, "kickoff") {
		t.Errorf("ToDOT() included disposed note:\n%s", dot)
	}
	if !strings.Contains(dot, "launch") {
		t.Errorf("ToDOT() dropped live note:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "RewritesViewBox",
			input: `<svg width="8pt" height="6pt" viewBox="0.00 0.00 216.00 116.00" xmlns="http://www.w3.org/2000/svg">`,
			want:  `viewBox="0 0 216.00 116.00" width="216" height="116"`,
		},
		{
			name:  "NegativeOriginViewBox",
			input: `<svg viewBox="-4.00 -120.00 216.00 116.00">`,
			want:  `viewBox="0 0 216.00 116.00"`,
		},
		{
			name:  "NoViewBoxUnchanged",
			input: `<svg width="10" height="10">`,
			want:  `<svg width="10" height="10">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(normalizeViewBox([]byte(tt.input)))
			if !strings.Contains(got, tt.want) {
				t.Errorf("normalizeViewBox() = %q, want substring %q", got, tt.want)
			}
		})
	}
}
