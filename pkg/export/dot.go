// Package export renders a board's notes to Graphviz DOT and SVG.
//
// Notes are emitted as fixed-position box nodes (neato layout with pinned
// coordinates), so the exported image mirrors the workspace layout rather
// than a computed graph layout.
package export

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/pinboard/pkg/board/note"
	"github.com/matzehuels/pinboard/pkg/observability"
)

// pointsPerUnit scales workspace units to Graphviz points. Graphviz pin
// positions are in points (72/inch); workspace units map 1:1.
const pointsPerUnit = 1.0

// Options configures board export.
type Options struct {
	// Detailed includes position and size in node labels.
	// When false, only the note content is shown.
	Detailed bool
}

// ToDOT converts a board's notes to Graphviz DOT format. Positions are
// pinned so the rendered diagram preserves the workspace layout. Disposed
// notes are skipped. The resulting DOT string can be rendered with
// [RenderSVG].
func ToDOT(notes []*note.Note, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph board {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=lightyellow, fontsize=12];\n")
	buf.WriteString("\n")

	for _, n := range notes {
		if n.RenderRoot() == nil {
			continue
		}
		p := n.Position()
		label := fmtLabel(n, opts.Detailed)
		// Graphviz y grows upward; workspace y grows downward.
		fmt.Fprintf(&buf, "  %q [label=%q, pos=\"%s,%s!\", width=%s, height=%s];\n",
			n.ID(), label,
			fmtNum(p.X*pointsPerUnit), fmtNum(-p.Y*pointsPerUnit),
			fmtNum(n.Width()/72), fmtNum(n.Height()/72))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n *note.Note, detailed bool) string {
	if !detailed {
		return n.Content()
	}

	p := n.Position()
	parts := []string{
		fmt.Sprintf("at: (%s, %s)", fmtNum(p.X), fmtNum(p.Y)),
		fmt.Sprintf("size: %sx%s", fmtNum(n.Width()), fmtNum(n.Height())),
	}
	if n.SkewX() != 0 {
		parts = append(parts, fmt.Sprintf("skew: %s", fmtNum(n.SkewX())))
	}

	return n.Content() + "\n" + strings.Join(parts, "\n")
}

func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// SVG exports a board as SVG bytes, reporting progress through the
// registered export hooks.
func SVG(ctx context.Context, notes []*note.Note, opts Options) ([]byte, error) {
	observability.Export().OnExportStart(ctx, "svg")
	start := time.Now()

	svg, err := RenderSVG(ctx, ToDOT(notes, opts))

	observability.Export().OnExportComplete(ctx, "svg", len(svg), time.Since(start), err)
	return svg, err
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="(-?[0-9.]+)\s+(-?[0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the SVG root element so the view box starts at
// the origin with explicit pixel dimensions, which embeds cleanly in HTML.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
