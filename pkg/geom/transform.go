package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// =============================================================================
// Transform
// =============================================================================

// Transform is a node's local transform as a small structured value:
// an absolute translation plus an optional X-axis skew in degrees.
//
// Keeping the components structured (rather than a raw transform string)
// means writers cannot introduce concatenation-order bugs; the platform
// syntax is produced only at serialization time via [Transform.String].
type Transform struct {
	Translation Point
	SkewX       float64 // degrees; 0 means no skew
}

// Translate returns a pure-translation transform to (x, y).
func Translate(x, y float64) Transform {
	return Transform{Translation: Point{X: x, Y: y}}
}

// IsZero reports whether t is the neutral transform.
func (t Transform) IsZero() bool {
	return t.Translation == (Point{}) && t.SkewX == 0
}

// WithTranslation returns a copy of t translated to p, keeping the skew.
func (t Transform) WithTranslation(p Point) Transform {
	t.Translation = p
	return t
}

// String serializes the transform in SVG transform-attribute syntax,
// e.g. "translate(15,25)" or "translate(7,3) skewX(1.5)".
func (t Transform) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "translate(%s,%s)", fmtCoord(t.Translation.X), fmtCoord(t.Translation.Y))
	if t.SkewX != 0 {
		fmt.Fprintf(&b, " skewX(%s)", fmtCoord(t.SkewX))
	}
	return b.String()
}

// fmtCoord formats a coordinate without a trailing decimal point for whole
// values, matching the compact style of hand-written transform attributes.
func fmtCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
