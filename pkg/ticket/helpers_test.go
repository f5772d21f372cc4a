package ticket

import (
	"math"
	"unicode/utf8"
)

// fixedMeasurer measures every rune as the same width.
type fixedMeasurer float64

func (f fixedMeasurer) MeasureString(s string) (float64, float64) {
	return float64(utf8.RuneCountInString(s)) * float64(f), float64(f)
}

type pathOp struct {
	op  string
	pts []float64
}

// recorder captures path commands and fills.
type recorder struct {
	ops   []pathOp
	fills int
	alpha float64
}

func (r *recorder) MoveTo(x, y float64) { r.ops = append(r.ops, pathOp{"move", []float64{x, y}}) }
func (r *recorder) LineTo(x, y float64) { r.ops = append(r.ops, pathOp{"line", []float64{x, y}}) }
func (r *recorder) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	r.ops = append(r.ops, pathOp{"cubic", []float64{x1, y1, x2, y2, x3, y3}})
}
func (r *recorder) ClosePath()                 { r.ops = append(r.ops, pathOp{op: "close"}) }
func (r *recorder) SetRGBA(_, _, _, a float64) { r.alpha = a }
func (r *recorder) Fill()                      { r.fills++ }

// bounds returns the bounding box of every recorded point, control points included.
func (r *recorder) bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, op := range r.ops {
		for i := 0; i+1 < len(op.pts); i += 2 {
			minX = math.Min(minX, op.pts[i])
			maxX = math.Max(maxX, op.pts[i])
			minY = math.Min(minY, op.pts[i+1])
			maxY = math.Max(maxY, op.pts[i+1])
		}
	}
	return
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
