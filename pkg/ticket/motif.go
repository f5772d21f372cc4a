package ticket

import (
	"image/color"
	"iter"
	"math/rand/v2"
)

// MotifParams configures one scatter of heart motifs. Centres are drawn
// uniformly from Bounds; radii uniformly from [MinRadius, MaxRadius).
type MotifParams struct {
	Bounds               Region
	Count                int
	MinRadius, MaxRadius float64
	Color                color.NRGBA
	Opacity              float64 // multiplies Color's alpha, 0..1
}

// Motif is one heart: a centre point and a size.
type Motif struct {
	X, Y, R float64
}

// Motifs lazily yields p.Count motifs. Every call consumes fresh values from
// rng, so two scatters differ unless the caller reseeds; a nil rng uses an
// unseeded source.
func Motifs(rng *rand.Rand, p MotifParams) iter.Seq[Motif] {
	if rng == nil {
		rng = newRand()
	}
	span := p.MaxRadius - p.MinRadius
	if span < 0 {
		span = 0
	}
	return func(yield func(Motif) bool) {
		for i := 0; i < p.Count; i++ {
			m := Motif{
				X: p.Bounds.X + rng.Float64()*p.Bounds.W,
				Y: p.Bounds.Y + rng.Float64()*p.Bounds.H,
				R: p.MinRadius + rng.Float64()*span,
			}
			if !yield(m) {
				return
			}
		}
	}
}

// Trace adds the heart outline: two mirrored cubic lobes that start at the
// centre notch and meet again at the tip, 2R below it.
func (m Motif) Trace(p PathBuilder) {
	x, y, r := m.X, m.Y, m.R
	p.MoveTo(x, y)
	p.CubicTo(x-r, y-r, x-2*r, y+r/2, x, y+2*r)
	p.CubicTo(x+2*r, y+r/2, x+r, y-r, x, y)
	p.ClosePath()
}

// Painter is a PathBuilder that can fill the traced path in a solid colour.
type Painter interface {
	PathBuilder
	SetRGBA(r, g, b, a float64)
	Fill()
}

// DrawMotifs fills every motif of the scatter and returns how many it drew.
func DrawMotifs(dc Painter, rng *rand.Rand, p MotifParams) int {
	r, g, b, a := rgbaFloats(p.Color)
	dc.SetRGBA(r, g, b, a*clamp01(p.Opacity))
	n := 0
	for m := range Motifs(rng, p) {
		m.Trace(dc)
		dc.Fill()
		n++
	}
	return n
}

func rgbaFloats(c color.NRGBA) (r, g, b, a float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
