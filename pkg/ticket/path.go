package ticket

import "math"

// PathBuilder is the subset of an immediate-mode 2D context needed to
// trace shapes. *gg.Context satisfies it.
type PathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// kappa places cubic control points so a quarter curve approximates a circle.
const kappa = 0.5522847498

// ClampRadius limits a corner radius to min(r, w/2, h/2), never below zero.
func ClampRadius(r, w, h float64) float64 {
	r = math.Min(r, math.Min(w/2, h/2))
	if r < 0 {
		return 0
	}
	return r
}

// RoundedRect traces a closed rounded rectangle for reg, clockwise from the
// top edge.
func RoundedRect(p PathBuilder, reg Region) {
	x, y, w, h := reg.X, reg.Y, reg.W, reg.H
	r := ClampRadius(reg.Radius, w, h)
	if r == 0 {
		p.MoveTo(x, y)
		p.LineTo(x+w, y)
		p.LineTo(x+w, y+h)
		p.LineTo(x, y+h)
		p.ClosePath()
		return
	}
	k := r * kappa
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.CubicTo(x+w-r+k, y, x+w, y+r-k, x+w, y+r)
	p.LineTo(x+w, y+h-r)
	p.CubicTo(x+w, y+h-r+k, x+w-r+k, y+h, x+w-r, y+h)
	p.LineTo(x+r, y+h)
	p.CubicTo(x+r-k, y+h, x, y+h-r+k, x, y+h-r)
	p.LineTo(x, y+r)
	p.CubicTo(x, y+r-k, x+r-k, y, x+r, y)
	p.ClosePath()
}
