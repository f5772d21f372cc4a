package ticket

// Canvas dimensions shared by every render.
const (
	CanvasWidth  = 1200
	CanvasHeight = 600
)

// Region is a rectangle in canvas pixels with an optional corner radius.
type Region struct {
	X, Y, W, H float64
	Radius     float64
}

// Right returns the x coordinate of the right edge.
func (r Region) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Region) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal centre.
func (r Region) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical centre.
func (r Region) CenterY() float64 { return r.Y + r.H/2 }

// Inset shrinks the region by d on every side. Width and height never go negative.
func (r Region) Inset(d float64) Region {
	out := Region{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d, Radius: r.Radius}
	if out.W < 0 {
		out.X, out.W = r.CenterX(), 0
	}
	if out.H < 0 {
		out.Y, out.H = r.CenterY(), 0
	}
	return out
}

// Within reports whether r lies entirely inside outer.
func (r Region) Within(outer Region) bool {
	return r.X >= outer.X && r.Y >= outer.Y && r.Right() <= outer.Right() && r.Bottom() <= outer.Bottom()
}

// Layout is the fixed geometry of a ticket. Every drawing step places itself
// from these regions and nothing else.
type Layout struct {
	Canvas  Region
	Card    Region // shadowed white card
	Border  Region // thin stroke just inside the card
	Divider Region // zero-width vertical line at the midpoint
	Ribbon  Region // header ribbon
	Text    Region // left column; Y is the first baseline, W the wrap width
	Photo   Region // right column photo panel
	Pill    Region // ticket code pill
	Ambient Region // where background motifs are scattered

	// MidX is the horizontal midpoint of the canvas.
	MidX float64
}

// Fixed offsets, in canvas pixels.
const (
	cardInset      = 32
	cardRadius     = 24
	borderInset    = 48
	borderRadius   = 18
	dividerInset   = 88
	ribbonInsetX   = 72
	ribbonY        = 84
	ribbonHeight   = 64
	ribbonRadius   = 16
	textX          = 92
	textBaseline   = 208
	textRightGap   = 128
	photoGap       = 40
	photoY         = 188
	photoRightGap  = 72
	photoHeight    = 320
	photoRadius    = 22
	pillGap        = 66
	pillTopGap     = 18
	pillRightGap   = 68
	pillHeight     = 56
	pillRadius     = 14
	ambientInsetX  = 72
	ambientTop     = 148
	ambientBottom  = 88
	placeholderPad = 16
)

// NewLayout derives the ticket regions for a w×h canvas.
func NewLayout(w, h int) Layout {
	fw, fh := float64(w), float64(h)
	mid := fw / 2

	photoX := mid + photoGap
	photo := Region{X: photoX, Y: photoY, W: fw - photoX - photoRightGap, H: photoHeight, Radius: photoRadius}
	pillX := mid + pillGap

	return Layout{
		Canvas:  Region{W: fw, H: fh},
		Card:    Region{X: cardInset, Y: cardInset, W: fw - 2*cardInset, H: fh - 2*cardInset, Radius: cardRadius},
		Border:  Region{X: borderInset, Y: borderInset, W: fw - 2*borderInset, H: fh - 2*borderInset, Radius: borderRadius},
		Divider: Region{X: mid, Y: dividerInset, H: fh - 2*dividerInset},
		Ribbon:  Region{X: ribbonInsetX, Y: ribbonY, W: fw - 2*ribbonInsetX, H: ribbonHeight, Radius: ribbonRadius},
		Text:    Region{X: textX, Y: textBaseline, W: mid - textRightGap, H: fh - dividerInset - textBaseline},
		Photo:   photo,
		Pill:    Region{X: pillX, Y: photo.Bottom() + pillTopGap, W: fw - pillX - pillRightGap, H: pillHeight, Radius: pillRadius},
		Ambient: Region{X: ambientInsetX, Y: ambientTop, W: fw - 2*ambientInsetX, H: fh - ambientTop - ambientBottom},
		MidX:    mid,
	}
}

// PlaceholderArea is the part of the photo panel placeholder motifs are centred in.
func (l Layout) PlaceholderArea() Region {
	return l.Photo.Inset(placeholderPad)
}

// Regions returns every named region, for iteration in tests and debugging.
func (l Layout) Regions() map[string]Region {
	return map[string]Region{
		"card":    l.Card,
		"border":  l.Border,
		"divider": l.Divider,
		"ribbon":  l.Ribbon,
		"text":    l.Text,
		"photo":   l.Photo,
		"pill":    l.Pill,
		"ambient": l.Ambient,
	}
}
