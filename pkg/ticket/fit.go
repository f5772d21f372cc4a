package ticket

import (
	"image"
	"math"
)

// Fit is the placement of a source image scaled to cover a box. Offsets are
// relative to the box origin and are <= 0 whenever the image overflows.
type Fit struct {
	Scale            float64
	Width, Height    float64 // scaled image size
	OffsetX, OffsetY float64
}

// CoverFit scales a srcW×srcH image so it fills a boxW×boxH box completely
// and centres it, cropping the overflow instead of letterboxing.
func CoverFit(srcW, srcH int, boxW, boxH float64) (Fit, error) {
	if srcW <= 0 || srcH <= 0 {
		return Fit{}, &InvalidImageError{Width: srcW, Height: srcH}
	}
	w, h := float64(srcW), float64(srcH)
	scale := math.Max(boxW/w, boxH/h)
	dw, dh := w*scale, h*scale
	return Fit{
		Scale:   scale,
		Width:   dw,
		Height:  dh,
		OffsetX: (boxW - dw) / 2,
		OffsetY: (boxH - dh) / 2,
	}, nil
}

// PixelRect snaps the fitted image to whole pixels for a box whose origin is
// (originX, originY). The edges are rounded outward so the box stays covered.
func (f Fit) PixelRect(originX, originY float64) image.Rectangle {
	x0 := math.Floor(originX + f.OffsetX + 1e-9)
	y0 := math.Floor(originY + f.OffsetY + 1e-9)
	x1 := math.Ceil(originX + f.OffsetX + f.Width - 1e-9)
	y1 := math.Ceil(originY + f.OffsetY + f.Height - 1e-9)
	return image.Rect(int(x0), int(y0), int(x1), int(y1))
}

// SourceRect is the part of src that stays visible inside the box after the
// fit, rounded outward to whole source pixels and clipped to src. It is never
// empty for a valid fit.
func (f Fit) SourceRect(src image.Rectangle) image.Rectangle {
	boxW := f.Width + 2*f.OffsetX
	boxH := f.Height + 2*f.OffsetY
	x0 := math.Floor(-f.OffsetX/f.Scale + 1e-9)
	y0 := math.Floor(-f.OffsetY/f.Scale + 1e-9)
	x1 := math.Ceil((boxW-f.OffsetX)/f.Scale - 1e-9)
	y1 := math.Ceil((boxH-f.OffsetY)/f.Scale - 1e-9)

	r := image.Rect(int(x0), int(y0), int(x1), int(y1)).Add(src.Min).Intersect(src)
	if r.Dx() < 1 {
		r.Max.X = min(r.Min.X+1, src.Max.X)
	}
	if r.Dy() < 1 {
		r.Max.Y = min(r.Min.Y+1, src.Max.Y)
	}
	return r
}
