package ticket

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/google/uuid"

	"github.com/naveenspark/dateticket/pkg/domain"
)

// Motif densities.
const (
	placeholderCount = 16
	placeholderMinR  = 9
	placeholderMaxR  = 23
	ambientCount     = 24
	ambientMinR      = 8
	ambientMaxR      = 22
	ambientOpacity   = 0.09
)

// Card drop shadow.
const (
	shadowSigma   = 12 // half of a 24px CSS-style blur radius
	shadowOffsetY = 8
)

// Text spacing in the left column.
const (
	questionGap        = 52 // name baseline to first question baseline
	questionLineHeight = 32
	detailsGap         = 20
	dateOffset         = 34
	locationOffset     = 70
)

// SurfaceFactory allocates a drawing surface.
type SurfaceFactory func(w, h int) (*gg.Context, error)

// NewSurface is the default SurfaceFactory.
func NewSurface(w, h int) (*gg.Context, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.New("non-positive surface size")
	}
	return gg.NewContext(w, h), nil
}

// RenderedTicket is one finished ticket raster.
type RenderedTicket struct {
	Image    image.Image
	Code     string
	RenderID uuid.UUID

	// Placeholder is true when the photo panel shows motifs instead of a photo.
	Placeholder bool
	// PhotoErr records why a supplied photo was replaced by the placeholder.
	PhotoErr error
}

// Width returns the raster width in pixels.
func (t *RenderedTicket) Width() int { return t.Image.Bounds().Dx() }

// Height returns the raster height in pixels.
func (t *RenderedTicket) Height() int { return t.Image.Bounds().Dy() }

// Compositor draws tickets. It holds configuration only; each Render
// allocates its own surface. A Compositor shares one random source across
// renders, so it is not safe for concurrent use; create one per goroutine.
type Compositor struct {
	rng        *rand.Rand
	logger     *slog.Logger
	newSurface SurfaceFactory
	layout     Layout
}

// Option configures a Compositor.
type Option func(*Compositor)

// WithRand sets the random source for motifs and ticket codes.
func WithRand(rng *rand.Rand) Option {
	return func(c *Compositor) { c.rng = rng }
}

// WithSeed makes motif placement and codes reproducible.
func WithSeed(seed uint64) Option {
	return func(c *Compositor) { c.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Compositor) { c.logger = l }
}

// WithSurfaceFactory replaces the surface allocator.
func WithSurfaceFactory(f SurfaceFactory) Option {
	return func(c *Compositor) { c.newSurface = f }
}

// NewCompositor returns a Compositor for the fixed 1200×600 canvas.
func NewCompositor(opts ...Option) *Compositor {
	c := &Compositor{
		logger:     slog.New(slog.DiscardHandler),
		newSurface: NewSurface,
		layout:     NewLayout(CanvasWidth, CanvasHeight),
	}
	for _, o := range opts {
		o(c)
	}
	if c.rng == nil {
		c.rng = newRand()
	}
	return c
}

// Layout returns the geometry the compositor draws with.
func (c *Compositor) Layout() Layout { return c.layout }

// Render composites one ticket. A SurfaceUnavailableError means nothing was
// drawn; a bad photo only downgrades the photo panel to the placeholder.
func (c *Compositor) Render(spec domain.TicketSpec) (*RenderedTicket, error) {
	l := c.layout
	w, h := int(l.Canvas.W), int(l.Canvas.H)

	dc, err := c.newSurface(w, h)
	if err != nil {
		return nil, &SurfaceUnavailableError{Width: w, Height: h, Err: err}
	}
	shadow, err := c.newSurface(w, h)
	if err != nil {
		return nil, &SurfaceUnavailableError{Width: w, Height: h, Err: err}
	}
	faces, err := newFaceSet()
	if err != nil {
		return nil, fmt.Errorf("render ticket: %w", err)
	}
	defer faces.Close()

	t := &RenderedTicket{
		Code:     domain.NewTicketCode(c.rng),
		RenderID: uuid.New(),
	}
	log := c.logger.With("render_id", t.RenderID.String())
	log.Debug("render started", "recipient", spec.RecipientName, "photo", spec.HasPhoto())

	drawBackground(dc, l)
	drawCard(dc, shadow, l)
	drawFrame(dc, l)
	drawRibbon(dc, l, faces, spec.DisplayTitle())
	drawDetails(dc, l, faces, spec)

	if err := c.drawPhotoPanel(dc, l, spec.Photo); err != nil {
		t.Placeholder = true
		if spec.HasPhoto() {
			t.PhotoErr = err
			log.Warn("photo replaced by placeholder", "error", err)
		}
	}

	DrawMotifs(dc, c.rng, MotifParams{
		Bounds:    l.Ambient,
		Count:     ambientCount,
		MinRadius: ambientMinR,
		MaxRadius: ambientMaxR,
		Color:     ambientFg,
		Opacity:   ambientOpacity,
	})

	drawPill(dc, l, faces, t.Code)

	t.Image = dc.Image()
	log.Info("ticket rendered", "code", t.Code, "placeholder", t.Placeholder)
	return t, nil
}

func drawBackground(dc *gg.Context, l Layout) {
	grad := gg.NewLinearGradient(0, 0, l.Canvas.W, l.Canvas.H)
	grad.AddColorStop(0, bgFrom)
	grad.AddColorStop(1, bgTo)
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, l.Canvas.W, l.Canvas.H)
	dc.Fill()
}

// drawCard paints the blurred shadow on its own surface first, then the card.
func drawCard(dc, shadow *gg.Context, l Layout) {
	shadow.SetColor(shadowColor)
	RoundedRect(shadow, l.Card)
	shadow.Fill()
	dc.DrawImage(imaging.Blur(shadow.Image(), shadowSigma), 0, shadowOffsetY)

	dc.SetColor(cardColor)
	RoundedRect(dc, l.Card)
	dc.Fill()
}

func drawFrame(dc *gg.Context, l Layout) {
	dc.SetColor(borderColor)
	dc.SetLineWidth(3)
	RoundedRect(dc, l.Border)
	dc.Stroke()

	dc.SetDash(6, 12)
	dc.SetColor(dividerColor)
	dc.SetLineWidth(2)
	dc.MoveTo(l.Divider.X, l.Divider.Y)
	dc.LineTo(l.Divider.X, l.Divider.Bottom())
	dc.Stroke()
	dc.SetDash()
}

func drawRibbon(dc *gg.Context, l Layout, faces *faceSet, title string) {
	r := l.Ribbon
	grad := gg.NewLinearGradient(r.X, r.Y, r.Right(), r.Bottom())
	grad.AddColorStop(0, ribbonFrom)
	grad.AddColorStop(1, ribbonTo)
	dc.SetFillStyle(grad)
	RoundedRect(dc, r)
	dc.Fill()

	dc.SetFontFace(faces.title)
	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(title, l.Canvas.CenterX(), r.CenterY(), 0.5, 0.5)
}

func drawDetails(dc *gg.Context, l Layout, faces *faceSet, spec domain.TicketSpec) {
	x, y := l.Text.X, l.Text.Y
	dc.SetColor(inkColor)

	dc.SetFontFace(faces.name)
	dc.DrawString("For: "+spec.RecipientName, x, y)

	dc.SetFontFace(faces.question)
	lines, last := Wrap(dc, spec.QuestionText, x, y+questionGap, l.Text.W, questionLineHeight)
	for _, ln := range lines {
		dc.DrawString(ln.Text, ln.X, ln.Y)
	}
	y = last + detailsGap

	dc.SetFontFace(faces.detail)
	dc.DrawString("Date: "+domain.FormatTargetDate(spec.TargetDate), x, y+dateOffset)
	dc.DrawString("Location: "+spec.DisplayLocation(), x, y+locationOffset)
}

// drawPhotoPanel fills the rounded panel with the cover-fitted photo, or
// with placeholder motifs when there is no usable photo. The returned error
// says why the placeholder was used; it is nil when the photo was drawn.
func (c *Compositor) drawPhotoPanel(dc *gg.Context, l Layout, photo *domain.Photo) error {
	p := l.Photo

	dc.Push()
	RoundedRect(dc, p)
	dc.Clip()
	dc.SetColor(panelColor)
	dc.DrawRectangle(p.X, p.Y, p.W, p.H)
	dc.Fill()

	err := errNoPhoto
	if photo != nil && photo.Image != nil {
		err = drawCoverPhoto(dc, p, photo)
	}
	if err != nil {
		DrawMotifs(dc, c.rng, MotifParams{
			Bounds:    l.PlaceholderArea(),
			Count:     placeholderCount,
			MinRadius: placeholderMinR,
			MaxRadius: placeholderMaxR,
			Color:     placeholderFg,
			Opacity:   1,
		})
	}
	dc.Pop()

	dc.SetColor(panelBorder)
	dc.SetLineWidth(3)
	RoundedRect(dc, p)
	dc.Stroke()
	return err
}

var errNoPhoto = errors.New("no photo")

func drawCoverPhoto(dc *gg.Context, box Region, photo *domain.Photo) error {
	scaled, err := coverImage(photo.Image, box)
	if err != nil {
		return err
	}
	dc.DrawImage(scaled, int(math.Floor(box.X)), int(math.Floor(box.Y)))
	return nil
}

// coverImage crops img to the part CoverFit leaves visible in box and scales
// only that part, so the result is box-sized whatever the source aspect.
func coverImage(img image.Image, box Region) (*image.NRGBA, error) {
	b := img.Bounds()
	fit, err := CoverFit(b.Dx(), b.Dy(), box.W, box.H)
	if err != nil {
		return nil, err
	}
	visible := imaging.Crop(img, fit.SourceRect(b))
	w, h := int(math.Ceil(box.W)), int(math.Ceil(box.H))
	return imaging.Resize(visible, w, h, imaging.Lanczos), nil
}

func drawPill(dc *gg.Context, l Layout, faces *faceSet, code string) {
	p := l.Pill
	dc.SetColor(pillColor)
	RoundedRect(dc, p)
	dc.Fill()

	dc.SetFontFace(faces.code)
	dc.SetColor(codeColor)
	dc.DrawStringAnchored("Code: "+code, p.CenterX(), p.CenterY(), 0.5, 0.5)
}
