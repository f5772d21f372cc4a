package ticket

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"math"

	"github.com/disintegration/imaging"
	"github.com/go-pdf/fpdf"
)

// Default filenames offered to the user.
const (
	DefaultPNGName = "date-ticket.png"
	DefaultPDFName = "date-ticket.pdf"
)

// DefaultPDFMargin is the page margin in points.
const DefaultPDFMargin = 36

const ticketImageName = "ticket"

// EncodePNG serializes the ticket raster losslessly.
func EncodePNG(t *RenderedTicket) ([]byte, error) {
	if t == nil || t.Image == nil {
		return nil, errors.New("encode png: no rendered ticket")
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, t.Image, imaging.PNG, imaging.PNGCompressionLevel(png.DefaultCompression)); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Placement is where a raster lands on a page, in page units.
type Placement struct {
	Scale      float64
	X, Y, W, H float64
}

// PlaceOnPage scales a canvasW×canvasH raster to fit inside the page minus
// margin on every side, preserving aspect ratio, and centres it.
func PlaceOnPage(pageW, pageH, margin, canvasW, canvasH float64) Placement {
	maxW := pageW - 2*margin
	maxH := pageH - 2*margin
	scale := math.Min(maxW/canvasW, maxH/canvasH)
	w, h := canvasW*scale, canvasH*scale
	return Placement{
		Scale: scale,
		X:     (pageW - w) / 2,
		Y:     (pageH - h) / 2,
		W:     w,
		H:     h,
	}
}

// PDFOptions configures document export. Zero values select defaults.
type PDFOptions struct {
	// Margin is the page margin in points. Nil means DefaultPDFMargin; a
	// pointer to 0 places the raster edge to edge.
	Margin  *float64
	Title   string
	Subject string
	Creator string
}

// PageMargin returns a Margin value for PDFOptions.
func PageMargin(pt float64) *float64 { return &pt }

// MarginPoints resolves the configured margin.
func (o PDFOptions) MarginPoints() float64 {
	if o.Margin == nil {
		return DefaultPDFMargin
	}
	return *o.Margin
}

// ExportPDF renders the ticket onto one A4 landscape page. Writer failures
// are returned as *DocumentExportError; t itself is left untouched.
func ExportPDF(t *RenderedTicket, opts PDFOptions) ([]byte, error) {
	raster, err := EncodePNG(t)
	if err != nil {
		return nil, &DocumentExportError{Err: err}
	}
	if opts.Subject == "" {
		opts.Subject = t.Subject()
	}
	return EmbedPNG(raster, float64(t.Width()), float64(t.Height()), opts)
}

// Subject is the default document subject: the ticket code and render ID.
func (t *RenderedTicket) Subject() string {
	return "ticket " + t.Code + " / " + t.RenderID.String()
}

// EmbedPNG builds the single-page document around an already encoded PNG
// of the given pixel size.
func EmbedPNG(raster []byte, canvasW, canvasH float64, opts PDFOptions) ([]byte, error) {
	if canvasW <= 0 || canvasH <= 0 {
		return nil, &DocumentExportError{Err: fmt.Errorf("raster size %gx%g", canvasW, canvasH)}
	}
	margin := opts.MarginPoints()
	if margin < 0 || math.IsNaN(margin) {
		return nil, &DocumentExportError{Err: fmt.Errorf("margin %g is negative", margin)}
	}

	doc := fpdf.New("L", "pt", "A4", "")
	doc.SetCompression(true)
	if opts.Title != "" {
		doc.SetTitle(opts.Title, true)
	}
	if opts.Subject != "" {
		doc.SetSubject(opts.Subject, true)
	}
	if opts.Creator != "" {
		doc.SetCreator(opts.Creator, true)
	}
	doc.AddPage()

	pageW, pageH := doc.GetPageSize()
	pl := PlaceOnPage(pageW, pageH, margin, canvasW, canvasH)
	if pl.W <= 0 || pl.H <= 0 {
		return nil, &DocumentExportError{Err: fmt.Errorf("margin %g leaves no printable area", margin)}
	}

	imgOpts := fpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader(ticketImageName, imgOpts, bytes.NewReader(raster))
	doc.ImageOptions(ticketImageName, pl.X, pl.Y, pl.W, pl.H, false, imgOpts, 0, "")

	var out bytes.Buffer
	if err := doc.Output(&out); err != nil {
		return nil, &DocumentExportError{Err: err}
	}
	return out.Bytes(), nil
}
