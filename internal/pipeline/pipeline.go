// Package pipeline loads a photo, renders a ticket and writes the PNG and
// PDF files the user asked for. The CLI and the TUI both drive it.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/naveenspark/dateticket/internal/photo"
	"github.com/naveenspark/dateticket/pkg/domain"
	"github.com/naveenspark/dateticket/pkg/ticket"
)

// Request describes one export. Empty paths skip that format.
type Request struct {
	Spec        domain.TicketSpec
	PhotoSource string
	PNGPath     string
	PDFPath     string
	PDF         ticket.PDFOptions
}

// Result reports what was written. It is returned alongside a PDF error so
// callers can still point the user at the PNG.
type Result struct {
	Ticket  *ticket.RenderedTicket
	PNGPath string
	PDFPath string

	// PhotoErr is set when a requested photo was not shown.
	PhotoErr error
}

// Exporter is what interactive callers need from a Pipeline.
type Exporter interface {
	Export(ctx context.Context, req Request) (*Result, error)
}

// PhotoLoader resolves a photo source to a decoded image.
type PhotoLoader interface {
	Load(ctx context.Context, src string) (*domain.Photo, error)
}

// Pipeline serializes renders on one Compositor.
type Pipeline struct {
	mu         sync.Mutex
	compositor *ticket.Compositor
	photos     PhotoLoader
	logger     *slog.Logger
}

// New returns a Pipeline. A nil loader uses photo.NewLoader; a nil logger
// discards.
func New(c *ticket.Compositor, photos PhotoLoader, logger *slog.Logger) *Pipeline {
	if photos == nil {
		photos = photo.NewLoader()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Pipeline{compositor: c, photos: photos, logger: logger}
}

// Export renders req.Spec and writes the requested files. The PNG is
// written before the PDF is attempted, so a document failure leaves the
// raster on disk and is returned together with a non-nil Result.
func (p *Pipeline) Export(ctx context.Context, req Request) (*Result, error) {
	res := &Result{}
	spec := req.Spec
	if req.PhotoSource != "" {
		ph, err := p.photos.Load(ctx, req.PhotoSource)
		if err != nil {
			res.PhotoErr = err
			p.logger.Warn("photo unavailable, using placeholder", "source", req.PhotoSource, "error", err)
		} else {
			spec.Photo = ph
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	t, err := p.compositor.Render(spec)
	p.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	res.Ticket = t
	if res.PhotoErr == nil {
		res.PhotoErr = t.PhotoErr
	}

	raster, err := ticket.EncodePNG(t)
	if err != nil {
		return res, err
	}
	if req.PNGPath != "" {
		if err := writeFile(req.PNGPath, raster); err != nil {
			return res, err
		}
		res.PNGPath = req.PNGPath
		p.logger.Info("png written", "path", req.PNGPath, "bytes", len(raster))
	}

	if req.PDFPath != "" {
		opts := req.PDF
		if opts.Subject == "" {
			opts.Subject = t.Subject()
		}
		doc, err := ticket.EmbedPNG(raster, float64(t.Width()), float64(t.Height()), opts)
		if err != nil {
			p.logger.Error("pdf export failed", "error", err, "render_id", t.RenderID.String())
			return res, fmt.Errorf("export pdf: %w", err)
		}
		if err := writeFile(req.PDFPath, doc); err != nil {
			return res, err
		}
		res.PDFPath = req.PDFPath
		p.logger.Info("pdf written", "path", req.PDFPath, "bytes", len(doc))
	}
	return res, nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
