package photo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // registers the WebP decoder

	"github.com/naveenspark/dateticket/pkg/domain"
)

const (
	// maxPhotoSize caps how many bytes are read from a photo source.
	maxPhotoSize = 20 << 20 // 20 MB

	// maxPhotoPixels caps decoded width*height. A small compressed file can
	// declare dimensions that would need gigabytes once decoded.
	maxPhotoPixels = 40_000_000
)

// ErrTooLarge is returned for sources over the byte or pixel cap.
var ErrTooLarge = errors.New("photo too large")

// Loader fetches and decodes photos for a ticket.
type Loader struct {
	HTTP *http.Client
}

// NewLoader returns a Loader with a bounded HTTP timeout.
func NewLoader() *Loader {
	return &Loader{HTTP: &http.Client{Timeout: 15 * time.Second}}
}

// IsURL reports whether src should be fetched over HTTP.
func IsURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// Load reads src (a file path or http(s) URL) and decodes it, honouring
// EXIF orientation. An empty src returns a nil photo and no error.
func (l *Loader) Load(ctx context.Context, src string) (*domain.Photo, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, nil
	}

	var r io.ReadCloser
	var err error
	if IsURL(src) {
		r, err = l.fetch(ctx, src)
	} else {
		r, err = os.Open(src)
	}
	if err != nil {
		return nil, fmt.Errorf("load photo %s: %w", src, err)
	}
	defer r.Close() //nolint:errcheck

	data, err := io.ReadAll(io.LimitReader(r, maxPhotoSize+1))
	if err != nil {
		return nil, fmt.Errorf("read photo %s: %w", src, err)
	}
	if len(data) > maxPhotoSize {
		return nil, fmt.Errorf("photo %s: over %d bytes: %w", src, maxPhotoSize, ErrTooLarge)
	}
	if err := checkDimensions(data); err != nil {
		return nil, fmt.Errorf("photo %s: %w", src, err)
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode photo %s: %w", src, err)
	}
	return domain.NewPhoto(img, src), nil
}

// checkDimensions reads only the image header and rejects sizes that would
// not fit the pixel cap once decoded.
func checkDimensions(data []byte) error {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode header: %w", err)
	}
	if int64(cfg.Width)*int64(cfg.Height) > maxPhotoPixels {
		return fmt.Errorf("%s is %dx%d, over %d pixels: %w", format, cfg.Width, cfg.Height, maxPhotoPixels, ErrTooLarge)
	}
	return nil
}

func (l *Loader) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	client := l.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close() //nolint:errcheck
		return nil, fmt.Errorf("HTTP %s", resp.Status)
	}
	return resp.Body, nil
}
