package domain

import (
	"image"
	"strings"
	"time"
)

// Defaults used when a TicketSpec leaves a display field empty.
const (
	DefaultTitle    = "Date Pass · Valentine's Day"
	DefaultLocation = "Monterrey"
)

// TicketSpec is the caller-owned description of one ticket render.
// It is passed by value and never mutated by the renderer.
type TicketSpec struct {
	RecipientName string     `json:"recipient_name" yaml:"recipient"`
	QuestionText  string     `json:"question_text" yaml:"question"`
	TargetDate    *time.Time `json:"target_date,omitempty" yaml:"-"`
	Location      string     `json:"location,omitempty" yaml:"location"`
	Title         string     `json:"title,omitempty" yaml:"title"`
	Photo         *Photo     `json:"-" yaml:"-"` // nil renders the placeholder motif
}

// DisplayTitle returns the ribbon title, falling back to DefaultTitle.
func (s TicketSpec) DisplayTitle() string {
	if t := strings.TrimSpace(s.Title); t != "" {
		return t
	}
	return DefaultTitle
}

// DisplayLocation returns the location line value, falling back to DefaultLocation.
func (s TicketSpec) DisplayLocation() string {
	if l := strings.TrimSpace(s.Location); l != "" {
		return l
	}
	return DefaultLocation
}

// HasPhoto reports whether a photo handle is attached. A handle with zero
// dimensions still counts; the renderer decides how to treat it.
func (s TicketSpec) HasPhoto() bool {
	return s.Photo != nil && s.Photo.Image != nil
}

// Photo is an already-decoded bitmap supplied by the caller.
type Photo struct {
	Image  image.Image
	Source string // path or URL it was loaded from, informational only
}

// NewPhoto wraps a decoded image.
func NewPhoto(img image.Image, source string) *Photo {
	return &Photo{Image: img, Source: source}
}

// Width returns the intrinsic pixel width, or 0 for an empty handle.
func (p *Photo) Width() int {
	if p == nil || p.Image == nil {
		return 0
	}
	return p.Image.Bounds().Dx()
}

// Height returns the intrinsic pixel height, or 0 for an empty handle.
func (p *Photo) Height() int {
	if p == nil || p.Image == nil {
		return 0
	}
	return p.Image.Bounds().Dy()
}
