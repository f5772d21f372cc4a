package ticket

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Code pill colours, shared with the terminal front ends.
const (
	CodeInkHex  = "#ff4d6d"
	PillFillHex = "#ffe2ea"
)

// Palette used by the compositor.
var (
	bgFrom        = mustHex("#ffd7c7")
	bgTo          = mustHex("#ffb3c1")
	shadowColor   = color.NRGBA{R: 255, G: 77, B: 109, A: 64} // ~0.25 alpha
	cardColor     = color.NRGBA{R: 255, G: 255, B: 255, A: 242}
	borderColor   = mustHex("#ff7aa5")
	dividerColor  = color.NRGBA{R: 255, G: 122, B: 165, A: 128}
	ribbonFrom    = mustHex("#ff5c7a")
	ribbonTo      = mustHex("#ff3b6a")
	inkColor      = mustHex("#222222")
	panelColor    = mustHex("#fbe0e6")
	panelBorder   = mustHex("#ff9bb0")
	placeholderFg = mustHex("#ff8fab")
	ambientFg     = mustHex(CodeInkHex)
	pillColor     = mustHex(PillFillHex)
	codeColor     = mustHex(CodeInkHex)
)

// ParseHex parses #rgb or #rrggbb into an opaque colour.
func ParseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.NRGBA{}, fmt.Errorf("parse colour %q: want #rgb or #rrggbb", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func mustHex(s string) color.NRGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
