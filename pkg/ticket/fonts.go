package ticket

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Type sizes in pixels (faces are built at 72 DPI so points == pixels).
const (
	titleSize    = 38
	nameSize     = 36
	questionSize = 26
	detailSize   = 30
	codeSize     = 24
)

type fontFamily struct {
	regular, bold, monoBold *opentype.Font
}

// parsed fonts are immutable and shared by all renders.
var loadFamily = sync.OnceValues(func() (*fontFamily, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	mono, err := opentype.Parse(gomonobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse mono font: %w", err)
	}
	return &fontFamily{regular: regular, bold: bold, monoBold: mono}, nil
})

// faceSet holds the faces for one render. Faces carry glyph caches and are
// not shared between renders.
type faceSet struct {
	title, name, question, detail, code font.Face
}

func newFaceSet() (*faceSet, error) {
	fam, err := loadFamily()
	if err != nil {
		return nil, err
	}
	fs := &faceSet{}
	specs := []struct {
		dst  *font.Face
		f    *opentype.Font
		size float64
	}{
		{&fs.title, fam.bold, titleSize},
		{&fs.name, fam.bold, nameSize},
		{&fs.question, fam.regular, questionSize},
		{&fs.detail, fam.regular, detailSize},
		{&fs.code, fam.monoBold, codeSize},
	}
	for _, s := range specs {
		face, err := opentype.NewFace(s.f, &opentype.FaceOptions{
			Size:    s.size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			fs.Close()
			return nil, fmt.Errorf("build %gpx face: %w", s.size, err)
		}
		*s.dst = face
	}
	return fs, nil
}

// Close releases every face that was built.
func (fs *faceSet) Close() {
	for _, f := range []font.Face{fs.title, fs.name, fs.question, fs.detail, fs.code} {
		if f != nil {
			f.Close() //nolint:errcheck
		}
	}
}
