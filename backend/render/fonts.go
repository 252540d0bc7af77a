package render

import (
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Point sizes for the three text zones of the summary image.
const (
	TitleSize  = 40
	BodySize   = 26
	FooterSize = 22

	fontDPI = 72
)

// FontSet holds the faces used for each zone. Preferred is false when the built-in fallback is in use.
type FontSet struct {
	Title     font.Face
	Body      font.Face
	Footer    font.Face
	Preferred bool
}

// ProbeFont reports whether the font asset at path can be read and parsed. It never fails loudly:
// a missing or broken asset only yields ok == false.
func ProbeFont(path string) (*opentype.Font, bool) {
	if path == "" {
		return nil, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, false
	}
	return f, true
}

// FallbackFonts uses the built-in 7x13 bitmap face for every zone.
func FallbackFonts() FontSet {
	return FontSet{
		Title:  basicfont.Face7x13,
		Body:   basicfont.Face7x13,
		Footer: basicfont.Face7x13,
	}
}

// LoadFonts probes the preferred asset at path and builds faces from it, or falls back.
func LoadFonts(path string) FontSet {
	f, _ := ProbeFont(path)
	return FacesFor(f)
}

// FacesFor builds one FontSet from a probed font; a nil font selects the fallback. Faces are not
// safe for concurrent use, so callers build a set per render and Close it afterwards.
func FacesFor(f *opentype.Font) FontSet {
	if f == nil {
		return FallbackFonts()
	}
	title, err := newFace(f, TitleSize)
	if err != nil {
		return FallbackFonts()
	}
	body, err := newFace(f, BodySize)
	if err != nil {
		title.Close()
		return FallbackFonts()
	}
	footer, err := newFace(f, FooterSize)
	if err != nil {
		title.Close()
		body.Close()
		return FallbackFonts()
	}
	return FontSet{Title: title, Body: body, Footer: footer, Preferred: true}
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
}

// Close releases the faces. The built-in fallback needs no cleanup.
func (fs FontSet) Close() error {
	if !fs.Preferred {
		return nil
	}
	for _, face := range []font.Face{fs.Title, fs.Body, fs.Footer} {
		if err := face.Close(); err != nil {
			return err
		}
	}
	return nil
}

// LineHeight is the vertical advance of one line set in face, in pixels.
func LineHeight(face font.Face) int {
	m := face.Metrics()
	if h := m.Height.Ceil(); h > 0 {
		return h
	}
	return (m.Ascent + m.Descent).Ceil()
}
