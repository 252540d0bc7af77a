package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	CanvasWidth = 1200
	Padding     = 40
	LineSpacing = 10

	// zoneGap separates title, body and footer.
	zoneGap = 20
)

var (
	backgroundColor = color.RGBA{R: 0xfd, G: 0xf6, B: 0xe3, A: 0xff}
	titleColor      = color.RGBA{R: 0x6d, G: 0x4c, B: 0x41, A: 0xff}
	bodyColor       = color.RGBA{R: 0x3e, G: 0x27, B: 0x23, A: 0xff}
	footerColor     = color.RGBA{R: 0x8d, G: 0x6e, B: 0x63, A: 0xff}
	ruleColor       = color.RGBA{R: 0xd7, G: 0xcc, B: 0xc8, A: 0xff}
)

// Page is what gets painted: a title, pre-wrapped body lines and an optional footer.
type Page struct {
	Title  string
	Lines  []string
	Footer string
}

// CanvasHeight stacks the three zones with fixed gaps. The footer zone is always reserved.
func CanvasHeight(lines int, fonts FontSet) int {
	return 2*Padding +
		LineHeight(fonts.Title) + zoneGap +
		lines*(LineHeight(fonts.Body)+LineSpacing) + zoneGap +
		LineHeight(fonts.Footer) + zoneGap
}

// Paint draws the page onto a new canvas.
func Paint(page Page, fonts FontSet) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight(len(page.Lines), fonts)))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	y := Padding
	drawText(canvas, fonts.Title, titleColor, Padding, y, page.Title)
	y += LineHeight(fonts.Title) + zoneGap

	pitch := LineHeight(fonts.Body) + LineSpacing
	for _, line := range page.Lines {
		drawText(canvas, fonts.Body, bodyColor, Padding, y, line)
		y += pitch
	}

	if page.Footer != "" {
		rule := image.Rect(Padding, y+zoneGap/2-1, CanvasWidth-Padding, y+zoneGap/2+1)
		draw.Draw(canvas, rule, image.NewUniform(ruleColor), image.Point{}, draw.Src)
		drawText(canvas, fonts.Footer, footerColor, Padding, y+zoneGap, page.Footer)
	}
	return canvas
}

// drawText places the top of the line at y.
func drawText(dst draw.Image, face font.Face, c color.Color, x, y int, text string) {
	if text == "" {
		return
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}

// Encode paints the page and returns the PNG bytes, positioned at the start.
func Encode(page Page, fonts FontSet) (*bytes.Reader, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, Paint(page, fonts)); err != nil {
		return nil, fmt.Errorf("encode summary image: %w", err)
	}
	return bytes.NewReader(buf.Bytes()), nil
}
