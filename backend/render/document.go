package render

import (
	"bytes"

	"golang.org/x/image/font/opentype"

	"giftbox/backend/models"
)

// RenderDocument lays out the document body at wrapWidth and encodes the summary image. preferred
// is the probed font asset, or nil to use the built-in face.
func RenderDocument(doc models.SummaryDocument, wrapWidth int, preferred *opentype.Font) (*bytes.Reader, error) {
	fonts := FacesFor(preferred)
	defer fonts.Close()

	page := Page{
		Title:  doc.Title,
		Lines:  Layout(doc.Body, wrapWidth),
		Footer: doc.Footer,
	}
	return Encode(page, fonts)
}
