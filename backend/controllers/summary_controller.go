package controllers

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/yuin/goldmark"
	"golang.org/x/image/font/opentype"

	"giftbox/backend/config"
	"giftbox/backend/middleware"
	"giftbox/backend/models"
	"giftbox/backend/render"
	"giftbox/backend/services"
	"giftbox/backend/session"
	"giftbox/backend/utils"
)

type SummaryController struct {
	Cfg   *config.Config
	Clock Clock
	// Font is the preferred font asset resolved at startup; nil selects the built-in face.
	Font     *opentype.Font
	markdown goldmark.Markdown
}

func NewSummaryController(cfg *config.Config, font *opentype.Font, clock Clock) *SummaryController {
	return &SummaryController{
		Cfg:      cfg,
		Clock:    clock,
		Font:     font,
		markdown: goldmark.New(),
	}
}

func (sc *SummaryController) build(s *session.Session) (models.SummarySnapshot, models.SummaryDocument) {
	records := s.Store.Snapshot()
	snapshot := services.ComputeSummary(records)
	doc := services.BuildDocument(sc.Cfg.Variant, snapshot, records.Goals, sc.Clock.now())
	return snapshot, doc
}

// GetSummary godoc
// @Summary Get the annual summary
// @Description Returns the summary statistics and the formatted markdown block
// @Tags summary
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /summary [get]
func (sc *SummaryController) GetSummary(c *fiber.Ctx) error {
	snapshot, doc := sc.build(middleware.CurrentSession(c))
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"variant":  sc.Cfg.Variant,
		"summary":  snapshot,
		"document": doc,
		"export":   sc.Cfg.Variant.ExportEnabled(),
	})
}

// GetSummaryImage godoc
// @Summary Download the summary image
// @Description Renders the summary as a PNG attachment. Not available in the personal variant.
// @Tags summary
// @Produce png
// @Success 200 {file} file
// @Failure 404 {object} utils.ErrorResponse
// @Router /summary/image [get]
func (sc *SummaryController) GetSummaryImage(c *fiber.Ctx) error {
	if !sc.Cfg.Variant.ExportEnabled() {
		return utils.NotFound(c, "Image export is not available in this variant")
	}

	_, doc := sc.build(middleware.CurrentSession(c))
	img, err := render.RenderDocument(doc, sc.Cfg.WrapWidth, sc.Font)
	if err != nil {
		return err
	}

	c.Attachment(sc.Cfg.Variant.ExportFilename())
	c.Set(fiber.HeaderContentType, "image/png")
	return c.SendStream(img, int(img.Size()))
}

// GetSummaryPage renders the summary block as HTML.
func (sc *SummaryController) GetSummaryPage(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	_, doc := sc.build(s)

	var body bytes.Buffer
	if err := sc.markdown.Convert([]byte(doc.Markdown), &body); err != nil {
		return fmt.Errorf("render summary markdown: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html lang=\"es\">\n<head><meta charset=\"utf-8\"><title>🎁 GiftBox</title></head>\n<body>\n")
	if s.GiftOpened() {
		fmt.Fprintf(&page, "<p class=\"gift-message\">%s</p>\n", services.GiftMessage)
	}
	page.Write(body.Bytes())
	if sc.Cfg.Variant.ExportEnabled() {
		fmt.Fprintf(&page, "<p><a href=\"/api/summary/image\" download=\"%s\">Descargar imagen</a></p>\n", sc.Cfg.Variant.ExportFilename())
	}
	page.WriteString("</body>\n</html>\n")

	c.Type("html", "utf-8")
	return c.Send(page.Bytes())
}
