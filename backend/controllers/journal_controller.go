package controllers

import (
	"github.com/gofiber/fiber/v2"

	"giftbox/backend/middleware"
	"giftbox/backend/models"
	"giftbox/backend/utils"
)

type JournalController struct {
	Clock Clock
}

func NewJournalController(clock Clock) *JournalController {
	return &JournalController{Clock: clock}
}

type JournalInput struct {
	Date string `json:"date" form:"date"`
	Note string `json:"note" form:"note"`
}

// AddEntry godoc
// @Summary Add a gratitude note
// @Tags journal
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param entry body JournalInput true "Journal entry"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /journal [post]
func (jc *JournalController) AddEntry(c *fiber.Ctx) error {
	var input JournalInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse journal entry")
	}

	date, err := dateOrDefault(input.Date, jc.Clock.today())
	if err != nil {
		return utils.ValidationError(c, map[string]string{"date": err.Error()})
	}

	entry := models.JournalEntry{Date: date, Note: input.Note}
	middleware.CurrentSession(c).Store.AppendJournal(entry)

	return utils.Created(c, entry)
}

// ListEntries godoc
// @Summary List gratitude notes
// @Tags journal
// @Produce json
// @Success 200 {object} utils.PaginatedResponse
// @Router /journal [get]
func (jc *JournalController) ListEntries(c *fiber.Ctx) error {
	return paginate(c, middleware.CurrentSession(c).Store.Journal())
}
