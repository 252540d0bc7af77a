package controllers

import (
	"github.com/gofiber/fiber/v2"

	"giftbox/backend/middleware"
	"giftbox/backend/models"
	"giftbox/backend/utils"
)

type HabitsController struct {
	Clock Clock
}

func NewHabitsController(clock Clock) *HabitsController {
	return &HabitsController{Clock: clock}
}

type HabitInput struct {
	Date  string `json:"date" form:"date"`
	Label string `json:"label" form:"label"`
	Done  bool   `json:"done" form:"done"`
}

// AddHabit godoc
// @Summary Add a habit check
// @Description Appends a habit entry to the session checklist. Date defaults to today.
// @Tags habits
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param habit body HabitInput true "Habit entry"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /habits [post]
func (hc *HabitsController) AddHabit(c *fiber.Ctx) error {
	var input HabitInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse habit")
	}

	date, err := dateOrDefault(input.Date, hc.Clock.today())
	if err != nil {
		return utils.ValidationError(c, map[string]string{"date": err.Error()})
	}

	entry := models.HabitEntry{Date: date, Label: input.Label, Done: input.Done}
	middleware.CurrentSession(c).Store.AppendHabit(entry)

	return utils.Created(c, entry)
}

// ListHabits godoc
// @Summary List habit checks
// @Tags habits
// @Produce json
// @Param page query int false "Page, from 1"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.PaginatedResponse
// @Router /habits [get]
func (hc *HabitsController) ListHabits(c *fiber.Ctx) error {
	return paginate(c, middleware.CurrentSession(c).Store.Habits())
}
