package controllers

import (
	"github.com/gofiber/fiber/v2"

	"giftbox/backend/middleware"
	"giftbox/backend/models"
	"giftbox/backend/utils"
)

// defaultGoalMonths is how far ahead the target date lands when none is given.
const defaultGoalMonths = 3

type GoalsController struct {
	Clock Clock
}

func NewGoalsController(clock Clock) *GoalsController {
	return &GoalsController{Clock: clock}
}

type GoalInput struct {
	Label      string `json:"label" form:"label"`
	Category   string `json:"category" form:"category"`
	TargetDate string `json:"target_date" form:"target_date"`
	Progress   int    `json:"progress" form:"progress"`
}

// AddGoal godoc
// @Summary Add a goal
// @Description Appends a goal. Progress is clamped to 0-100; target date defaults to three months ahead.
// @Tags goals
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param goal body GoalInput true "Goal"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /goals [post]
func (gc *GoalsController) AddGoal(c *fiber.Ctx) error {
	var input GoalInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse goal")
	}

	errors := map[string]string{}

	category, err := models.ParseCategory(input.Category)
	if err != nil {
		errors["category"] = err.Error()
	}

	target, err := dateOrDefault(input.TargetDate, gc.Clock.today().AddMonths(defaultGoalMonths))
	if err != nil {
		errors["target_date"] = err.Error()
	}

	if len(errors) > 0 {
		return utils.ValidationError(c, errors)
	}

	entry := models.GoalEntry{
		Label:      input.Label,
		Category:   category,
		TargetDate: target,
		Progress:   clampProgress(input.Progress),
	}
	middleware.CurrentSession(c).Store.AppendGoal(entry)

	return utils.Created(c, entry)
}

// ListGoals godoc
// @Summary List goals
// @Tags goals
// @Produce json
// @Success 200 {object} utils.PaginatedResponse
// @Router /goals [get]
func (gc *GoalsController) ListGoals(c *fiber.Ctx) error {
	return paginate(c, middleware.CurrentSession(c).Store.Goals())
}

// ListCategories returns the selectable categories with their display labels.
func (gc *GoalsController) ListCategories(c *fiber.Ctx) error {
	out := make([]fiber.Map, 0, len(models.Categories))
	for _, cat := range models.Categories {
		out = append(out, fiber.Map{"value": cat, "label": cat.Label()})
	}
	return utils.Success(c, fiber.StatusOK, out)
}
