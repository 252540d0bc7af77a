package controllers

import (
	"github.com/gofiber/fiber/v2"

	"giftbox/backend/middleware"
	"giftbox/backend/services"
	"giftbox/backend/utils"
)

type GiftController struct{}

func NewGiftController() *GiftController {
	return &GiftController{}
}

// OpenGift godoc
// @Summary Open the Christmas gift
// @Description Marks the session gift as opened and returns the festive message
// @Tags gift
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /gift/open [post]
func (gc *GiftController) OpenGift(c *fiber.Ctx) error {
	middleware.CurrentSession(c).OpenGift()
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"opened":  true,
		"message": services.GiftMessage,
	})
}

// GetGift returns whether the gift was opened in this session.
func (gc *GiftController) GetGift(c *fiber.Ctx) error {
	opened := middleware.CurrentSession(c).GiftOpened()
	data := fiber.Map{"opened": opened}
	if opened {
		data["message"] = services.GiftMessage
	}
	return utils.Success(c, fiber.StatusOK, data)
}
