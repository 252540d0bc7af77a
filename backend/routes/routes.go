package routes

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/image/font/opentype"

	"giftbox/backend/config"
	"giftbox/backend/controllers"
	"giftbox/backend/middleware"
	"giftbox/backend/session"
)

func SetupRoutes(app *fiber.App, registry *session.Registry, cfg *config.Config, font *opentype.Font, clock controllers.Clock) {
	sessionMiddleware := middleware.SessionMiddleware(registry, cfg)

	summaryController := controllers.NewSummaryController(cfg, font, clock)
	app.Get("/", sessionMiddleware, summaryController.GetSummaryPage)

	api := app.Group("/api", sessionMiddleware)

	// Habit routes
	habitsController := controllers.NewHabitsController(clock)
	api.Get("/habits", habitsController.ListHabits)
	api.Post("/habits", habitsController.AddHabit)

	// Journal routes
	journalController := controllers.NewJournalController(clock)
	api.Get("/journal", journalController.ListEntries)
	api.Post("/journal", journalController.AddEntry)

	// Goal routes
	goalsController := controllers.NewGoalsController(clock)
	api.Get("/goals", goalsController.ListGoals)
	api.Post("/goals", goalsController.AddGoal)
	api.Get("/goals/categories", goalsController.ListCategories)

	// Summary routes
	api.Get("/summary", summaryController.GetSummary)
	api.Get("/summary/image", summaryController.GetSummaryImage)

	// Gift routes
	giftController := controllers.NewGiftController()
	api.Get("/gift", giftController.GetGift)
	api.Post("/gift/open", giftController.OpenGift)
}
