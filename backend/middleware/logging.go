package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"giftbox/backend/utils"
)

// LoggingMiddleware возвращает middleware для логирования запросов
func LoggingMiddleware(logger *log.Logger, colors bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		// Передаем управление следующему обработчику
		err := c.Next()

		status := c.Response().StatusCode()
		method := c.Method()

		var statusColor, methodColor, resetColor string
		if colors {
			statusColor, methodColor, resetColor = utils.StatusColor(status), utils.MethodColor(method), "\033[0m"
		}

		logger.Printf("%s %s%s%s %s %s%d%s %v",
			c.IP(),
			methodColor, method, resetColor,
			c.Path(),
			statusColor, status, resetColor,
			time.Since(start),
		)
		if err != nil {
			logger.Printf("request error: %v", err)
		}

		return err
	}
}
