package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"giftbox/backend/models"
	"giftbox/backend/utils"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// Clock lets tests pin "today".
type Clock func() time.Time

func (c Clock) today() models.Date {
	if c == nil {
		return models.DateOf(time.Now())
	}
	return models.DateOf(c())
}

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

// dateOrDefault parses an optional form date. Empty input selects fallback.
func dateOrDefault(raw string, fallback models.Date) (models.Date, error) {
	if raw == "" {
		return fallback, nil
	}
	return models.ParseDate(raw)
}

func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// paginate writes one page of items using the page and page_size query parameters.
func paginate[T any](c *fiber.Ctx, items []T) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := c.QueryInt("page_size", defaultPageSize)
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	if items == nil {
		items = []T{}
	}
	start, end := utils.PageBounds(len(items), page, pageSize)
	return utils.Paginate(c, items[start:end], int64(len(items)), page, pageSize)
}
