package utils

import (
	"github.com/gofiber/fiber/v2"
)

// Pagination holds normalized page parameters extracted from a request.
type Pagination struct {
	Page   int
	Limit  int
	Offset int
}

// ParsePagination reads page/limit query parameters with sane bounds.
func ParsePagination(c *fiber.Ctx) Pagination {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	limit := c.QueryInt("limit", 100)
	if limit < 1 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}

	return Pagination{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}
