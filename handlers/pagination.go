package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 50
)

type PaginationParams struct {
	Page  int
	Limit int
}

// ParsePagination reads page and limit from the query string. Absent or
// malformed values fall back to the defaults. Ranges are not validated here;
// the backend defends against out-of-range pagination.
func ParsePagination(c *gin.Context) PaginationParams {
	p := PaginationParams{Page: DefaultPage, Limit: DefaultLimit}

	if pageStr := c.Query("page"); pageStr != "" {
		if v, err := strconv.Atoi(pageStr); err == nil {
			p.Page = v
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if v, err := strconv.Atoi(limitStr); err == nil {
			p.Limit = v
		}
	}

	return p
}
