// internal/utils/pagination.go
package utils

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PaginationParams struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

// GetPaginationParams reads page/limit from the query string. The limit is
// not clamped here: values over the hard cap are rejected by the service
// with a validation error rather than silently adjusted.
func GetPaginationParams(c *gin.Context) PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	return PaginationParams{Page: page, Limit: limit}
}

func ApplyPagination(db *gorm.DB, params PaginationParams) *gorm.DB {
	offset := (params.Page - 1) * params.Limit
	return db.Offset(offset).Limit(params.Limit)
}

func NewPagination(total int64, params PaginationParams) Pagination {
	return Pagination{
		Total: total,
		Page:  params.Page,
		Limit: params.Limit,
		Pages: int(math.Ceil(float64(total) / float64(params.Limit))),
	}
}
