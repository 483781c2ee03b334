package persistence

import (
	"strings"

	"github.com/marwan-sadiq/deptapp/internal/domain/shared"
	"gorm.io/gorm"
)

// allowedOrderColumns guards against SQL injection through the order clause.
// Only plain column names that appear here may be used for sorting.
var allowedOrderColumns = map[string]bool{
	"created_at":       true,
	"updated_at":       true,
	"name":             true,
	"amount":           true,
	"total_debt":       true,
	"due_date":         true,
	"scheduled_date":   true,
	"date":             true,
	"reputation_score": true,
	"priority":         true,
}

// applyPagination applies page/page-size from the filter
func applyPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	return query
}

// applyOrdering applies a validated order clause, falling back to the default
func applyOrdering(query *gorm.DB, filter shared.Filter, defaultOrder string) *gorm.DB {
	if filter.OrderBy != "" && allowedOrderColumns[filter.OrderBy] {
		dir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			dir = "DESC"
		}
		return query.Order(filter.OrderBy + " " + dir)
	}
	return query.Order(defaultOrder)
}
