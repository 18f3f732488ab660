package persistence

import (
	"strings"

	"github.com/finvoice/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// allowedOrderColumns whitelists columns accepted in ORDER BY to keep user
// input out of raw SQL.
var allowedOrderColumns = map[string]bool{
	"created_at":  true,
	"updated_at":  true,
	"name":        true,
	"email":       true,
	"position":    true,
	"status":      true,
	"type":        true,
	"paid_at":     true,
	"total_price": true,
}

// applyOrdering appends a validated ORDER BY clause from the filter,
// falling back to created_at desc.
func applyOrdering(query *gorm.DB, filter shared.Filter) *gorm.DB {
	column := filter.OrderBy
	if !allowedOrderColumns[column] {
		column = "created_at"
	}
	dir := strings.ToLower(filter.OrderDir)
	if dir != "asc" && dir != "desc" {
		dir = "desc"
	}
	return query.Order(column + " " + dir)
}
