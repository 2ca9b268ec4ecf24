package persistence

import (
	"fmt"
	"strings"

	"github.com/sparepos/backend/internal/domain/shared"
	"gorm.io/gorm"
)

const defaultPageSize = 50

// applyFilter applies pagination, date range and ordering to a query. Search
// is column-specific and handled by each repository.
func applyFilter(query *gorm.DB, filter shared.Filter, dateColumn string) *gorm.DB {
	if filter.DateFrom != nil {
		query = query.Where(dateColumn+" >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where(dateColumn+" < ?", *filter.DateTo)
	}

	if filter.OrderBy != "" && isSafeColumn(filter.OrderBy) {
		dir := "ASC"
		if strings.EqualFold(filter.OrderDir, "desc") {
			dir = "DESC"
		}
		query = query.Order(fmt.Sprintf("%s %s", filter.OrderBy, dir))
	} else {
		query = query.Order(dateColumn + " DESC")
	}

	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	return query.Offset((page - 1) * pageSize).Limit(pageSize)
}

// isSafeColumn guards Order against injection through the order_by parameter
func isSafeColumn(col string) bool {
	for _, r := range col {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_') {
			return false
		}
	}
	return col != ""
}
