package persistent

import (
	"time"

	"traders-bloc/internal/entity"

	"gorm.io/gorm"
)

func sortDirection(order entity.SortOrder) string {
	if order == entity.SortAsc {
		return "ASC"
	}
	return "DESC"
}

// applyDueDateFilters narrows column by either the preset window or the
// explicit range. The preset wins when both are set.
func applyDueDateFilters(query *gorm.DB, column string, rng *entity.DateRange, preset entity.DueDatePreset) *gorm.DB {
	if preset != "" && preset != entity.DueDateAll {
		from, to := preset.Window(time.Now())
		if from != nil {
			query = query.Where(column+" >= ?", *from)
		}
		if to != nil {
			query = query.Where(column+" < ?", *to)
		}
		return query
	}
	return applyDateRange(query, column, rng)
}

func applyDateRange(query *gorm.DB, column string, rng *entity.DateRange) *gorm.DB {
	if rng == nil {
		return query
	}
	if rng.From != nil {
		query = query.Where(column+" >= ?", *rng.From)
	}
	if rng.To != nil {
		query = query.Where(column+" <= ?", *rng.To)
	}
	return query
}

func applyAmountRange(query *gorm.DB, column string, rng *entity.AmountRange) *gorm.DB {
	if rng == nil {
		return query
	}
	if rng.Min != nil {
		query = query.Where(column+" >= ?", *rng.Min)
	}
	if rng.Max != nil {
		query = query.Where(column+" <= ?", *rng.Max)
	}
	return query
}
