package postgres

import (
	"context"

	"ayra/internal/domain/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sortColumns whitelists the fields a listing may be ordered by.
var sortColumns = map[string]string{
	entity.SortFieldID:        "id",
	entity.SortFieldTitle:     "title",
	entity.SortFieldIntensity: "intensity",
	entity.SortFieldRadius:    "radius",
}

func intensityScope(filter entity.IntensityFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Intensity == "" {
			return db
		}

		return db.Where("intensity = ?", filter.Intensity)
	}
}

// orderScope orders by the requested column; unknown fields fall back to id.
// Non-id sorts get id as a tiebreaker so pages stay stable.
func orderScope(sort entity.Sort) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		column, ok := sortColumns[sort.Field]
		if !ok {
			column = "id"
		}

		db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: sort.Descending})
		if column != "id" {
			db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: sort.Descending})
		}

		return db
	}
}

func paginateScope(pageable entity.Pageable) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(pageable.Offset()).Limit(pageable.Size)
	}
}

// findFilteredPage counts the rows of M that match filter and loads the
// requested slice with preloads applied. The slice query is skipped when
// nothing matches.
func findFilteredPage[M any](ctx context.Context, db *gorm.DB, filter entity.IntensityFilter, pageable entity.Pageable, preloads ...string) ([]*M, int64, error) {
	var total int64
	if err := db.WithContext(ctx).Model(new(M)).Scopes(intensityScope(filter)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	rows := make([]*M, 0)
	if total == 0 || pastLastPage(pageable, total) {
		return rows, total, nil
	}

	query := db.WithContext(ctx).Scopes(intensityScope(filter), orderScope(pageable.Sort), paginateScope(pageable))
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

// pastLastPage reports whether pageable starts after the last of total rows.
// It compares page numbers so a huge page cannot wrap the offset.
func pastLastPage(pageable entity.Pageable, total int64) bool {
	if pageable.Size <= 0 {
		return false
	}
	pages := (total + int64(pageable.Size) - 1) / int64(pageable.Size)

	return int64(pageable.Page) >= pages
}
