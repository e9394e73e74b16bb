package postgres

import (
	"testing"

	"ayra/internal/domain/entity"
	"ayra/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestFilterScopes_BuildSQL(t *testing.T) {
	db, _ := newMockDB(t)

	tests := []struct {
		name     string
		filter   entity.IntensityFilter
		pageable entity.Pageable
		want     string
	}{
		{
			name:     "default order",
			pageable: entity.Pageable{Size: 10, Sort: entity.Sort{Field: entity.SortFieldID, Descending: true}},
			want:     `SELECT * FROM "map_markers" ORDER BY "id" DESC LIMIT 10`,
		},
		{
			name:     "intensity and title",
			filter:   entity.IntensityFilter{Intensity: "medium"},
			pageable: entity.Pageable{Page: 1, Size: 20, Sort: entity.Sort{Field: entity.SortFieldTitle}},
			want:     `SELECT * FROM "map_markers" WHERE intensity = 'medium' ORDER BY "title","id" LIMIT 20 OFFSET 20`,
		},
		{
			name:     "unknown field falls back to id",
			pageable: entity.Pageable{Size: 5, Sort: entity.Sort{Field: "password"}},
			want:     `SELECT * FROM "map_markers" ORDER BY "id" LIMIT 5`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
				var rows []*model.MapMarkerModel

				return tx.Scopes(intensityScope(tt.filter), orderScope(tt.pageable.Sort), paginateScope(tt.pageable)).Find(&rows)
			})
			assert.Equal(t, tt.want, sql)
		})
	}
}
