package catalog_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// memLookup resuelve categorías y subcategorías desde mapas en memoria.
type memLookup struct {
	categories    map[int64]*entity.Category
	subCategories map[int64]*entity.SubCategory
}

func newMemLookup() *memLookup {
	return &memLookup{
		categories:    map[int64]*entity.Category{},
		subCategories: map[int64]*entity.SubCategory{},
	}
}

func (m *memLookup) Category(_ context.Context, id int64) (*entity.Category, error) {
	return m.categories[id], nil
}

func (m *memLookup) SubCategory(_ context.Context, id int64) (*entity.SubCategory, error) {
	return m.subCategories[id], nil
}

func (m *memLookup) addCategory(c *entity.Category) *entity.Category {
	m.categories[c.ID] = c
	return c
}

func (m *memLookup) addSubCategory(s *entity.SubCategory) *entity.SubCategory {
	m.subCategories[s.ID] = s
	return s
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func strPtr(s string) *string { return &s }

func idPtr(id int64) *int64 { return &id }
