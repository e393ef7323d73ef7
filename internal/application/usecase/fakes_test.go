package usecase_test

import (
	"context"
	"errors"
	"sort"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

var errStore = errors.New("store caído")

// memStore implementa los tres repositorios en memoria. Los ids se asignan en orden.
type memStore struct {
	nextID        int64
	categories    map[int64]entity.Category
	subCategories map[int64]entity.SubCategory
	products      map[int64]entity.Product
	failWrites    bool
}

func newMemStore() *memStore {
	return &memStore{
		categories:    map[int64]entity.Category{},
		subCategories: map[int64]entity.SubCategory{},
		products:      map[int64]entity.Product{},
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// ── categorías ───────────────────────────────────────────────────────────────

type memCategories struct{ *memStore }

func (r memCategories) Create(_ context.Context, c *entity.Category) error {
	if r.failWrites {
		return errStore
	}
	c.ID = r.id()
	r.categories[c.ID] = *c
	return nil
}

func (r memCategories) Update(_ context.Context, c *entity.Category) error {
	if r.failWrites {
		return errStore
	}
	r.categories[c.ID] = *c
	return nil
}

func (r memCategories) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r memCategories) GetByName(_ context.Context, name string) (*entity.Category, error) {
	for _, id := range sortedKeys(r.categories) {
		if c := r.categories[id]; c.Name == name {
			return &c, nil
		}
	}
	return nil, nil
}

func (r memCategories) List(_ context.Context) ([]*entity.Category, error) {
	out := []*entity.Category{}
	for _, id := range sortedKeys(r.categories) {
		c := r.categories[id]
		out = append(out, &c)
	}
	return out, nil
}

// ── subcategorías ────────────────────────────────────────────────────────────

type memSubCategories struct{ *memStore }

func (r memSubCategories) Create(_ context.Context, s *entity.SubCategory) error {
	if r.failWrites {
		return errStore
	}
	s.ID = r.id()
	r.subCategories[s.ID] = *s
	return nil
}

func (r memSubCategories) Update(_ context.Context, s *entity.SubCategory) error {
	if r.failWrites {
		return errStore
	}
	r.subCategories[s.ID] = *s
	return nil
}

func (r memSubCategories) GetByID(_ context.Context, id int64) (*entity.SubCategory, error) {
	s, ok := r.subCategories[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r memSubCategories) GetByName(_ context.Context, name string) (*entity.SubCategory, error) {
	for _, id := range sortedKeys(r.subCategories) {
		if s := r.subCategories[id]; s.Name == name {
			return &s, nil
		}
	}
	return nil, nil
}

func (r memSubCategories) List(ctx context.Context) ([]*entity.SubCategory, error) {
	return r.filter(func(*entity.SubCategory) bool { return true }), nil
}

func (r memSubCategories) ListByCategory(_ context.Context, categoryID int64) ([]*entity.SubCategory, error) {
	return r.filter(func(s *entity.SubCategory) bool { return s.CategoryID == categoryID }), nil
}

func (r memSubCategories) filter(keep func(*entity.SubCategory) bool) []*entity.SubCategory {
	out := []*entity.SubCategory{}
	for _, id := range sortedKeys(r.subCategories) {
		s := r.subCategories[id]
		if keep(&s) {
			out = append(out, &s)
		}
	}
	return out
}

// ── productos ────────────────────────────────────────────────────────────────

type memProducts struct{ *memStore }

func (r memProducts) Create(_ context.Context, p *entity.Product) error {
	if r.failWrites {
		return errStore
	}
	p.ID = r.id()
	r.products[p.ID] = *p
	return nil
}

func (r memProducts) Update(_ context.Context, p *entity.Product) error {
	if r.failWrites {
		return errStore
	}
	r.products[p.ID] = *p
	return nil
}

func (r memProducts) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r memProducts) GetByName(_ context.Context, name string) (*entity.Product, error) {
	for _, id := range sortedKeys(r.products) {
		if p := r.products[id]; p.Name == name {
			return &p, nil
		}
	}
	return nil, nil
}

func (r memProducts) List(_ context.Context) ([]*entity.Product, error) {
	return r.filter(func(*entity.Product) bool { return true }), nil
}

func (r memProducts) ListByCategory(_ context.Context, categoryID int64) ([]*entity.Product, error) {
	return r.filter(func(p *entity.Product) bool { return p.CategoryID == categoryID }), nil
}

func (r memProducts) ListBySubCategory(_ context.Context, subCategoryID int64) ([]*entity.Product, error) {
	return r.filter(func(p *entity.Product) bool {
		return p.SubCategoryID != nil && *p.SubCategoryID == subCategoryID
	}), nil
}

func (r memProducts) filter(keep func(*entity.Product) bool) []*entity.Product {
	out := []*entity.Product{}
	for _, id := range sortedKeys(r.products) {
		p := r.products[id]
		if keep(&p) {
			out = append(out, &p)
		}
	}
	return out
}
