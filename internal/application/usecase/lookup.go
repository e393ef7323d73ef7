package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// repoLookup resuelve las relaciones del motor de reglas contra los repositorios.
type repoLookup struct {
	categories    repository.CategoryRepository
	subCategories repository.SubCategoryRepository
}

var _ catalog.Lookup = repoLookup{}

func (l repoLookup) Category(ctx context.Context, id int64) (*entity.Category, error) {
	if id <= 0 {
		return nil, nil
	}
	return l.categories.GetByID(ctx, id)
}

func (l repoLookup) SubCategory(ctx context.Context, id int64) (*entity.SubCategory, error) {
	if id <= 0 {
		return nil, nil
	}
	return l.subCategories.GetByID(ctx, id)
}

// searchID interpreta value como id si es un entero positivo.
func searchID(value string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
