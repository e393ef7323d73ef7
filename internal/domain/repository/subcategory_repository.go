package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// SubCategoryRepository define el puerto de persistencia para SubCategory (DIP).
type SubCategoryRepository interface {
	Create(ctx context.Context, sub *entity.SubCategory) error
	Update(ctx context.Context, sub *entity.SubCategory) error
	GetByID(ctx context.Context, id int64) (*entity.SubCategory, error)
	GetByName(ctx context.Context, name string) (*entity.SubCategory, error)
	List(ctx context.Context) ([]*entity.SubCategory, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]*entity.SubCategory, error)
}
