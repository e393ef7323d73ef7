package catalog

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// CategoryInput bolsa de campos para crear o actualizar una categoría.
type CategoryInput struct {
	Name             Field[string]
	Image            Field[string]
	Description      Field[string]
	TaxApplicability Field[bool]
	Tax              Field[Number]
	TaxType          Field[string]
}

// SubCategoryInput bolsa de campos para crear o actualizar una subcategoría.
type SubCategoryInput struct {
	Name             Field[string]
	Image            Field[string]
	Description      Field[string]
	TaxApplicability Field[bool]
	Tax              Field[Number]
	CategoryID       Field[int64]
}

// ProductInput bolsa de campos para crear o actualizar un producto.
// TotalAmount no es parte de la entrada: siempre se deriva.
type ProductInput struct {
	Name             Field[string]
	Image            Field[string]
	Description      Field[string]
	TaxApplicability Field[bool]
	Tax              Field[Number]
	BaseAmount       Field[Number]
	Discount         Field[Number]
	CategoryID       Field[int64]
	SubCategoryID    Field[int64]
}

// Lookup resuelve las relaciones que el motor valida. Devuelve (nil, nil) si el id no existe.
type Lookup interface {
	Category(ctx context.Context, id int64) (*entity.Category, error)
	SubCategory(ctx context.Context, id int64) (*entity.SubCategory, error)
}
