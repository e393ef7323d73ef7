package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
)

// SubCategoryRequest entrada para crear o actualizar una subcategoría.
type SubCategoryRequest struct {
	Name             catalog.Field[string]         `json:"name" validate:"omitempty,max=255"`
	Image            catalog.Field[string]         `json:"image" validate:"omitempty,max=2048"`
	Description      catalog.Field[string]         `json:"description" validate:"omitempty,max=2000"`
	TaxApplicability catalog.Field[bool]           `json:"taxApplicability"`
	Tax              catalog.Field[catalog.Number] `json:"tax" swaggertype:"number"`
	CategoryID       catalog.Field[int64]          `json:"categoryId" swaggertype:"integer"`
}

func (r SubCategoryRequest) ToInput() catalog.SubCategoryInput {
	return catalog.SubCategoryInput{
		Name:             r.Name,
		Image:            r.Image,
		Description:      r.Description,
		TaxApplicability: r.TaxApplicability,
		Tax:              r.Tax,
		CategoryID:       r.CategoryID,
	}
}

// SubCategoryResponse salida de una subcategoría.
type SubCategoryResponse struct {
	ID               int64            `json:"id"`
	CategoryID       int64            `json:"categoryId"`
	Name             string           `json:"name"`
	Image            *string          `json:"image"`
	Description      *string          `json:"description"`
	TaxApplicability bool             `json:"taxApplicability"`
	Tax              *decimal.Decimal `json:"tax" swaggertype:"number"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// SubCategoryListResponse lista de subcategorías.
type SubCategoryListResponse struct {
	Items []SubCategoryResponse `json:"items"`
}
