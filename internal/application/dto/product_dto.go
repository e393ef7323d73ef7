package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
)

// ProductRequest entrada para crear o actualizar un producto.
// totalAmount no se acepta: siempre se calcula como baseAmount - discount.
type ProductRequest struct {
	Name             catalog.Field[string]         `json:"name" validate:"omitempty,max=255"`
	Image            catalog.Field[string]         `json:"image" validate:"omitempty,max=2048"`
	Description      catalog.Field[string]         `json:"description" validate:"omitempty,max=2000"`
	TaxApplicability catalog.Field[bool]           `json:"taxApplicability"`
	Tax              catalog.Field[catalog.Number] `json:"tax" swaggertype:"number"`
	BaseAmount       catalog.Field[catalog.Number] `json:"baseAmount" swaggertype:"number"`
	Discount         catalog.Field[catalog.Number] `json:"discount" swaggertype:"number"`
	CategoryID       catalog.Field[int64]          `json:"categoryId" swaggertype:"integer"`
	SubCategoryID    catalog.Field[int64]          `json:"subCategoryId" swaggertype:"integer"`
}

func (r ProductRequest) ToInput() catalog.ProductInput {
	return catalog.ProductInput{
		Name:             r.Name,
		Image:            r.Image,
		Description:      r.Description,
		TaxApplicability: r.TaxApplicability,
		Tax:              r.Tax,
		BaseAmount:       r.BaseAmount,
		Discount:         r.Discount,
		CategoryID:       r.CategoryID,
		SubCategoryID:    r.SubCategoryID,
	}
}

// ProductResponse salida de un producto. categoryId siempre es la categoría resuelta.
type ProductResponse struct {
	ID               int64            `json:"id"`
	CategoryID       int64            `json:"categoryId"`
	SubCategoryID    *int64           `json:"subCategoryId"`
	Name             string           `json:"name"`
	Image            *string          `json:"image"`
	Description      *string          `json:"description"`
	TaxApplicability bool             `json:"taxApplicability"`
	Tax              *decimal.Decimal `json:"tax" swaggertype:"number"`
	BaseAmount       decimal.Decimal  `json:"baseAmount" swaggertype:"number"`
	Discount         decimal.Decimal  `json:"discount" swaggertype:"number"`
	TotalAmount      decimal.Decimal  `json:"totalAmount" swaggertype:"number"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}
