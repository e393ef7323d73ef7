package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
)

// CategoryRequest entrada para crear o actualizar una categoría.
// En actualización solo se aplican los campos presentes en el cuerpo.
type CategoryRequest struct {
	Name             catalog.Field[string]         `json:"name" validate:"omitempty,max=255"`
	Image            catalog.Field[string]         `json:"image" validate:"omitempty,max=2048"`
	Description      catalog.Field[string]         `json:"description" validate:"omitempty,max=2000"`
	TaxApplicability catalog.Field[bool]           `json:"taxApplicability"`
	Tax              catalog.Field[catalog.Number] `json:"tax" swaggertype:"number"`
	TaxType          catalog.Field[string]         `json:"taxType" validate:"omitempty,max=50"`
}

// ToInput convierte la petición a la entrada del motor de reglas.
func (r CategoryRequest) ToInput() catalog.CategoryInput {
	return catalog.CategoryInput{
		Name:             r.Name,
		Image:            r.Image,
		Description:      r.Description,
		TaxApplicability: r.TaxApplicability,
		Tax:              r.Tax,
		TaxType:          r.TaxType,
	}
}

// CategoryResponse salida de una categoría. Los opcionales ausentes se serializan como null.
type CategoryResponse struct {
	ID               int64            `json:"id"`
	Name             string           `json:"name"`
	Image            *string          `json:"image"`
	Description      *string          `json:"description"`
	TaxApplicability bool             `json:"taxApplicability"`
	Tax              *decimal.Decimal `json:"tax" swaggertype:"number"`
	TaxType          *string          `json:"taxType"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// CategoryListResponse lista de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
}
