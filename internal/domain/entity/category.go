package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category representa una categoría del menú. Su configuración de impuestos
// sirve de valor por defecto para subcategorías y productos.
// Tax es nil cuando TaxApplicability es false.
type Category struct {
	ID               int64
	Name             string
	Image            *string
	Description      *string
	TaxApplicability bool
	Tax              *decimal.Decimal
	TaxType          *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
