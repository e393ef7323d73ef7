package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un ítem del menú.
// TotalAmount = BaseAmount - Discount, recalculado en cada escritura.
// SubCategoryID es opcional; si existe, su categoría coincide con CategoryID.
type Product struct {
	ID               int64
	CategoryID       int64
	SubCategoryID    *int64
	Name             string
	Image            *string
	Description      *string
	TaxApplicability bool
	Tax              *decimal.Decimal
	BaseAmount       decimal.Decimal
	Discount         decimal.Decimal
	TotalAmount      decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
