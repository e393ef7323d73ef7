package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubCategory agrupa productos dentro de una categoría (CategoryID siempre apunta a una categoría existente).
type SubCategory struct {
	ID               int64
	CategoryID       int64
	Name             string
	Image            *string
	Description      *string
	TaxApplicability bool
	Tax              *decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
