package dto

import "github.com/shopspring/decimal"

func init() {
	// montos e impuestos como números JSON, no como strings
	decimal.MarshalJSONWithoutQuotes = true
}

// SearchQuery parámetro de búsqueda por id o nombre exacto.
type SearchQuery struct {
	Value string `query:"value" validate:"required,notblank,max=255"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse respuesta de /health.
type HealthResponse struct {
	Status string `json:"status"`
	App    string `json:"app"`
	DB     string `json:"db"`
}
