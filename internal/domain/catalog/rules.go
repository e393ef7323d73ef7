package catalog

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/catalogo-api/internal/domain"
)

// Mensajes expuestos al cliente.
const (
	MsgNameRequired               = "Name is required"
	MsgTaxInvalid                 = "Tax must be a non-negative number"
	MsgTaxRequired                = "Tax is required when taxApplicability is true"
	MsgCategoryIDRequired         = "categoryId is required"
	MsgCategoryNotFound           = "Category not found"
	MsgSubCategoryNotFound        = "Sub-category not found"
	MsgBaseAmountRequired         = "Base amount is required"
	MsgBaseAmountInvalid          = "Base amount must be a non-negative number"
	MsgDiscountInvalid            = "Discount must be a non-negative number"
	MsgDiscountExceedsBase        = "Discount cannot be greater than base amount"
	MsgCategoryOrSubRequired      = "Either categoryId or subCategoryId is required"
	MsgSubCategoryMismatch        = "Sub-category does not belong to the provided category"
	MsgCategoryNotFoundForProduct = "Category not found for product"
)

// CleanText recorta espacios y normaliza a NFC para que las búsquedas exactas por nombre
// no dependan de la forma de composición de los acentos.
func CleanText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func requiredName(f Field[string]) (string, error) {
	if !f.Present() {
		return "", domain.Invalid(MsgNameRequired)
	}
	name := CleanText(f.Value)
	if name == "" {
		return "", domain.Invalid(MsgNameRequired)
	}
	return name, nil
}

// optionalText devuelve nil si el campo no vino, vino null o quedó vacío tras el recorte.
func optionalText(f Field[string]) *string {
	if !f.Present() {
		return nil
	}
	s := CleanText(f.Value)
	if s == "" {
		return nil
	}
	return &s
}

// mergeText: un valor en blanco conserva el anterior en lugar de borrarlo.
func mergeText(f Field[string], old *string) *string {
	if s := optionalText(f); s != nil {
		return s
	}
	return old
}

// parseNonNegative convierte el texto recibido a decimal; false si no es numérico o es negativo.
func parseNonNegative(n Number) (decimal.Decimal, bool) {
	s := strings.TrimSpace(string(n))
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() || !finite(d) {
		return decimal.Zero, false
	}
	return d, true
}

// Límites de un float64: por encima de maxFloat el valor sería Infinity y con más de
// maxScale decimales se pierde en el redondeo.
const maxScale = 308

var maxFloat = decimal.NewFromFloat(math.MaxFloat64)

// finite rechaza valores fuera del rango finito de float64 sin reescalar el coeficiente.
func finite(d decimal.Decimal) bool {
	exp := int64(d.Exponent())
	if exp < -maxScale {
		return false
	}
	// dígitos enteros estimados a partir del coeficiente (BitLen es O(1))
	digits := int64(float64(d.Coefficient().BitLen())*math.Log10(2)) + 1
	magnitude := digits + exp
	switch {
	case magnitude <= maxScale:
		return true
	case magnitude > maxScale+2:
		return false
	}
	return !d.GreaterThan(maxFloat)
}

// explicitTax valida el tax enviado por el cliente. nil si no vino.
func explicitTax(f Field[Number]) (*decimal.Decimal, error) {
	if !f.Present() {
		return nil, nil
	}
	d, ok := parseNonNegative(f.Value)
	if !ok {
		return nil, domain.Invalid(MsgTaxInvalid)
	}
	return &d, nil
}

func firstTax(candidates ...*decimal.Decimal) *decimal.Decimal {
	for _, c := range candidates {
		if c != nil {
			return c
		}
	}
	return nil
}

// settleTax aplica taxApplicability ⇔ tax definido: sin aplicabilidad el tax se descarta.
func settleTax(applicable bool, tax *decimal.Decimal) (*decimal.Decimal, error) {
	if !applicable {
		return nil, nil
	}
	if tax == nil {
		return nil, domain.Invalid(MsgTaxRequired)
	}
	return tax, nil
}

func resolveFlag(f Field[bool], fallback bool) bool {
	if f.Present() {
		return f.Value
	}
	return fallback
}

// refID devuelve el id referenciado o 0 si no vino, vino null o no es positivo.
func refID(f Field[int64]) int64 {
	if !f.Present() || f.Value <= 0 {
		return 0
	}
	return f.Value
}
