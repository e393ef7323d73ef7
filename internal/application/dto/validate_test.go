package dto_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
)

func TestValidate_CamposAusentesPasan(t *testing.T) {
	assert.NoError(t, dto.Validate(dto.ProductRequest{}))
	assert.NoError(t, dto.Validate(dto.CategoryRequest{Name: catalog.Null[string]()}))
}

func TestValidate_NombreDemasiadoLargo(t *testing.T) {
	err := dto.Validate(dto.CategoryRequest{Name: catalog.Of(strings.Repeat("a", 256))})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(t, "name must be at most 255 characters", err.Error())
}

func TestValidate_SearchEnBlanco(t *testing.T) {
	err := dto.Validate(dto.SearchQuery{Value: "   "})
	require.Error(t, err)
	assert.Equal(t, "value must not be blank", err.Error())

	err = dto.Validate(dto.SearchQuery{})
	require.Error(t, err)
	assert.Equal(t, "value is required", err.Error())

	assert.NoError(t, dto.Validate(dto.SearchQuery{Value: "Drinks"}))
}

func TestProductResponse_NullsYNumeros(t *testing.T) {
	tax := decimal.RequireFromString("5")
	raw, err := json.Marshal(dto.ProductResponse{
		ID:          1,
		CategoryID:  2,
		Name:        "Coffee",
		Tax:         &tax,
		BaseAmount:  decimal.RequireFromString("100"),
		Discount:    decimal.RequireFromString("10"),
		TotalAmount: decimal.RequireFromString("90"),
	})
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Nil(t, out["subCategoryId"])
	assert.Contains(t, out, "subCategoryId")
	assert.Contains(t, out, "image")
	assert.Equal(t, float64(90), out["totalAmount"])
	assert.Equal(t, float64(5), out["tax"])
}
