package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// menuLookup: Drinks(1, tax 5) → Hot(10); Food(2, sin tax) → Bread(20).
func menuLookup() *memLookup {
	lk := drinksLookup()
	lk.addSubCategory(&entity.SubCategory{ID: 10, CategoryID: 1, Name: "Hot", TaxApplicability: true, Tax: dec("5")})
	lk.addSubCategory(&entity.SubCategory{ID: 20, CategoryID: 2, Name: "Bread"})
	return lk
}

func num(s string) catalog.Field[catalog.Number] { return catalog.Of(catalog.Number(s)) }

// ──────────────────────────────────────────────────────────────────────────────
// NewProduct
// ──────────────────────────────────────────────────────────────────────────────

func TestNewProduct_CoffeeEnHot(t *testing.T) {
	p, err := catalog.NewProduct(context.Background(), menuLookup(), catalog.ProductInput{
		Name:          catalog.Of("Coffee"),
		BaseAmount:    num("100"),
		Discount:      num("10"),
		SubCategoryID: catalog.Of(int64(10)),
	}, now)
	require.NoError(t, err)

	assert.Equal(t, int64(1), p.CategoryID, "la categoría se deduce de la subcategoría")
	require.NotNil(t, p.SubCategoryID)
	assert.Equal(t, int64(10), *p.SubCategoryID)
	assert.False(t, p.TaxApplicability, "la creación no hereda impuestos")
	assert.Nil(t, p.Tax)
	assert.Equal(t, "90", p.TotalAmount.String())
}

func TestNewProduct_DiscountPorDefectoCero(t *testing.T) {
	p, err := catalog.NewProduct(context.Background(), menuLookup(), catalog.ProductInput{
		Name:       catalog.Of("Toast"),
		BaseAmount: num("12.50"),
		CategoryID: catalog.Of(int64(2)),
	}, now)
	require.NoError(t, err)
	assert.True(t, p.Discount.IsZero())
	assert.True(t, p.TotalAmount.Equal(p.BaseAmount))
	assert.Nil(t, p.SubCategoryID)
}

func TestNewProduct_DiscountIgualAlBase(t *testing.T) {
	p, err := catalog.NewProduct(context.Background(), menuLookup(), catalog.ProductInput{
		Name:       catalog.Of("Free"),
		BaseAmount: num("20"),
		Discount:   num("20"),
		CategoryID: catalog.Of(int64(2)),
	}, now)
	require.NoError(t, err)
	assert.True(t, p.TotalAmount.IsZero())
}

func TestNewProduct_ConTaxExplicito(t *testing.T) {
	p, err := catalog.NewProduct(context.Background(), menuLookup(), catalog.ProductInput{
		Name:             catalog.Of("Latte"),
		BaseAmount:       num("50"),
		CategoryID:       catalog.Of(int64(1)),
		SubCategoryID:    catalog.Of(int64(10)),
		TaxApplicability: catalog.Of(true),
		Tax:              num("19"),
	}, now)
	require.NoError(t, err)
	assert.True(t, p.TaxApplicability)
	assert.Equal(t, "19", p.Tax.String())
}

func TestNewProduct_Errores(t *testing.T) {
	cases := []struct {
		name string
		in   catalog.ProductInput
		kind error
		msg  string
	}{
		{
			"sin nombre",
			catalog.ProductInput{BaseAmount: num("1"), CategoryID: catalog.Of(int64(1))},
			domain.ErrInvalidInput, catalog.MsgNameRequired,
		},
		{
			"sin baseAmount",
			catalog.ProductInput{Name: catalog.Of("X"), CategoryID: catalog.Of(int64(1))},
			domain.ErrInvalidInput, catalog.MsgBaseAmountRequired,
		},
		{
			"baseAmount negativo",
			catalog.ProductInput{Name: catalog.Of("X"), BaseAmount: num("-1"), CategoryID: catalog.Of(int64(1))},
			domain.ErrInvalidInput, catalog.MsgBaseAmountInvalid,
		},
		{
			"baseAmount infinito",
			catalog.ProductInput{Name: catalog.Of("X"), BaseAmount: num("1e400"), CategoryID: catalog.Of(int64(1))},
			domain.ErrInvalidInput, catalog.MsgBaseAmountInvalid,
		},
		{
			"baseAmount con exponente enorme",
			catalog.ProductInput{Name: catalog.Of("X"), BaseAmount: num("1e50000000"), Discount: num("1"), CategoryID: catalog.Of(int64(1))},
			domain.ErrInvalidInput, catalog.MsgBaseAmountInvalid,
		},
		{
			"discount con escala enorme",
			catalog.ProductInput{Name: catalog.Of("X"), BaseAmount: num("10"), Discount: num("1e-50000000"), CategoryID: catalog.Of(int64(1))},
			domain.ErrInvalidInput, catalog.MsgDiscountInvalid,
		},
		{
			"discount inválido",
			catalog.ProductInput{Name: catalog.Of("X"), BaseAmount: num("10"), Discount: num("abc"), CategoryID: catalog.Of(int64(1))},
			domain.ErrInvalidInput, catalog.MsgDiscountInvalid,
		},
		{
			"discount mayor al base",
			catalog.ProductInput{Name: catalog.Of("X"), BaseAmount: num("10"), Discount: num("10.01"), CategoryID: catalog.Of(int64(1))},
			domain.ErrInvalidInput, catalog.MsgDiscountExceedsBase,
		},
		{
			"aplica sin tax",
			catalog.ProductInput{Name: catalog.Of("X"), BaseAmount: num("10"), CategoryID: catalog.Of(int64(1)), TaxApplicability: catalog.Of(true)},
			domain.ErrInvalidInput, catalog.MsgTaxRequired,
		},
		{
			"sin categoría ni subcategoría",
			catalog.ProductInput{Name: catalog.Of("X"), BaseAmount: num("10")},
			domain.ErrInvalidInput, catalog.MsgCategoryOrSubRequired,
		},
		{
			"subcategoría inexistente",
			catalog.ProductInput{Name: catalog.Of("X"), BaseAmount: num("10"), SubCategoryID: catalog.Of(int64(99))},
			domain.ErrNotFound, catalog.MsgSubCategoryNotFound,
		},
		{
			"categoría inexistente",
			catalog.ProductInput{Name: catalog.Of("X"), BaseAmount: num("10"), CategoryID: catalog.Of(int64(99))},
			domain.ErrNotFound, catalog.MsgCategoryNotFound,
		},
		{
			"subcategoría de otra categoría",
			catalog.ProductInput{Name: catalog.Of("X"), BaseAmount: num("10"), CategoryID: catalog.Of(int64(2)), SubCategoryID: catalog.Of(int64(10))},
			domain.ErrInvalidInput, catalog.MsgSubCategoryMismatch,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.NewProduct(context.Background(), menuLookup(), tc.in, now)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.kind))
			assert.Equal(t, tc.msg, err.Error())
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateProduct
// ──────────────────────────────────────────────────────────────────────────────

func storedProduct() *entity.Product {
	return &entity.Product{
		ID:          100,
		CategoryID:  1,
		Name:        "Espresso",
		Image:       strPtr("espresso.png"),
		BaseAmount:  *dec("100"),
		Discount:    *dec("80"),
		TotalAmount: *dec("20"),
	}
}

func TestUpdateProduct_BaseMenorAlDiscountGuardado(t *testing.T) {
	_, err := catalog.UpdateProduct(context.Background(), menuLookup(), storedProduct(), catalog.ProductInput{
		BaseAmount: num("50"),
	}, now)
	require.Error(t, err)
	assert.Equal(t, catalog.MsgDiscountExceedsBase, err.Error())
}

func TestUpdateProduct_RecalculaTotal(t *testing.T) {
	next, err := catalog.UpdateProduct(context.Background(), menuLookup(), storedProduct(), catalog.ProductInput{
		BaseAmount: num("150"),
		Discount:   num("25.5"),
	}, now)
	require.NoError(t, err)
	assert.Equal(t, "124.5", next.TotalAmount.String())
}

func TestUpdateProduct_BaseNullFalla(t *testing.T) {
	_, err := catalog.UpdateProduct(context.Background(), menuLookup(), storedProduct(), catalog.ProductInput{
		BaseAmount: catalog.Null[catalog.Number](),
	}, now)
	require.Error(t, err)
	assert.Equal(t, catalog.MsgBaseAmountRequired, err.Error())
}

func TestUpdateProduct_AsignarSubcategoriaMueveCategoria(t *testing.T) {
	next, err := catalog.UpdateProduct(context.Background(), menuLookup(), storedProduct(), catalog.ProductInput{
		SubCategoryID: catalog.Of(int64(20)),
	}, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.CategoryID)
	assert.Equal(t, int64(20), *next.SubCategoryID)
}

func TestUpdateProduct_CategoriaDistintaASubcategoriaGuardada(t *testing.T) {
	cur := storedProduct()
	cur.SubCategoryID = idPtr(10)
	_, err := catalog.UpdateProduct(context.Background(), menuLookup(), cur, catalog.ProductInput{
		CategoryID: catalog.Of(int64(2)),
	}, now)
	require.Error(t, err)
	assert.Equal(t, catalog.MsgSubCategoryMismatch, err.Error())
}

func TestUpdateProduct_NuevaSubcategoriaConCategoriaDistinta(t *testing.T) {
	cur := storedProduct()
	_, err := catalog.UpdateProduct(context.Background(), menuLookup(), cur, catalog.ProductInput{
		SubCategoryID: catalog.Of(int64(10)),
		CategoryID:    catalog.Of(int64(2)),
	}, now)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(t, catalog.MsgSubCategoryMismatch, err.Error())
	assert.Equal(t, int64(1), cur.CategoryID)
	assert.Nil(t, cur.SubCategoryID)
}

func TestUpdateProduct_DesvincularSubcategoria(t *testing.T) {
	cur := storedProduct()
	cur.SubCategoryID = idPtr(10)
	next, err := catalog.UpdateProduct(context.Background(), menuLookup(), cur, catalog.ProductInput{
		SubCategoryID: catalog.Null[int64](),
		CategoryID:    catalog.Of(int64(2)),
	}, now)
	require.NoError(t, err)
	assert.Nil(t, next.SubCategoryID)
	assert.Equal(t, int64(2), next.CategoryID)
}

func TestUpdateProduct_ActivarTaxHeredaDeCategoria(t *testing.T) {
	next, err := catalog.UpdateProduct(context.Background(), menuLookup(), storedProduct(), catalog.ProductInput{
		TaxApplicability: catalog.Of(true),
	}, now)
	require.NoError(t, err)
	assert.True(t, next.TaxApplicability)
	assert.Equal(t, "5", next.Tax.String())
}

func TestUpdateProduct_ActivarTaxSinFuenteFalla(t *testing.T) {
	cur := storedProduct()
	cur.CategoryID = 2
	_, err := catalog.UpdateProduct(context.Background(), menuLookup(), cur, catalog.ProductInput{
		TaxApplicability: catalog.Of(true),
	}, now)
	require.Error(t, err)
	assert.Equal(t, catalog.MsgTaxRequired, err.Error())
}

func TestUpdateProduct_CategoriaBorrada(t *testing.T) {
	cur := storedProduct()
	cur.CategoryID = 77
	_, err := catalog.UpdateProduct(context.Background(), menuLookup(), cur, catalog.ProductInput{
		Name: catalog.Of("Ristretto"),
	}, now)
	require.Error(t, err)
	assert.Equal(t, catalog.MsgCategoryNotFoundForProduct, err.Error())
}

func TestUpdateProduct_BlancoConservaImagen(t *testing.T) {
	next, err := catalog.UpdateProduct(context.Background(), menuLookup(), storedProduct(), catalog.ProductInput{
		Image: catalog.Of(""),
	}, now)
	require.NoError(t, err)
	assert.Equal(t, "espresso.png", *next.Image)
	assert.Equal(t, now, next.UpdatedAt)
}
