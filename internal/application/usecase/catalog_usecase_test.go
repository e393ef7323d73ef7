package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
)

type fixture struct {
	store      *memStore
	categories *usecase.CategoryUseCase
	subs       *usecase.SubCategoryUseCase
	products   *usecase.ProductUseCase
	menu       *usecase.MenuUseCase
	pdf        *fakeMenuPDF
}

func newFixture() *fixture {
	st := newMemStore()
	cats, subs, prods := memCategories{st}, memSubCategories{st}, memProducts{st}
	pdf := &fakeMenuPDF{}
	return &fixture{
		store:      st,
		categories: usecase.NewCategoryUseCase(cats),
		subs:       usecase.NewSubCategoryUseCase(subs, cats),
		products:   usecase.NewProductUseCase(prods, cats, subs),
		menu:       usecase.NewMenuUseCase(cats, subs, prods, pdf, "Carta"),
		pdf:        pdf,
	}
}

// body decodifica JSON en la petición, igual que lo hace el handler.
func body[T any](t *testing.T, raw string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario completo Drinks → Hot → Coffee
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalogo_DrinksHotCoffee(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	drinks, err := f.categories.Create(ctx, body[dto.CategoryRequest](t, `{"name":"Drinks","taxApplicability":true,"tax":5}`))
	require.NoError(t, err)
	assert.Equal(t, int64(1), drinks.ID)

	hot, err := f.subs.Create(ctx, body[dto.SubCategoryRequest](t, `{"name":"Hot","categoryId":1}`))
	require.NoError(t, err)
	assert.True(t, hot.TaxApplicability)
	assert.Equal(t, "5", hot.Tax.String())

	coffee, err := f.products.Create(ctx, body[dto.ProductRequest](t,
		`{"name":"Coffee","baseAmount":100,"discount":10,"subCategoryId":2}`))
	require.NoError(t, err)
	assert.Equal(t, drinks.ID, coffee.CategoryID)
	assert.Equal(t, hot.ID, *coffee.SubCategoryID)
	assert.False(t, coffee.TaxApplicability)
	assert.Nil(t, coffee.Tax)
	assert.Equal(t, "90", coffee.TotalAmount.String())

	byCat, err := f.products.ListByCategory(ctx, drinks.ID)
	require.NoError(t, err)
	require.Len(t, byCat.Items, 1)

	bySub, err := f.products.ListBySubCategory(ctx, hot.ID)
	require.NoError(t, err)
	require.Len(t, bySub.Items, 1)
	assert.Equal(t, "Coffee", bySub.Items[0].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Category
// ──────────────────────────────────────────────────────────────────────────────

func TestCategory_CreateInvalidoNoPersiste(t *testing.T) {
	f := newFixture()
	_, err := f.categories.Create(context.Background(), body[dto.CategoryRequest](t, `{"name":"A","taxApplicability":true}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Empty(t, f.store.categories)
}

func TestCategory_UpdateInexistente(t *testing.T) {
	f := newFixture()
	out, err := f.categories.Update(context.Background(), 9, body[dto.CategoryRequest](t, `{"name":"X"}`))
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestCategory_UpdateParcial(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	c, err := f.categories.Create(ctx, body[dto.CategoryRequest](t, `{"name":"Food","image":"food.png"}`))
	require.NoError(t, err)

	out, err := f.categories.Update(ctx, c.ID, body[dto.CategoryRequest](t, `{"description":"Comida","image":" "}`))
	require.NoError(t, err)
	assert.Equal(t, "Food", out.Name)
	assert.Equal(t, "food.png", *out.Image)
	assert.Equal(t, "Comida", *out.Description)

	stored, err := f.categories.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Comida", *stored.Description)
}

func TestCategory_Search(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	_, err := f.categories.Create(ctx, body[dto.CategoryRequest](t, `{"name":"Drinks"}`))
	require.NoError(t, err)
	_, err = f.categories.Create(ctx, body[dto.CategoryRequest](t, `{"name":"2024"}`))
	require.NoError(t, err)

	byID, err := f.categories.Search(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Drinks", byID.Name)

	byName, err := f.categories.Search(ctx, "  Drinks ")
	require.NoError(t, err)
	assert.Equal(t, int64(1), byName.ID)

	// numérico sin id que coincida: cae a búsqueda por nombre
	numeric, err := f.categories.Search(ctx, "2024")
	require.NoError(t, err)
	assert.Equal(t, int64(2), numeric.ID)

	missing, err := f.categories.Search(ctx, "Nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCategory_ErrorDelStoreSePropaga(t *testing.T) {
	f := newFixture()
	f.store.failWrites = true
	_, err := f.categories.Create(context.Background(), body[dto.CategoryRequest](t, `{"name":"A"}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errStore))
	assert.False(t, errors.Is(err, domain.ErrInvalidInput))
}

// ──────────────────────────────────────────────────────────────────────────────
// SubCategory
// ──────────────────────────────────────────────────────────────────────────────

func TestSubCategory_ListByCategory(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	_, err := f.categories.Create(ctx, body[dto.CategoryRequest](t, `{"name":"Drinks"}`))
	require.NoError(t, err)

	empty, err := f.subs.ListByCategory(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, empty, "la categoría existe: lista vacía, no nil")
	assert.Empty(t, empty.Items)

	missing, err := f.subs.ListByCategory(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSubCategory_CategoriaInexistente(t *testing.T) {
	f := newFixture()
	_, err := f.subs.Create(context.Background(), body[dto.SubCategoryRequest](t, `{"name":"Hot","categoryId":7}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, catalog.MsgCategoryNotFound, err.Error())
}

func TestSubCategory_HerenciaEsSnapshot(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	_, err := f.categories.Create(ctx, body[dto.CategoryRequest](t, `{"name":"Drinks","taxApplicability":true,"tax":5}`))
	require.NoError(t, err)
	hot, err := f.subs.Create(ctx, body[dto.SubCategoryRequest](t, `{"name":"Hot","categoryId":1}`))
	require.NoError(t, err)

	_, err = f.categories.Update(ctx, 1, body[dto.CategoryRequest](t, `{"tax":"8"}`))
	require.NoError(t, err)

	again, err := f.subs.GetByID(ctx, hot.ID)
	require.NoError(t, err)
	assert.Equal(t, "5", again.Tax.String())
}

// ──────────────────────────────────────────────────────────────────────────────
// Product
// ──────────────────────────────────────────────────────────────────────────────

func seedMenu(t *testing.T, f *fixture) {
	t.Helper()
	ctx := context.Background()
	_, err := f.categories.Create(ctx, body[dto.CategoryRequest](t, `{"name":"Drinks","taxApplicability":true,"tax":5}`))
	require.NoError(t, err)
	_, err = f.categories.Create(ctx, body[dto.CategoryRequest](t, `{"name":"Food"}`))
	require.NoError(t, err)
	_, err = f.subs.Create(ctx, body[dto.SubCategoryRequest](t, `{"name":"Hot","categoryId":1}`))
	require.NoError(t, err)
}

func TestProduct_UpdateBaseContraDiscountGuardado(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	seedMenu(t, f)
	p, err := f.products.Create(ctx, body[dto.ProductRequest](t, `{"name":"Tea","baseAmount":100,"discount":80,"categoryId":2}`))
	require.NoError(t, err)

	_, err = f.products.Update(ctx, p.ID, body[dto.ProductRequest](t, `{"baseAmount":50}`))
	require.Error(t, err)
	assert.Equal(t, catalog.MsgDiscountExceedsBase, err.Error())

	stored, err := f.products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "100", stored.BaseAmount.String())
}

func TestProduct_Mismatch(t *testing.T) {
	f := newFixture()
	seedMenu(t, f)
	_, err := f.products.Create(context.Background(), body[dto.ProductRequest](t,
		`{"name":"Tea","baseAmount":10,"categoryId":2,"subCategoryId":3}`))
	require.Error(t, err)
	assert.Equal(t, catalog.MsgSubCategoryMismatch, err.Error())
	assert.Empty(t, f.store.products)
}

func TestProduct_UpdateMismatchNoModifica(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	seedMenu(t, f)
	p, err := f.products.Create(ctx, body[dto.ProductRequest](t, `{"name":"Tea","baseAmount":10,"categoryId":2}`))
	require.NoError(t, err)

	_, err = f.products.Update(ctx, p.ID, body[dto.ProductRequest](t, `{"subCategoryId":3,"categoryId":2}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(t, catalog.MsgSubCategoryMismatch, err.Error())

	stored, err := f.products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, int64(2), stored.CategoryID)
	assert.Nil(t, stored.SubCategoryID)
	assert.Equal(t, p.UpdatedAt, stored.UpdatedAt)
}

func TestProduct_UpdateHeredaTaxDeCategoria(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	seedMenu(t, f)
	p, err := f.products.Create(ctx, body[dto.ProductRequest](t, `{"name":"Latte","baseAmount":"12.5","categoryId":1}`))
	require.NoError(t, err)

	out, err := f.products.Update(ctx, p.ID, body[dto.ProductRequest](t, `{"taxApplicability":true,"discount":"2.5"}`))
	require.NoError(t, err)
	assert.True(t, out.TaxApplicability)
	assert.Equal(t, "5", out.Tax.String())
	assert.Equal(t, "10", out.TotalAmount.String())
}

func TestProduct_ListBySubCategoryInexistente(t *testing.T) {
	f := newFixture()
	out, err := f.products.ListBySubCategory(context.Background(), 5)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProduct_SearchPorNombre(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	seedMenu(t, f)
	_, err := f.products.Create(ctx, body[dto.ProductRequest](t, `{"name":"Café","baseAmount":3,"categoryId":1}`))
	require.NoError(t, err)

	out, err := f.products.Search(ctx, "Café")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Café", out.Name)
}
