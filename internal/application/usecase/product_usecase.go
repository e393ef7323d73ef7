package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ProductUseCase casos de uso de productos. totalAmount siempre se deriva.
type ProductUseCase struct {
	repo          repository.ProductRepository
	categories    repository.CategoryRepository
	subCategories repository.SubCategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categories repository.CategoryRepository,
	subCategories repository.SubCategoryRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, categories: categories, subCategories: subCategories}
}

func (uc *ProductUseCase) lookup() repoLookup {
	return repoLookup{categories: uc.categories, subCategories: uc.subCategories}
}

// Create valida y persiste un producto nuevo.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	product, err := catalog.NewProduct(ctx, uc.lookup(), in.ToInput(), time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("crear producto: %w", err)
	}
	return toProductResponse(product), nil
}

// Update aplica una actualización parcial. Devuelve (nil, nil) si el producto no existe.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.ProductRequest) (*dto.ProductResponse, error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}
	next, err := catalog.UpdateProduct(ctx, uc.lookup(), current, in.ToInput(), time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, next); err != nil {
		return nil, fmt.Errorf("actualizar producto: %w", err)
	}
	return toProductResponse(next), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Search busca por id o por nombre exacto.
func (uc *ProductUseCase) Search(ctx context.Context, value string) (*dto.ProductResponse, error) {
	if id, ok := searchID(value); ok {
		product, err := uc.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if product != nil {
			return toProductResponse(product), nil
		}
	}
	product, err := uc.repo.GetByName(ctx, catalog.CleanText(value))
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve todos los productos.
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toProductList(list), nil
}

// ListByCategory devuelve los productos de una categoría; (nil, nil) si la categoría no existe.
func (uc *ProductUseCase) ListByCategory(ctx context.Context, categoryID int64) (*dto.ProductListResponse, error) {
	category, err := uc.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	list, err := uc.repo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return toProductList(list), nil
}

// ListBySubCategory devuelve los productos de una subcategoría; (nil, nil) si no existe.
func (uc *ProductUseCase) ListBySubCategory(ctx context.Context, subCategoryID int64) (*dto.ProductListResponse, error) {
	sub, err := uc.subCategories.GetByID(ctx, subCategoryID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, nil
	}
	list, err := uc.repo.ListBySubCategory(ctx, subCategoryID)
	if err != nil {
		return nil, err
	}
	return toProductList(list), nil
}

func toProductList(list []*entity.Product) *dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:               p.ID,
		CategoryID:       p.CategoryID,
		SubCategoryID:    p.SubCategoryID,
		Name:             p.Name,
		Image:            p.Image,
		Description:      p.Description,
		TaxApplicability: p.TaxApplicability,
		Tax:              p.Tax,
		BaseAmount:       p.BaseAmount,
		Discount:         p.Discount,
		TotalAmount:      p.TotalAmount,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
