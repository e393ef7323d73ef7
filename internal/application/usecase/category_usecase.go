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

// CategoryUseCase casos de uso de categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create valida y persiste una categoría nueva.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	category, err := catalog.NewCategory(in.ToInput(), time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("crear categoría: %w", err)
	}
	return toCategoryResponse(category), nil
}

// Update aplica una actualización parcial. Devuelve (nil, nil) si la categoría no existe.
func (uc *CategoryUseCase) Update(ctx context.Context, id int64, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}
	next, err := catalog.UpdateCategory(current, in.ToInput(), time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, next); err != nil {
		return nil, fmt.Errorf("actualizar categoría: %w", err)
	}
	return toCategoryResponse(next), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Search busca por id si value es numérico y, si no hay coincidencia, por nombre exacto.
func (uc *CategoryUseCase) Search(ctx context.Context, value string) (*dto.CategoryResponse, error) {
	if id, ok := searchID(value); ok {
		category, err := uc.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if category != nil {
			return toCategoryResponse(category), nil
		}
	}
	category, err := uc.repo.GetByName(ctx, catalog.CleanText(value))
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List devuelve todas las categorías.
func (uc *CategoryUseCase) List(ctx context.Context) (*dto.CategoryListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{Items: items}, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:               c.ID,
		Name:             c.Name,
		Image:            c.Image,
		Description:      c.Description,
		TaxApplicability: c.TaxApplicability,
		Tax:              c.Tax,
		TaxType:          c.TaxType,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}
