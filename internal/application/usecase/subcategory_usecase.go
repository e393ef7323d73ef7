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

// SubCategoryUseCase casos de uso de subcategorías.
type SubCategoryUseCase struct {
	repo       repository.SubCategoryRepository
	categories repository.CategoryRepository
}

// NewSubCategoryUseCase construye el caso de uso.
func NewSubCategoryUseCase(repo repository.SubCategoryRepository, categories repository.CategoryRepository) *SubCategoryUseCase {
	return &SubCategoryUseCase{repo: repo, categories: categories}
}

func (uc *SubCategoryUseCase) lookup() repoLookup {
	return repoLookup{categories: uc.categories, subCategories: uc.repo}
}

// Create valida y persiste una subcategoría; hereda el tax de su categoría si no viene.
func (uc *SubCategoryUseCase) Create(ctx context.Context, in dto.SubCategoryRequest) (*dto.SubCategoryResponse, error) {
	sub, err := catalog.NewSubCategory(ctx, uc.lookup(), in.ToInput(), time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("crear subcategoría: %w", err)
	}
	return toSubCategoryResponse(sub), nil
}

// Update aplica una actualización parcial. Devuelve (nil, nil) si la subcategoría no existe.
func (uc *SubCategoryUseCase) Update(ctx context.Context, id int64, in dto.SubCategoryRequest) (*dto.SubCategoryResponse, error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}
	next, err := catalog.UpdateSubCategory(ctx, uc.lookup(), current, in.ToInput(), time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, next); err != nil {
		return nil, fmt.Errorf("actualizar subcategoría: %w", err)
	}
	return toSubCategoryResponse(next), nil
}

// GetByID obtiene una subcategoría por ID.
func (uc *SubCategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.SubCategoryResponse, error) {
	sub, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSubCategoryResponse(sub), nil
}

// Search busca por id o por nombre exacto.
func (uc *SubCategoryUseCase) Search(ctx context.Context, value string) (*dto.SubCategoryResponse, error) {
	if id, ok := searchID(value); ok {
		sub, err := uc.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if sub != nil {
			return toSubCategoryResponse(sub), nil
		}
	}
	sub, err := uc.repo.GetByName(ctx, catalog.CleanText(value))
	if err != nil {
		return nil, err
	}
	return toSubCategoryResponse(sub), nil
}

// List devuelve todas las subcategorías.
func (uc *SubCategoryUseCase) List(ctx context.Context) (*dto.SubCategoryListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toSubCategoryList(list), nil
}

// ListByCategory devuelve las subcategorías de una categoría.
// (nil, nil) si la categoría no existe; lista vacía si existe pero no tiene subcategorías.
func (uc *SubCategoryUseCase) ListByCategory(ctx context.Context, categoryID int64) (*dto.SubCategoryListResponse, error) {
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
	return toSubCategoryList(list), nil
}

func toSubCategoryList(list []*entity.SubCategory) *dto.SubCategoryListResponse {
	items := make([]dto.SubCategoryResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSubCategoryResponse(s))
	}
	return &dto.SubCategoryListResponse{Items: items}
}

func toSubCategoryResponse(s *entity.SubCategory) *dto.SubCategoryResponse {
	if s == nil {
		return nil
	}
	return &dto.SubCategoryResponse{
		ID:               s.ID,
		CategoryID:       s.CategoryID,
		Name:             s.Name,
		Image:            s.Image,
		Description:      s.Description,
		TaxApplicability: s.TaxApplicability,
		Tax:              s.Tax,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}
