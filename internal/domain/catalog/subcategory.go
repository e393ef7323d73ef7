package catalog

import (
	"context"
	"time"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// NewSubCategory valida la entrada, resuelve la categoría padre y hereda de ella
// taxApplicability y tax cuando no vienen en la entrada.
func NewSubCategory(ctx context.Context, lk Lookup, in SubCategoryInput, now time.Time) (*entity.SubCategory, error) {
	name, err := requiredName(in.Name)
	if err != nil {
		return nil, err
	}
	categoryID := refID(in.CategoryID)
	if categoryID == 0 {
		return nil, domain.Invalid(MsgCategoryIDRequired)
	}
	parent, err := requireCategory(ctx, lk, categoryID)
	if err != nil {
		return nil, err
	}

	applicable := resolveFlag(in.TaxApplicability, parent.TaxApplicability)
	explicit, err := explicitTax(in.Tax)
	if err != nil {
		return nil, err
	}
	tax, err := settleTax(applicable, firstTax(explicit, parent.Tax))
	if err != nil {
		return nil, err
	}

	return &entity.SubCategory{
		CategoryID:       parent.ID,
		Name:             name,
		Image:            optionalText(in.Image),
		Description:      optionalText(in.Description),
		TaxApplicability: applicable,
		Tax:              tax,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// UpdateSubCategory fusiona la entrada parcial sobre current. Si viene categoryId se reasigna
// la categoría. Orden de resolución del tax: entrada → valor guardado → tax de la categoría.
func UpdateSubCategory(ctx context.Context, lk Lookup, current *entity.SubCategory, in SubCategoryInput, now time.Time) (*entity.SubCategory, error) {
	next := *current

	if in.CategoryID.Set {
		if in.CategoryID.Null {
			return nil, domain.Invalid(MsgCategoryIDRequired)
		}
		next.CategoryID = in.CategoryID.Value
	}
	parent, err := requireCategory(ctx, lk, next.CategoryID)
	if err != nil {
		return nil, err
	}

	if in.Name.Set {
		name, err := requiredName(in.Name)
		if err != nil {
			return nil, err
		}
		next.Name = name
	}
	next.Image = mergeText(in.Image, current.Image)
	next.Description = mergeText(in.Description, current.Description)

	applicable := resolveFlag(in.TaxApplicability, current.TaxApplicability)
	explicit, err := explicitTax(in.Tax)
	if err != nil {
		return nil, err
	}
	tax, err := settleTax(applicable, firstTax(explicit, current.Tax, parent.Tax))
	if err != nil {
		return nil, err
	}
	next.TaxApplicability = applicable
	next.Tax = tax
	next.UpdatedAt = now
	return &next, nil
}

func requireCategory(ctx context.Context, lk Lookup, id int64) (*entity.Category, error) {
	c, err := lk.Category(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NotFound(MsgCategoryNotFound)
	}
	return c, nil
}

func requireSubCategory(ctx context.Context, lk Lookup, id int64) (*entity.SubCategory, error) {
	s, err := lk.SubCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.NotFound(MsgSubCategoryNotFound)
	}
	return s, nil
}
