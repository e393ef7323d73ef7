package catalog

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// NewProduct valida la entrada y construye el producto a persistir.
//
// A diferencia de SubCategory y de UpdateProduct, la creación no hereda impuestos de la
// categoría: taxApplicability y tax se toman solo de la entrada.
func NewProduct(ctx context.Context, lk Lookup, in ProductInput, now time.Time) (*entity.Product, error) {
	name, err := requiredName(in.Name)
	if err != nil {
		return nil, err
	}
	if !in.BaseAmount.Present() {
		return nil, domain.Invalid(MsgBaseAmountRequired)
	}
	base, ok := parseNonNegative(in.BaseAmount.Value)
	if !ok {
		return nil, domain.Invalid(MsgBaseAmountInvalid)
	}
	discount := decimal.Zero
	if in.Discount.Present() {
		if discount, ok = parseNonNegative(in.Discount.Value); !ok {
			return nil, domain.Invalid(MsgDiscountInvalid)
		}
	}
	if discount.GreaterThan(base) {
		return nil, domain.Invalid(MsgDiscountExceedsBase)
	}

	applicable := resolveFlag(in.TaxApplicability, false)
	var tax *decimal.Decimal
	if applicable {
		if tax, err = explicitTax(in.Tax); err != nil {
			return nil, err
		}
	}
	if tax, err = settleTax(applicable, tax); err != nil {
		return nil, err
	}

	categoryID, subCategoryID := refID(in.CategoryID), refID(in.SubCategoryID)
	if categoryID == 0 && subCategoryID == 0 {
		return nil, domain.Invalid(MsgCategoryOrSubRequired)
	}

	var (
		workingID int64
		subRef    *int64
	)
	if subCategoryID != 0 {
		sub, err := requireSubCategory(ctx, lk, subCategoryID)
		if err != nil {
			return nil, err
		}
		workingID = sub.CategoryID
		subRef = &sub.ID
	}
	if categoryID != 0 {
		cat, err := requireCategory(ctx, lk, categoryID)
		if err != nil {
			return nil, err
		}
		if workingID != 0 && cat.ID != workingID {
			return nil, domain.Invalid(MsgSubCategoryMismatch)
		}
		workingID = cat.ID
	}
	if workingID == 0 {
		return nil, domain.Invalid(MsgCategoryNotFoundForProduct)
	}

	return &entity.Product{
		CategoryID:       workingID,
		SubCategoryID:    subRef,
		Name:             name,
		Image:            optionalText(in.Image),
		Description:      optionalText(in.Description),
		TaxApplicability: applicable,
		Tax:              tax,
		BaseAmount:       base,
		Discount:         discount,
		TotalAmount:      base.Sub(discount),
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// UpdateProduct fusiona la entrada parcial sobre current.
//
// Primero se reconcilian las relaciones (subcategoría, luego categoría); después los campos.
// La validación discount <= baseAmount usa el par fusionado, y el tax se vuelve a resolver
// contra la categoría efectiva en cada actualización: entrada → valor guardado → tax de la categoría.
func UpdateProduct(ctx context.Context, lk Lookup, current *entity.Product, in ProductInput, now time.Time) (*entity.Product, error) {
	next := *current

	category, sub, err := reconcileProductLinks(ctx, lk, current, in)
	if err != nil {
		return nil, err
	}
	next.CategoryID = category.ID
	next.SubCategoryID = nil
	if sub != nil {
		id := sub.ID
		next.SubCategoryID = &id
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

	if in.BaseAmount.Set {
		if in.BaseAmount.Null {
			return nil, domain.Invalid(MsgBaseAmountRequired)
		}
		base, ok := parseNonNegative(in.BaseAmount.Value)
		if !ok {
			return nil, domain.Invalid(MsgBaseAmountInvalid)
		}
		next.BaseAmount = base
	}
	if in.Discount.Present() {
		discount, ok := parseNonNegative(in.Discount.Value)
		if !ok {
			return nil, domain.Invalid(MsgDiscountInvalid)
		}
		next.Discount = discount
	}
	if next.Discount.GreaterThan(next.BaseAmount) {
		return nil, domain.Invalid(MsgDiscountExceedsBase)
	}

	applicable := resolveFlag(in.TaxApplicability, current.TaxApplicability)
	explicit, err := explicitTax(in.Tax)
	if err != nil {
		return nil, err
	}
	tax, err := settleTax(applicable, firstTax(explicit, current.Tax, category.Tax))
	if err != nil {
		return nil, err
	}
	next.TaxApplicability = applicable
	next.Tax = tax
	next.TotalAmount = next.BaseAmount.Sub(next.Discount)
	next.UpdatedAt = now
	return &next, nil
}

// reconcileProductLinks devuelve la categoría efectiva y la subcategoría adjunta (nil si no hay).
func reconcileProductLinks(ctx context.Context, lk Lookup, current *entity.Product, in ProductInput) (*entity.Category, *entity.SubCategory, error) {
	workingID := current.CategoryID
	var sub *entity.SubCategory

	switch {
	case in.SubCategoryID.Null:
		// desvincular: la categoría no cambia
	case in.SubCategoryID.Set:
		s, err := requireSubCategory(ctx, lk, in.SubCategoryID.Value)
		if err != nil {
			return nil, nil, err
		}
		sub = s
		workingID = s.CategoryID
	case current.SubCategoryID != nil:
		s, err := requireSubCategory(ctx, lk, *current.SubCategoryID)
		if err != nil {
			return nil, nil, err
		}
		sub = s
	}

	var category *entity.Category
	if in.CategoryID.Present() && in.CategoryID.Value != workingID {
		c, err := requireCategory(ctx, lk, in.CategoryID.Value)
		if err != nil {
			return nil, nil, err
		}
		if sub != nil && sub.CategoryID != c.ID {
			return nil, nil, domain.Invalid(MsgSubCategoryMismatch)
		}
		category = c
	}
	if category == nil && workingID != 0 {
		c, err := lk.Category(ctx, workingID)
		if err != nil {
			return nil, nil, err
		}
		category = c
	}
	if category == nil {
		return nil, nil, domain.Invalid(MsgCategoryNotFoundForProduct)
	}
	return category, sub, nil
}
