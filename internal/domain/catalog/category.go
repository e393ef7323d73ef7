package catalog

import (
	"time"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// NewCategory valida la entrada y construye la categoría a persistir.
// Con taxApplicability en false un tax enviado se descarta sin validarlo.
func NewCategory(in CategoryInput, now time.Time) (*entity.Category, error) {
	name, err := requiredName(in.Name)
	if err != nil {
		return nil, err
	}
	c := &entity.Category{
		Name:        name,
		Image:       optionalText(in.Image),
		Description: optionalText(in.Description),
		TaxType:     optionalText(in.TaxType),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := applyCategoryTax(c, in); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateCategory fusiona la entrada parcial sobre current y devuelve una copia validada.
// current no se modifica.
func UpdateCategory(current *entity.Category, in CategoryInput, now time.Time) (*entity.Category, error) {
	next := *current
	if in.Name.Set {
		name, err := requiredName(in.Name)
		if err != nil {
			return nil, err
		}
		next.Name = name
	}
	next.Image = mergeText(in.Image, current.Image)
	next.Description = mergeText(in.Description, current.Description)
	next.TaxType = mergeText(in.TaxType, current.TaxType)
	if err := applyCategoryTax(&next, in); err != nil {
		return nil, err
	}
	next.UpdatedAt = now
	return &next, nil
}

// applyCategoryTax resuelve el par taxApplicability/tax sobre c (nuevo si vino, si no el actual).
func applyCategoryTax(c *entity.Category, in CategoryInput) error {
	applicable := resolveFlag(in.TaxApplicability, c.TaxApplicability)
	tax := c.Tax
	if applicable {
		explicit, err := explicitTax(in.Tax)
		if err != nil {
			return err
		}
		tax = firstTax(explicit, c.Tax)
	}
	tax, err := settleTax(applicable, tax)
	if err != nil {
		return err
	}
	c.TaxApplicability = applicable
	c.Tax = tax
	return nil
}
