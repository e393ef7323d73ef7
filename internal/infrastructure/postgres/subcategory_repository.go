package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.SubCategoryRepository = (*SubCategoryRepo)(nil)

const subCategoryColumns = `id, category_id, name, image, description, tax_applicability, tax, created_at, updated_at`

// SubCategoryRepo implementación del puerto SubCategoryRepository sobre PostgreSQL.
type SubCategoryRepo struct {
	q Querier
}

// NewSubCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSubCategoryRepository(q Querier) *SubCategoryRepo {
	return &SubCategoryRepo{q: q}
}

// Create inserta la subcategoría y asigna sub.ID.
func (r *SubCategoryRepo) Create(ctx context.Context, sub *entity.SubCategory) error {
	query := `
		INSERT INTO sub_categories (category_id, name, image, description, tax_applicability, tax, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		sub.CategoryID, sub.Name, sub.Image, sub.Description, sub.TaxApplicability,
		nullDecimal(sub.Tax), sub.CreatedAt, sub.UpdatedAt,
	).Scan(&sub.ID)
	if err != nil {
		return subCategoryWriteError("insert", err)
	}
	return nil
}

// Update reescribe todos los campos mutables, incluida la categoría.
func (r *SubCategoryRepo) Update(ctx context.Context, sub *entity.SubCategory) error {
	query := `
		UPDATE sub_categories SET category_id = $2, name = $3, image = $4, description = $5, tax_applicability = $6, tax = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		sub.ID, sub.CategoryID, sub.Name, sub.Image, sub.Description, sub.TaxApplicability,
		nullDecimal(sub.Tax), sub.UpdatedAt,
	)
	if err != nil {
		return subCategoryWriteError("update", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func subCategoryWriteError(op string, err error) error {
	switch {
	case isForeignKeyViolation(err):
		return domain.NotFound(catalog.MsgCategoryNotFound)
	case isCheckViolation(err):
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return fmt.Errorf("%s sub_category: %w", op, err)
}

// GetByID obtiene una subcategoría por ID.
func (r *SubCategoryRepo) GetByID(ctx context.Context, id int64) (*entity.SubCategory, error) {
	return r.getOne(ctx, `SELECT `+subCategoryColumns+` FROM sub_categories WHERE id = $1`, id)
}

// GetByName primera coincidencia exacta por nombre (menor id).
func (r *SubCategoryRepo) GetByName(ctx context.Context, name string) (*entity.SubCategory, error) {
	return r.getOne(ctx, `SELECT `+subCategoryColumns+` FROM sub_categories WHERE name = $1 ORDER BY id LIMIT 1`, name)
}

// List todas las subcategorías ordenadas por id.
func (r *SubCategoryRepo) List(ctx context.Context) ([]*entity.SubCategory, error) {
	return r.list(ctx, `SELECT `+subCategoryColumns+` FROM sub_categories ORDER BY id`)
}

// ListByCategory subcategorías de una categoría.
func (r *SubCategoryRepo) ListByCategory(ctx context.Context, categoryID int64) ([]*entity.SubCategory, error) {
	return r.list(ctx, `SELECT `+subCategoryColumns+` FROM sub_categories WHERE category_id = $1 ORDER BY id`, categoryID)
}

func (r *SubCategoryRepo) list(ctx context.Context, query string, args ...any) ([]*entity.SubCategory, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sub_categories: %w", err)
	}
	defer rows.Close()
	list := []*entity.SubCategory{}
	for rows.Next() {
		s, err := scanSubCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sub_category: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *SubCategoryRepo) getOne(ctx context.Context, query string, arg any) (*entity.SubCategory, error) {
	s, err := scanSubCategory(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sub_category: %w", err)
	}
	return s, nil
}

func scanSubCategory(row rowScanner) (*entity.SubCategory, error) {
	var (
		s   entity.SubCategory
		tax decimal.NullDecimal
	)
	if err := row.Scan(&s.ID, &s.CategoryID, &s.Name, &s.Image, &s.Description, &s.TaxApplicability, &tax,
		&s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	s.Tax = decimalPtr(tax)
	return &s, nil
}
