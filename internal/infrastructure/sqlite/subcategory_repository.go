package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.SubCategoryRepository = (*SubCategoryRepo)(nil)

const subCategoryColumns = `id, category_id, name, image, description, tax_applicability, tax, created_at, updated_at`

// SubCategoryRepo implementación del puerto SubCategoryRepository sobre SQLite.
type SubCategoryRepo struct {
	q Querier
}

// NewSubCategoryRepository construye el adaptador.
func NewSubCategoryRepository(q Querier) *SubCategoryRepo {
	return &SubCategoryRepo{q: q}
}

func (r *SubCategoryRepo) Create(ctx context.Context, sub *entity.SubCategory) error {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO sub_categories (category_id, name, image, description, tax_applicability, tax, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sub.CategoryID, sub.Name, sub.Image, sub.Description, sub.TaxApplicability,
		nullDecimal(sub.Tax), sub.CreatedAt, sub.UpdatedAt,
	)
	if err != nil {
		return subCategoryWriteError("insert", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert sub_category: %w", err)
	}
	sub.ID = id
	return nil
}

func (r *SubCategoryRepo) Update(ctx context.Context, sub *entity.SubCategory) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE sub_categories SET category_id = ?, name = ?, image = ?, description = ?, tax_applicability = ?, tax = ?, updated_at = ?
		WHERE id = ?`,
		sub.CategoryID, sub.Name, sub.Image, sub.Description, sub.TaxApplicability,
		nullDecimal(sub.Tax), sub.UpdatedAt, sub.ID,
	)
	if err != nil {
		return subCategoryWriteError("update", err)
	}
	return requireAffected(res)
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

func (r *SubCategoryRepo) GetByID(ctx context.Context, id int64) (*entity.SubCategory, error) {
	return r.getOne(ctx, `SELECT `+subCategoryColumns+` FROM sub_categories WHERE id = ?`, id)
}

func (r *SubCategoryRepo) GetByName(ctx context.Context, name string) (*entity.SubCategory, error) {
	return r.getOne(ctx, `SELECT `+subCategoryColumns+` FROM sub_categories WHERE name = ? ORDER BY id LIMIT 1`, name)
}

func (r *SubCategoryRepo) List(ctx context.Context) ([]*entity.SubCategory, error) {
	return r.list(ctx, `SELECT `+subCategoryColumns+` FROM sub_categories ORDER BY id`)
}

func (r *SubCategoryRepo) ListByCategory(ctx context.Context, categoryID int64) ([]*entity.SubCategory, error) {
	return r.list(ctx, `SELECT `+subCategoryColumns+` FROM sub_categories WHERE category_id = ? ORDER BY id`, categoryID)
}

func (r *SubCategoryRepo) list(ctx context.Context, query string, args ...any) ([]*entity.SubCategory, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
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
	s, err := scanSubCategory(r.q.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
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
