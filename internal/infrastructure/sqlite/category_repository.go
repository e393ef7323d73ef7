package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const categoryColumns = `id, name, image, description, tax_applicability, tax, tax_type, created_at, updated_at`

// CategoryRepo implementación del puerto CategoryRepository sobre SQLite.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO categories (name, image, description, tax_applicability, tax, tax_type, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		category.Name, category.Image, category.Description, category.TaxApplicability,
		nullDecimal(category.Tax), category.TaxType, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return fmt.Errorf("insert category: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	category.ID = id
	return nil
}

func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE categories SET name = ?, image = ?, description = ?, tax_applicability = ?, tax = ?, tax_type = ?, updated_at = ?
		WHERE id = ?`,
		category.Name, category.Image, category.Description, category.TaxApplicability,
		nullDecimal(category.Tax), category.TaxType, category.UpdatedAt, category.ID,
	)
	if err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return fmt.Errorf("update category: %w", err)
	}
	return requireAffected(res)
}

func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	return r.getOne(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = ?`, id)
}

func (r *CategoryRepo) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	return r.getOne(ctx, `SELECT `+categoryColumns+` FROM categories WHERE name = ? ORDER BY id LIMIT 1`, name)
}

func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	list := []*entity.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *CategoryRepo) getOne(ctx context.Context, query string, arg any) (*entity.Category, error) {
	c, err := scanCategory(r.q.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

func scanCategory(row rowScanner) (*entity.Category, error) {
	var (
		c   entity.Category
		tax decimal.NullDecimal
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Image, &c.Description, &c.TaxApplicability, &tax, &c.TaxType,
		&c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.Tax = decimalPtr(tax)
	return &c, nil
}

// requireAffected devuelve domain.ErrNotFound si el UPDATE no tocó ninguna fila.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
