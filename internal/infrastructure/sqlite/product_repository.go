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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, category_id, sub_category_id, name, image, description, tax_applicability, tax,
	base_amount, discount, total_amount, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre SQLite.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO products (category_id, sub_category_id, name, image, description, tax_applicability, tax,
			base_amount, discount, total_amount, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		product.CategoryID, product.SubCategoryID, product.Name, product.Image, product.Description,
		product.TaxApplicability, nullDecimal(product.Tax),
		product.BaseAmount.String(), product.Discount.String(), product.TotalAmount.String(),
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return r.writeError(ctx, "insert", product, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	product.ID = id
	return nil
}

func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE products SET category_id = ?, sub_category_id = ?, name = ?, image = ?, description = ?,
			tax_applicability = ?, tax = ?, base_amount = ?, discount = ?, total_amount = ?, updated_at = ?
		WHERE id = ?`,
		product.CategoryID, product.SubCategoryID, product.Name, product.Image, product.Description,
		product.TaxApplicability, nullDecimal(product.Tax),
		product.BaseAmount.String(), product.Discount.String(), product.TotalAmount.String(),
		product.UpdatedAt, product.ID,
	)
	if err != nil {
		return r.writeError(ctx, "update", product, err)
	}
	return requireAffected(res)
}

// writeError traduce el error de escritura. SQLite no dice qué clave foránea falló,
// así que ante una violación se comprueba si la subcategoría sigue existiendo.
func (r *ProductRepo) writeError(ctx context.Context, op string, product *entity.Product, err error) error {
	if isForeignKeyViolation(err) && product.SubCategoryID != nil {
		var exists bool
		qerr := r.q.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM sub_categories WHERE id = ?)`, *product.SubCategoryID).Scan(&exists)
		if qerr == nil && !exists {
			return domain.NotFound(catalog.MsgSubCategoryNotFound)
		}
	}
	return productWriteError(op, err)
}

func productWriteError(op string, err error) error {
	switch {
	case isForeignKeyViolation(err):
		return domain.Invalid(catalog.MsgCategoryNotFoundForProduct)
	case isCheckViolation(err):
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return fmt.Errorf("%s product: %w", op, err)
}

func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`, id)
}

func (r *ProductRepo) GetByName(ctx context.Context, name string) (*entity.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE name = ? ORDER BY id LIMIT 1`, name)
}

func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
}

func (r *ProductRepo) ListByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products WHERE category_id = ? ORDER BY id`, categoryID)
}

func (r *ProductRepo) ListBySubCategory(ctx context.Context, subCategoryID int64) ([]*entity.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products WHERE sub_category_id = ? ORDER BY id`, subCategoryID)
}

func (r *ProductRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	list := []*entity.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *ProductRepo) getOne(ctx context.Context, query string, arg any) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func scanProduct(row rowScanner) (*entity.Product, error) {
	var (
		p   entity.Product
		tax decimal.NullDecimal
	)
	if err := row.Scan(&p.ID, &p.CategoryID, &p.SubCategoryID, &p.Name, &p.Image, &p.Description,
		&p.TaxApplicability, &tax, &p.BaseAmount, &p.Discount, &p.TotalAmount, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Tax = decimalPtr(tax)
	return &p, nil
}
