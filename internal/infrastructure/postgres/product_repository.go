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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// Nombres de las claves foráneas de products (ver migración 00001).
const (
	fkProductCategory    = "products_category_fk"
	fkProductSubCategory = "products_sub_category_fk"
)

const productColumns = `id, category_id, sub_category_id, name, image, description, tax_applicability, tax,
	base_amount, discount, total_amount, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y asigna product.ID.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (category_id, sub_category_id, name, image, description, tax_applicability, tax,
			base_amount, discount, total_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		product.CategoryID, product.SubCategoryID, product.Name, product.Image, product.Description,
		product.TaxApplicability, nullDecimal(product.Tax),
		product.BaseAmount, product.Discount, product.TotalAmount, product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		return productWriteError("insert", err)
	}
	return nil
}

// Update actualiza un producto existente. total_amount llega ya recalculado.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products SET category_id = $2, sub_category_id = $3, name = $4, image = $5, description = $6,
			tax_applicability = $7, tax = $8, base_amount = $9, discount = $10, total_amount = $11, updated_at = $12
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		product.ID, product.CategoryID, product.SubCategoryID, product.Name, product.Image, product.Description,
		product.TaxApplicability, nullDecimal(product.Tax),
		product.BaseAmount, product.Discount, product.TotalAmount, product.UpdatedAt,
	)
	if err != nil {
		return productWriteError("update", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func productWriteError(op string, err error) error {
	switch {
	case isForeignKeyViolation(err) && pgConstraint(err) == fkProductSubCategory:
		return domain.NotFound(catalog.MsgSubCategoryNotFound)
	case isForeignKeyViolation(err):
		return domain.Invalid(catalog.MsgCategoryNotFoundForProduct)
	case isCheckViolation(err):
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return fmt.Errorf("%s product: %w", op, err)
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetByName primera coincidencia exacta por nombre (menor id).
func (r *ProductRepo) GetByName(ctx context.Context, name string) (*entity.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE name = $1 ORDER BY id LIMIT 1`, name)
}

// List todos los productos ordenados por id.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
}

// ListByCategory productos cuya categoría efectiva es categoryID.
func (r *ProductRepo) ListByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products WHERE category_id = $1 ORDER BY id`, categoryID)
}

// ListBySubCategory productos de una subcategoría.
func (r *ProductRepo) ListBySubCategory(ctx context.Context, subCategoryID int64) ([]*entity.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products WHERE sub_category_id = $1 ORDER BY id`, subCategoryID)
}

func (r *ProductRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
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
	p, err := scanProduct(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
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
