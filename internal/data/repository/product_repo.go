package repository

import (
	"context"
	"fmt"
	"strings"

	"jewelry-store/internal/data/entity"
	"jewelry-store/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ProductFilter holds the optional listing filters. Search matches
// case-insensitively against name OR material; category is exact. Both
// combine with AND when present.
type ProductFilter struct {
	Search   *string
	Category *string
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	FindAll(ctx context.Context, offset, limit int, filter ProductFilter) ([]*entity.Product, error)
	CountAll(ctx context.Context, filter ProductFilter) (int64, error)
	Update(ctx context.Context, product *entity.Product) (*entity.Product, error)
	Delete(ctx context.Context, id int64) error
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

const productColumns = `id, name, category, material, gem_type, color, carat, cut, stock, price, image_url, created_at`

// buildFilter renders the WHERE clause shared by FindAll and CountAll.
// Listing and counting must always use the identical predicate, otherwise
// totalPages desynchronizes from the listed rows.
func buildFilter(filter ProductFilter) (string, []any) {
	var conds []string
	var args []any

	if filter.Search != nil && *filter.Search != "" {
		args = append(args, "%"+*filter.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR material ILIKE $%d)", n, n))
	}

	if filter.Category != nil && *filter.Category != "" {
		args = append(args, *filter.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (name, category, material, gem_type, color, carat, cut, stock, price, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		product.Name,
		product.Category,
		product.Material,
		product.GemType,
		product.Color,
		product.Carat,
		product.Cut,
		product.Stock,
		product.Price,
		product.ImageURL,
	).Scan(&product.ID, &product.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", product.Name),
		)
		return fmt.Errorf("create product %s: %w", product.Name, err)
	}

	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	var product entity.Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Category,
		&product.Material,
		&product.GemType,
		&product.Color,
		&product.Carat,
		&product.Cut,
		&product.Stock,
		&product.Price,
		&product.ImageURL,
		&product.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.Int64("product_id", id),
		)
		return nil, fmt.Errorf("find product by ID %d: %w", id, err)
	}

	return &product, nil
}

func (r *productRepository) FindAll(ctx context.Context, offset, limit int, filter ProductFilter) ([]*entity.Product, error) {
	where, args := buildFilter(filter)

	query := fmt.Sprintf(`SELECT `+productColumns+` FROM products%s ORDER BY id DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find products",
			zap.Error(err),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
			zap.Stringp("search", filter.Search),
			zap.Stringp("category", filter.Category),
		)
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		var product entity.Product
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Category,
			&product.Material,
			&product.GemType,
			&product.Color,
			&product.Carat,
			&product.Cut,
			&product.Stock,
			&product.Price,
			&product.ImageURL,
			&product.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}

func (r *productRepository) CountAll(ctx context.Context, filter ProductFilter) (int64, error) {
	where, args := buildFilter(filter)
	query := `SELECT COUNT(*) FROM products` + where

	var total int64
	err := r.db.QueryRow(ctx, query, args...).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count products",
			zap.Error(err),
			zap.Stringp("search", filter.Search),
			zap.Stringp("category", filter.Category),
		)
		return 0, fmt.Errorf("count products: %w", err)
	}

	return total, nil
}

// Update replaces all mutable attributes by id and returns the updated
// row, or (nil, nil) when no row matches.
func (r *productRepository) Update(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	query := `
		UPDATE products
		SET name = $2, category = $3, material = $4, gem_type = $5, color = $6,
		    carat = $7, cut = $8, stock = $9, price = $10, image_url = $11
		WHERE id = $1
		RETURNING ` + productColumns

	var updated entity.Product
	err := r.db.QueryRow(ctx, query,
		product.ID,
		product.Name,
		product.Category,
		product.Material,
		product.GemType,
		product.Color,
		product.Carat,
		product.Cut,
		product.Stock,
		product.Price,
		product.ImageURL,
	).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Category,
		&updated.Material,
		&updated.GemType,
		&updated.Color,
		&updated.Carat,
		&updated.Cut,
		&updated.Stock,
		&updated.Price,
		&updated.ImageURL,
		&updated.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update product",
			zap.Error(err),
			zap.Int64("product_id", product.ID),
		)
		return nil, fmt.Errorf("update product %d: %w", product.ID, err)
	}

	return &updated, nil
}

// Delete removes by id and succeeds even when the id no longer exists.
func (r *productRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM products WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete product",
			zap.Error(err),
			zap.Int64("product_id", id),
		)
		return fmt.Errorf("delete product %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		r.log.Debug("Delete matched no product", zap.Int64("product_id", id))
		return nil
	}

	r.log.Info("Product deleted", zap.Int64("product_id", id))
	return nil
}
