// Package repository provides data persistence implementations for products.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/danilo/sellora-commerce/internal/database"
	"github.com/danilo/sellora-commerce/internal/product/domain"

	apperrors "github.com/danilo/sellora-commerce/internal/errors"
)

// PostgreSQLProductRepository handles product persistence for PostgreSQL
type PostgreSQLProductRepository struct {
	db *sql.DB
}

// NewPostgreSQLProductRepository creates a new PostgreSQLProductRepository
func NewPostgreSQLProductRepository(db *sql.DB) *PostgreSQLProductRepository {
	return &PostgreSQLProductRepository{
		db: db,
	}
}

// Create inserts a new product
func (r *PostgreSQLProductRepository) Create(ctx context.Context, product *domain.Product) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO products (id, name, description, price, image_url, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := querier.ExecContext(ctx, query,
		product.ID, product.Name, product.Description, product.Price, product.ImageURL,
		product.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create product")
	}
	return nil
}

// GetByID retrieves a product by ID
func (r *PostgreSQLProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	var product domain.Product
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, description, price, image_url, created_at FROM products WHERE id = $1`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&product.ID, &product.Name, &product.Description, &product.Price,
		&product.ImageURL, &product.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get product by id")
	}

	return &product, nil
}

// List retrieves products ordered by creation time with offset/limit pagination
func (r *PostgreSQLProductRepository) List(ctx context.Context, offset, limit int) ([]*domain.Product, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, description, price, image_url, created_at
			  FROM products ORDER BY created_at LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list products")
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		var product domain.Product
		err := rows.Scan(
			&product.ID, &product.Name, &product.Description, &product.Price,
			&product.ImageURL, &product.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan product row")
		}
		products = append(products, &product)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate product rows")
	}

	return products, nil
}

// Update replaces all product fields
func (r *PostgreSQLProductRepository) Update(ctx context.Context, product *domain.Product) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE products SET name = $1, description = $2, price = $3, image_url = $4 WHERE id = $5`

	result, err := querier.ExecContext(ctx, query,
		product.Name, product.Description, product.Price, product.ImageURL, product.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update product")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// Delete removes a product by ID
func (r *PostgreSQLProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete product")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
