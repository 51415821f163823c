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

// MySQLProductRepository handles product persistence for MySQL
type MySQLProductRepository struct {
	db *sql.DB
}

// NewMySQLProductRepository creates a new MySQLProductRepository
func NewMySQLProductRepository(db *sql.DB) *MySQLProductRepository {
	return &MySQLProductRepository{
		db: db,
	}
}

// Create inserts a new product
func (r *MySQLProductRepository) Create(ctx context.Context, product *domain.Product) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO products (id, name, description, price, image_url, created_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

	// Convert UUID to bytes for MySQL BINARY(16)
	uuidBytes, err := product.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal product id")
	}

	_, err = querier.ExecContext(ctx, query,
		uuidBytes, product.Name, product.Description, product.Price, product.ImageURL,
		product.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create product")
	}
	return nil
}

// GetByID retrieves a product by ID
func (r *MySQLProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	var product domain.Product
	querier := database.GetTx(ctx, r.db)

	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal product id")
	}

	query := `SELECT id, name, description, price, image_url, created_at FROM products WHERE id = ?`

	err = querier.QueryRowContext(ctx, query, uuidBytes).Scan(
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
func (r *MySQLProductRepository) List(ctx context.Context, offset, limit int) ([]*domain.Product, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, description, price, image_url, created_at
			  FROM products ORDER BY created_at LIMIT ? OFFSET ?`

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
func (r *MySQLProductRepository) Update(ctx context.Context, product *domain.Product) error {
	querier := database.GetTx(ctx, r.db)

	uuidBytes, err := product.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal product id")
	}

	query := `UPDATE products SET name = ?, description = ?, price = ?, image_url = ? WHERE id = ?`

	result, err := querier.ExecContext(ctx, query,
		product.Name, product.Description, product.Price, product.ImageURL, uuidBytes,
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
func (r *MySQLProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal product id")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, uuidBytes)
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
