package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/danilo/sellora-commerce/internal/database"
	"github.com/danilo/sellora-commerce/internal/order/domain"

	apperrors "github.com/danilo/sellora-commerce/internal/errors"
)

// PostgreSQLOrderItemRepository handles item-level persistence for PostgreSQL.
// Aggregate-level writes (create/replace item sets) go through the order
// repository; this one serves the standalone order-item endpoints.
type PostgreSQLOrderItemRepository struct {
	db *sql.DB
}

// NewPostgreSQLOrderItemRepository creates a new PostgreSQLOrderItemRepository
func NewPostgreSQLOrderItemRepository(db *sql.DB) *PostgreSQLOrderItemRepository {
	return &PostgreSQLOrderItemRepository{
		db: db,
	}
}

// Create inserts a single order item
func (r *PostgreSQLOrderItemRepository) Create(ctx context.Context, item *domain.OrderItem) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO order_items (id, order_id, product_id, quantity, subtotal)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := querier.ExecContext(ctx, query,
		item.ID, item.OrderID, item.ProductID, item.Quantity, item.Subtotal,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create order item")
	}
	return nil
}

// GetByID retrieves an order item by ID
func (r *PostgreSQLOrderItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.OrderItem, error) {
	var item domain.OrderItem
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, order_id, product_id, quantity, subtotal FROM order_items WHERE id = $1`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Subtotal,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderItemNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get order item by id")
	}

	return &item, nil
}

// List retrieves order items with offset/limit pagination
func (r *PostgreSQLOrderItemRepository) List(ctx context.Context, offset, limit int) ([]*domain.OrderItem, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, order_id, product_id, quantity, subtotal
			  FROM order_items ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list order items")
	}
	defer rows.Close()

	items := make([]*domain.OrderItem, 0)
	for rows.Next() {
		var item domain.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Subtotal)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan order item row")
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate order item rows")
	}

	return items, nil
}

// ListByOrderID retrieves every item belonging to an order
func (r *PostgreSQLOrderItemRepository) ListByOrderID(
	ctx context.Context,
	orderID uuid.UUID,
) ([]*domain.OrderItem, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, order_id, product_id, quantity, subtotal
			  FROM order_items WHERE order_id = $1 ORDER BY id`

	rows, err := querier.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list order items by order")
	}
	defer rows.Close()

	items := make([]*domain.OrderItem, 0)
	for rows.Next() {
		var item domain.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Subtotal)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan order item row")
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate order item rows")
	}

	return items, nil
}

// Update replaces the item's product, quantity and subtotal.
// The owning order never changes through item-level edits.
func (r *PostgreSQLOrderItemRepository) Update(ctx context.Context, item *domain.OrderItem) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE order_items SET product_id = $1, quantity = $2, subtotal = $3 WHERE id = $4`

	result, err := querier.ExecContext(ctx, query,
		item.ProductID, item.Quantity, item.Subtotal, item.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update order item")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrOrderItemNotFound
	}
	return nil
}

// Delete removes an order item by ID
func (r *PostgreSQLOrderItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM order_items WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete order item")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrOrderItemNotFound
	}
	return nil
}
