// Package repository provides data persistence implementations for the order
// aggregate. Order writes are expected to run inside a TxManager transaction
// so that the order row and its items stay consistent.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/danilo/sellora-commerce/internal/database"
	"github.com/danilo/sellora-commerce/internal/order/domain"

	apperrors "github.com/danilo/sellora-commerce/internal/errors"
)

// PostgreSQLOrderRepository handles order persistence for PostgreSQL
type PostgreSQLOrderRepository struct {
	db *sql.DB
}

// NewPostgreSQLOrderRepository creates a new PostgreSQLOrderRepository
func NewPostgreSQLOrderRepository(db *sql.DB) *PostgreSQLOrderRepository {
	return &PostgreSQLOrderRepository{
		db: db,
	}
}

// Create inserts the order row and all of its items
func (r *PostgreSQLOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO orders (id, user_id, total_amount, status, order_date)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := querier.ExecContext(ctx, query,
		order.ID, order.UserID, order.TotalAmount, order.Status, order.OrderDate,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create order")
	}

	return r.insertItems(ctx, querier, order.Items)
}

// GetByID retrieves an order with its items
func (r *PostgreSQLOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	var order domain.Order
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, total_amount, status, order_date FROM orders WHERE id = $1`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&order.ID, &order.UserID, &order.TotalAmount, &order.Status, &order.OrderDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get order by id")
	}

	items, err := r.loadItems(ctx, querier, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return &order, nil
}

// List retrieves orders with their items, ordered by order date
func (r *PostgreSQLOrderRepository) List(ctx context.Context, offset, limit int) ([]*domain.Order, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, total_amount, status, order_date
			  FROM orders ORDER BY order_date LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list orders")
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(
			&order.ID, &order.UserID, &order.TotalAmount, &order.Status, &order.OrderDate,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan order row")
		}
		orders = append(orders, &order)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate order rows")
	}

	for _, order := range orders {
		items, err := r.loadItems(ctx, querier, order.ID)
		if err != nil {
			return nil, err
		}
		order.Items = items
	}

	return orders, nil
}

// Update replaces the order row and performs a full item replacement:
// existing item rows are deleted and the incoming list is inserted.
func (r *PostgreSQLOrderRepository) Update(ctx context.Context, order *domain.Order) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE orders SET user_id = $1, total_amount = $2, status = $3 WHERE id = $4`

	result, err := querier.ExecContext(ctx, query,
		order.UserID, order.TotalAmount, order.Status, order.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update order")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrOrderNotFound
	}

	// Orphan removal: items absent from the incoming list must not survive
	if _, err := querier.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = $1`, order.ID); err != nil {
		return apperrors.Wrap(err, "failed to delete order items")
	}

	return r.insertItems(ctx, querier, order.Items)
}

// UpdateTotalAmount rewrites only the derived total, used after item-level edits
func (r *PostgreSQLOrderRepository) UpdateTotalAmount(
	ctx context.Context,
	id uuid.UUID,
	total decimal.Decimal,
) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx,
		`UPDATE orders SET total_amount = $1 WHERE id = $2`, total, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to update order total")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// Delete removes an order; item rows cascade via the foreign key
func (r *PostgreSQLOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete order")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *PostgreSQLOrderRepository) insertItems(
	ctx context.Context,
	querier database.Querier,
	items []domain.OrderItem,
) error {
	query := `INSERT INTO order_items (id, order_id, product_id, quantity, subtotal)
			  VALUES ($1, $2, $3, $4, $5)`

	for i := range items {
		item := &items[i]
		_, err := querier.ExecContext(ctx, query,
			item.ID, item.OrderID, item.ProductID, item.Quantity, item.Subtotal,
		)
		if err != nil {
			return apperrors.Wrap(err, "failed to create order item")
		}
	}
	return nil
}

func (r *PostgreSQLOrderRepository) loadItems(
	ctx context.Context,
	querier database.Querier,
	orderID uuid.UUID,
) ([]domain.OrderItem, error) {
	query := `SELECT id, order_id, product_id, quantity, subtotal
			  FROM order_items WHERE order_id = $1 ORDER BY id`

	rows, err := querier.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load order items")
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		var item domain.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Subtotal)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan order item row")
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate order item rows")
	}

	return items, nil
}
