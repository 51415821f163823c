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

// MySQLOrderItemRepository handles item-level persistence for MySQL
type MySQLOrderItemRepository struct {
	db *sql.DB
}

// NewMySQLOrderItemRepository creates a new MySQLOrderItemRepository
func NewMySQLOrderItemRepository(db *sql.DB) *MySQLOrderItemRepository {
	return &MySQLOrderItemRepository{
		db: db,
	}
}

// Create inserts a single order item
func (r *MySQLOrderItemRepository) Create(ctx context.Context, item *domain.OrderItem) error {
	querier := database.GetTx(ctx, r.db)
	return insertItemsMySQL(ctx, querier, []domain.OrderItem{*item})
}

// GetByID retrieves an order item by ID
func (r *MySQLOrderItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.OrderItem, error) {
	var item domain.OrderItem
	querier := database.GetTx(ctx, r.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal order item id")
	}

	query := `SELECT id, order_id, product_id, quantity, subtotal FROM order_items WHERE id = ?`

	err = querier.QueryRowContext(ctx, query, idBytes).Scan(
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
func (r *MySQLOrderItemRepository) List(ctx context.Context, offset, limit int) ([]*domain.OrderItem, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, order_id, product_id, quantity, subtotal
			  FROM order_items ORDER BY id LIMIT ? OFFSET ?`

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
func (r *MySQLOrderItemRepository) ListByOrderID(
	ctx context.Context,
	orderID uuid.UUID,
) ([]*domain.OrderItem, error) {
	querier := database.GetTx(ctx, r.db)

	items, err := loadItemsMySQL(ctx, querier, orderID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.OrderItem, 0, len(items))
	for i := range items {
		result = append(result, &items[i])
	}
	return result, nil
}

// Update replaces the item's product, quantity and subtotal.
// The owning order never changes through item-level edits.
func (r *MySQLOrderItemRepository) Update(ctx context.Context, item *domain.OrderItem) error {
	querier := database.GetTx(ctx, r.db)

	idBytes, err := item.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal order item id")
	}
	productID, err := item.ProductID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal product id")
	}

	query := `UPDATE order_items SET product_id = ?, quantity = ?, subtotal = ? WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, productID, item.Quantity, item.Subtotal, idBytes)
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
func (r *MySQLOrderItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal order item id")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM order_items WHERE id = ?`, idBytes)
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
