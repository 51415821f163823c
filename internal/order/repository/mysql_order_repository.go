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

// MySQLOrderRepository handles order persistence for MySQL
type MySQLOrderRepository struct {
	db *sql.DB
}

// NewMySQLOrderRepository creates a new MySQLOrderRepository
func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{
		db: db,
	}
}

// Create inserts the order row and all of its items
func (r *MySQLOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO orders (id, user_id, total_amount, status, order_date)
			  VALUES (?, ?, ?, ?, ?)`

	// Convert UUIDs to bytes for MySQL BINARY(16)
	orderID, err := order.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal order id")
	}
	userID, err := order.UserID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	_, err = querier.ExecContext(ctx, query, orderID, userID, order.TotalAmount, order.Status, order.OrderDate)
	if err != nil {
		return apperrors.Wrap(err, "failed to create order")
	}

	return insertItemsMySQL(ctx, querier, order.Items)
}

// GetByID retrieves an order with its items
func (r *MySQLOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	var order domain.Order
	querier := database.GetTx(ctx, r.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal order id")
	}

	query := `SELECT id, user_id, total_amount, status, order_date FROM orders WHERE id = ?`

	err = querier.QueryRowContext(ctx, query, idBytes).Scan(
		&order.ID, &order.UserID, &order.TotalAmount, &order.Status, &order.OrderDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get order by id")
	}

	items, err := loadItemsMySQL(ctx, querier, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return &order, nil
}

// List retrieves orders with their items, ordered by order date
func (r *MySQLOrderRepository) List(ctx context.Context, offset, limit int) ([]*domain.Order, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, total_amount, status, order_date
			  FROM orders ORDER BY order_date LIMIT ? OFFSET ?`

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
		items, err := loadItemsMySQL(ctx, querier, order.ID)
		if err != nil {
			return nil, err
		}
		order.Items = items
	}

	return orders, nil
}

// Update replaces the order row and performs a full item replacement:
// existing item rows are deleted and the incoming list is inserted.
func (r *MySQLOrderRepository) Update(ctx context.Context, order *domain.Order) error {
	querier := database.GetTx(ctx, r.db)

	orderID, err := order.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal order id")
	}
	userID, err := order.UserID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	query := `UPDATE orders SET user_id = ?, total_amount = ?, status = ? WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, userID, order.TotalAmount, order.Status, orderID)
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
	if _, err := querier.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = ?`, orderID); err != nil {
		return apperrors.Wrap(err, "failed to delete order items")
	}

	return insertItemsMySQL(ctx, querier, order.Items)
}

// UpdateTotalAmount rewrites only the derived total, used after item-level edits
func (r *MySQLOrderRepository) UpdateTotalAmount(
	ctx context.Context,
	id uuid.UUID,
	total decimal.Decimal,
) error {
	querier := database.GetTx(ctx, r.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal order id")
	}

	result, err := querier.ExecContext(ctx,
		`UPDATE orders SET total_amount = ? WHERE id = ?`, total, idBytes)
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
func (r *MySQLOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal order id")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, idBytes)
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

func insertItemsMySQL(ctx context.Context, querier database.Querier, items []domain.OrderItem) error {
	query := `INSERT INTO order_items (id, order_id, product_id, quantity, subtotal)
			  VALUES (?, ?, ?, ?, ?)`

	for i := range items {
		item := &items[i]

		itemID, err := item.ID.MarshalBinary()
		if err != nil {
			return apperrors.Wrap(err, "failed to marshal order item id")
		}
		orderID, err := item.OrderID.MarshalBinary()
		if err != nil {
			return apperrors.Wrap(err, "failed to marshal order id")
		}
		productID, err := item.ProductID.MarshalBinary()
		if err != nil {
			return apperrors.Wrap(err, "failed to marshal product id")
		}

		_, err = querier.ExecContext(ctx, query, itemID, orderID, productID, item.Quantity, item.Subtotal)
		if err != nil {
			return apperrors.Wrap(err, "failed to create order item")
		}
	}
	return nil
}

func loadItemsMySQL(ctx context.Context, querier database.Querier, orderID uuid.UUID) ([]domain.OrderItem, error) {
	orderIDBytes, err := orderID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal order id")
	}

	query := `SELECT id, order_id, product_id, quantity, subtotal
			  FROM order_items WHERE order_id = ? ORDER BY id`

	rows, err := querier.QueryContext(ctx, query, orderIDBytes)
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
