package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danilo/sellora-commerce/internal/order/domain"
	"github.com/danilo/sellora-commerce/internal/testutil"
)

func newTestOrder(userID uuid.UUID, items ...domain.OrderItem) *domain.Order {
	order := &domain.Order{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    userID,
		Status:    domain.OrderStatusProcessing,
		OrderDate: time.Now().UTC(),
	}
	for _, item := range items {
		order.AddItem(item)
	}
	return order
}

func newTestItem(productID uuid.UUID, quantity int, subtotal string) domain.OrderItem {
	return domain.OrderItem{
		ID:        uuid.Must(uuid.NewV7()),
		ProductID: productID,
		Quantity:  quantity,
		Subtotal:  decimal.RequireFromString(subtotal),
	}
}

func TestPostgreSQLOrderRepository_CreateAndGet(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLOrderRepository(db)
	ctx := context.Background()

	userID := testutil.CreateTestUser(t, db, "postgres", "orderowner")
	productID := testutil.CreateTestProduct(t, db, "postgres", "keyboard")

	order := newTestOrder(userID,
		newTestItem(productID, 1, "19.99"),
		newTestItem(productID, 1, "5.00"),
	)
	require.NoError(t, repo.Create(ctx, order))

	created, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, created.ID)
	assert.Equal(t, userID, created.UserID)
	assert.Equal(t, domain.OrderStatusProcessing, created.Status)
	require.Len(t, created.Items, 2)
	assert.True(t, created.TotalAmount.Equal(decimal.RequireFromString("24.99")),
		"total %s", created.TotalAmount)
	for _, item := range created.Items {
		assert.Equal(t, order.ID, item.OrderID)
	}
	assert.False(t, created.OrderDate.IsZero())
}

func TestPostgreSQLOrderRepository_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLOrderRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.Must(uuid.NewV7()))
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestPostgreSQLOrderRepository_Update_ReplacesItems(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLOrderRepository(db)
	itemRepo := NewPostgreSQLOrderItemRepository(db)
	ctx := context.Background()

	userID := testutil.CreateTestUser(t, db, "postgres", "orderowner")
	productID := testutil.CreateTestProduct(t, db, "postgres", "keyboard")

	itemA := newTestItem(productID, 1, "19.99")
	itemB := newTestItem(productID, 1, "5.00")

	order := newTestOrder(userID, itemA, itemB)
	require.NoError(t, repo.Create(ctx, order))

	// Keep only item B, with a fresh row identity
	replacement := newTestItem(productID, 1, "5.00")
	order.Items = nil
	order.AddItem(replacement)
	order.Status = domain.OrderStatusCompleted
	require.NoError(t, repo.Update(ctx, order))

	updated, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, replacement.ID, updated.Items[0].ID)
	assert.True(t, updated.TotalAmount.Equal(decimal.RequireFromString("5.00")))
	assert.Equal(t, domain.OrderStatusCompleted, updated.Status)

	// The removed item row is gone, not orphaned
	_, err = itemRepo.GetByID(ctx, itemA.ID)
	assert.ErrorIs(t, err, domain.ErrOrderItemNotFound)
}

func TestPostgreSQLOrderRepository_Update_NotFound(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLOrderRepository(db)

	userID := testutil.CreateTestUser(t, db, "postgres", "orderowner")
	order := newTestOrder(userID)

	err := repo.Update(context.Background(), order)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestPostgreSQLOrderRepository_Delete_CascadesItems(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLOrderRepository(db)
	itemRepo := NewPostgreSQLOrderItemRepository(db)
	ctx := context.Background()

	userID := testutil.CreateTestUser(t, db, "postgres", "orderowner")
	productID := testutil.CreateTestProduct(t, db, "postgres", "keyboard")

	item := newTestItem(productID, 2, "39.98")
	order := newTestOrder(userID, item)
	require.NoError(t, repo.Create(ctx, order))

	require.NoError(t, repo.Delete(ctx, order.ID))

	_, err := repo.GetByID(ctx, order.ID)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)

	_, err = itemRepo.GetByID(ctx, item.ID)
	assert.ErrorIs(t, err, domain.ErrOrderItemNotFound)
}

func TestPostgreSQLOrderItemRepository_CRUD(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	orderRepo := NewPostgreSQLOrderRepository(db)
	itemRepo := NewPostgreSQLOrderItemRepository(db)
	ctx := context.Background()

	userID := testutil.CreateTestUser(t, db, "postgres", "orderowner")
	productID := testutil.CreateTestProduct(t, db, "postgres", "keyboard")

	order := newTestOrder(userID)
	require.NoError(t, orderRepo.Create(ctx, order))

	item := newTestItem(productID, 3, "59.97")
	item.OrderID = order.ID
	require.NoError(t, itemRepo.Create(ctx, &item))

	got, err := itemRepo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.OrderID)
	assert.Equal(t, 3, got.Quantity)
	assert.True(t, got.Subtotal.Equal(decimal.RequireFromString("59.97")))

	byOrder, err := itemRepo.ListByOrderID(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, byOrder, 1)

	got.Quantity = 1
	got.Subtotal = decimal.RequireFromString("19.99")
	require.NoError(t, itemRepo.Update(ctx, got))

	updated, err := itemRepo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Quantity)
	assert.True(t, updated.Subtotal.Equal(decimal.RequireFromString("19.99")))

	require.NoError(t, itemRepo.Delete(ctx, item.ID))
	_, err = itemRepo.GetByID(ctx, item.ID)
	assert.ErrorIs(t, err, domain.ErrOrderItemNotFound)

	err = itemRepo.Delete(ctx, item.ID)
	assert.ErrorIs(t, err, domain.ErrOrderItemNotFound)
}
