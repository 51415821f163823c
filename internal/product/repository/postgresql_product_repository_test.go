package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danilo/sellora-commerce/internal/product/domain"
	"github.com/danilo/sellora-commerce/internal/testutil"
)

func newTestProduct(name, price string) *domain.Product {
	return &domain.Product{
		ID:          uuid.Must(uuid.NewV7()),
		Name:        name,
		Description: "test product",
		Price:       decimal.RequireFromString(price),
		ImageURL:    "https://example.com/" + name + ".png",
		CreatedAt:   time.Now().UTC(),
	}
}

func TestPostgreSQLProductRepository_CreateAndGet(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLProductRepository(db)
	ctx := context.Background()

	product := newTestProduct("keyboard", "199.90")
	require.NoError(t, repo.Create(ctx, product))

	created, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.ID, created.ID)
	assert.Equal(t, product.Name, created.Name)
	// Exact decimal comparison, no float drift
	assert.True(t, created.Price.Equal(decimal.RequireFromString("199.90")))
	assert.False(t, created.CreatedAt.IsZero())
}

func TestPostgreSQLProductRepository_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLProductRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.Must(uuid.NewV7()))
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestPostgreSQLProductRepository_List(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLProductRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestProduct("product1", "10.00")))
	require.NoError(t, repo.Create(ctx, newTestProduct("product2", "20.00")))

	products, err := repo.List(ctx, 0, 50)
	assert.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestPostgreSQLProductRepository_Update(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLProductRepository(db)
	ctx := context.Background()

	product := newTestProduct("keyboard", "199.90")
	require.NoError(t, repo.Create(ctx, product))

	product.Name = "mechanical keyboard"
	product.Price = decimal.RequireFromString("249.90")
	require.NoError(t, repo.Update(ctx, product))

	updated, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "mechanical keyboard", updated.Name)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("249.90")))
}

func TestPostgreSQLProductRepository_Delete(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLProductRepository(db)
	ctx := context.Background()

	product := newTestProduct("keyboard", "199.90")
	require.NoError(t, repo.Create(ctx, product))

	require.NoError(t, repo.Delete(ctx, product.ID))

	_, err := repo.GetByID(ctx, product.ID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	err = repo.Delete(ctx, product.ID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
