// Package domain defines the product catalog entity and its invariants.
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "github.com/danilo/sellora-commerce/internal/errors"
)

// Product domain errors
var (
	ErrProductNotFound = apperrors.Wrap(apperrors.ErrNotFound, "product not found")
)

// Product represents a catalog item available for ordering.
// Price is a decimal with at most two fraction digits so that monetary
// arithmetic stays exact.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	CreatedAt   time.Time       `json:"created_at"`
}
