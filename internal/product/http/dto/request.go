// Package dto provides data transfer objects for the product HTTP layer.
package dto

import "github.com/shopspring/decimal"

// ProductRequest represents the API request for product creation and update.
// Price is a pointer so an absent field is distinguishable from an explicit
// zero and can be rejected by validation.
type ProductRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    string           `json:"image_url"`
}
