// Package dto provides data transfer objects for the user HTTP layer.
package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserResponse represents the API response for a user
// It excludes sensitive information like the password hash
type UserResponse struct {
	ID        uuid.UUID      `json:"id"`
	FullName  string         `json:"full_name"`
	Username  string         `json:"username"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	UserType  string         `json:"user_type"`
	Document  string         `json:"document"`
	Address   AddressPayload `json:"address"`
	Status    bool           `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}
