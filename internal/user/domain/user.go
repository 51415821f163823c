// Package domain defines the core user domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/danilo/sellora-commerce/internal/errors"
	"github.com/danilo/sellora-commerce/internal/validation"
)

// UserType categorizes users by role.
type UserType string

const (
	// UserTypeCustomer is a regular storefront customer.
	UserTypeCustomer UserType = "CUSTOMER"

	// UserTypeAdmin is a back-office administrator.
	UserTypeAdmin UserType = "ADMIN"
)

// IsValid reports whether the user type is a known enum member.
func (t UserType) IsValid() bool {
	switch t {
	case UserTypeCustomer, UserTypeAdmin:
		return true
	}
	return false
}

// Address is the user's address, embedded in the user record.
// All fields are optional and it has no lifecycle of its own.
type Address struct {
	Street  string `json:"street"`
	Number  string `json:"number"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	ZipCode string `json:"zip_code"`
}

// User represents a user of the e-commerce system.
// Username, email, phone, and document are unique. The document is a CPF or
// CNPJ stored digits-only; Password holds the hash, never the plain text.
type User struct {
	ID        uuid.UUID
	FullName  string
	Username  string
	Email     string
	Password  string
	Phone     string
	UserType  UserType
	Document  string
	Address   Address
	Status    bool
	CreatedAt time.Time
}

// SetDocument stores the CPF or CNPJ keeping only its digits, so formatted
// and bare inputs produce the identical stored value.
func (u *User) SetDocument(document string) {
	u.Document = validation.NormalizeDocument(document)
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates a user with the same unique key already exists.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")
)
