// Package dto provides data transfer objects for the user HTTP layer.
package dto

// AddressPayload represents the address fields accepted on user requests
type AddressPayload struct {
	Street  string `json:"street"`
	Number  string `json:"number"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	ZipCode string `json:"zip_code"`
}

// CreateUserRequest represents the API request for user creation
type CreateUserRequest struct {
	FullName string         `json:"full_name"`
	Username string         `json:"username"`
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Phone    string         `json:"phone"`
	UserType string         `json:"user_type"`
	Document string         `json:"document"`
	Address  AddressPayload `json:"address"`
}

// UpdateUserRequest represents the API request for updating the mutable user fields
type UpdateUserRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	UserType string `json:"user_type"`
}
