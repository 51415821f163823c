// Package dto provides data transfer objects for the user HTTP layer.
package dto

import (
	"github.com/danilo/sellora-commerce/internal/user/domain"
	"github.com/danilo/sellora-commerce/internal/user/usecase"
)

// ToCreateUserInput converts a CreateUserRequest DTO to a CreateUserInput use case input
func ToCreateUserInput(req CreateUserRequest) usecase.CreateUserInput {
	return usecase.CreateUserInput{
		FullName: req.FullName,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		UserType: req.UserType,
		Document: req.Document,
		Address: domain.Address{
			Street:  req.Address.Street,
			Number:  req.Address.Number,
			City:    req.Address.City,
			State:   req.Address.State,
			Country: req.Address.Country,
			ZipCode: req.Address.ZipCode,
		},
	}
}

// ToUpdateUserInput converts an UpdateUserRequest DTO to an UpdateUserInput use case input
func ToUpdateUserInput(req UpdateUserRequest) usecase.UpdateUserInput {
	return usecase.UpdateUserInput{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		UserType: req.UserType,
	}
}

// ToUserResponse converts a domain User model to a UserResponse DTO
// This enforces the boundary between internal domain models and external API contracts
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		FullName: user.FullName,
		Username: user.Username,
		Email:    user.Email,
		Phone:    user.Phone,
		UserType: string(user.UserType),
		Document: user.Document,
		Address: AddressPayload{
			Street:  user.Address.Street,
			Number:  user.Address.Number,
			City:    user.Address.City,
			State:   user.Address.State,
			Country: user.Address.Country,
			ZipCode: user.Address.ZipCode,
		},
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
	}
}

// ToUserResponseList converts a slice of domain users to response DTOs
func ToUserResponseList(users []*domain.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, ToUserResponse(user))
	}
	return responses
}
