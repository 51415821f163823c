package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_SetDocument(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"formatted cpf", "123.456.789-09", "12345678909"},
		{"bare cpf", "12345678909", "12345678909"},
		{"formatted cnpj", "12.345.678/0001-95", "12345678000195"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var user User
			user.SetDocument(tt.input)
			assert.Equal(t, tt.expected, user.Document)
		})
	}
}

func TestUser_SetDocument_Idempotent(t *testing.T) {
	var user User
	user.SetDocument("123.456.789-09")
	first := user.Document

	user.SetDocument(first)
	assert.Equal(t, first, user.Document)
}

func TestUserType_IsValid(t *testing.T) {
	assert.True(t, UserTypeCustomer.IsValid())
	assert.True(t, UserTypeAdmin.IsValid())
	assert.False(t, UserType("MANAGER").IsValid())
	assert.False(t, UserType("").IsValid())
}
