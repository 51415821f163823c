// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/danilo/sellora-commerce/internal/errors"
)

var (
	// emailRegex is a basic email validation pattern
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// nonDigitRegex matches every character that is not a decimal digit
	nonDigitRegex = regexp.MustCompile(`\D`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NormalizeDocument strips every non-digit character from a CPF or CNPJ,
// so "123.456.789-09" and "12345678909" store identically.
func NormalizeDocument(document string) string {
	return nonDigitRegex.ReplaceAllString(document, "")
}

// Email validates email format using regex
var Email = validation.NewStringRuleWithError(
	func(s string) bool {
		return emailRegex.MatchString(s)
	},
	validation.NewError("validation_email_format", "must be a valid email address"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// Document validates that a value normalizes to a CPF (11 digits) or CNPJ
// (14 digits). Formatting characters such as dots and dashes are allowed.
var Document = validation.NewStringRuleWithError(
	func(s string) bool {
		digits := NormalizeDocument(s)
		return len(digits) == 11 || len(digits) == 14
	},
	validation.NewError("validation_document", "must be a CPF (11 digits) or CNPJ (14 digits)"),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)
