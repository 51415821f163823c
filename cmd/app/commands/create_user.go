package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	userUsecase "github.com/danilo/sellora-commerce/internal/user/usecase"
)

// RunCreateUser creates a new user account from the command line.
// The password is hashed and the document normalized by the use case before
// persistence. Outputs the created user in either text or JSON format.
//
// Requirements: Database must be migrated and accessible.
func RunCreateUser(
	ctx context.Context,
	userUseCase userUsecase.UseCase,
	logger *slog.Logger,
	writer io.Writer,
	input userUsecase.CreateUserInput,
	format string,
) error {
	logger.Info("creating new user", slog.String("username", input.Username))

	user, err := userUseCase.CreateUser(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if format == "json" {
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(map[string]string{
			"id":       user.ID.String(),
			"username": user.Username,
			"email":    user.Email,
		}); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
	} else {
		_, _ = fmt.Fprintf(writer, "User created successfully\n")
		_, _ = fmt.Fprintf(writer, "ID: %s\n", user.ID)
		_, _ = fmt.Fprintf(writer, "Username: %s\n", user.Username)
		_, _ = fmt.Fprintf(writer, "Email: %s\n", user.Email)
	}

	logger.Info("user created successfully",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username),
	)

	return nil
}
