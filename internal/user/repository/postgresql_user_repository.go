// Package repository provides data persistence implementations for user entities.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/danilo/sellora-commerce/internal/database"
	"github.com/danilo/sellora-commerce/internal/user/domain"

	apperrors "github.com/danilo/sellora-commerce/internal/errors"
)

// PostgreSQLUserRepository handles user persistence for PostgreSQL
type PostgreSQLUserRepository struct {
	db *sql.DB
}

// NewPostgreSQLUserRepository creates a new PostgreSQLUserRepository
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{
		db: db,
	}
}

const pgUserColumns = `id, full_name, username, email, password, phone, user_type, document,
	street, number, city, state, country, zip_code, status, created_at`

// scanUser scans a single user row including the embedded address.
func scanUser(row *sql.Row, user *domain.User) error {
	return row.Scan(
		&user.ID, &user.FullName, &user.Username, &user.Email, &user.Password,
		&user.Phone, &user.UserType, &user.Document,
		&user.Address.Street, &user.Address.Number, &user.Address.City,
		&user.Address.State, &user.Address.Country, &user.Address.ZipCode,
		&user.Status, &user.CreatedAt,
	)
}

// Create inserts a new user
func (r *PostgreSQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO users (id, full_name, username, email, password, phone, user_type, document,
			  street, number, city, state, country, zip_code, status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := querier.ExecContext(ctx, query,
		user.ID, user.FullName, user.Username, user.Email, user.Password,
		user.Phone, user.UserType, user.Document,
		user.Address.Street, user.Address.Number, user.Address.City,
		user.Address.State, user.Address.Country, user.Address.ZipCode,
		user.Status, user.CreatedAt,
	)
	if err != nil {
		// Check for unique constraint violation (duplicate username/email/phone/document)
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// GetByID retrieves a user by ID
func (r *PostgreSQLUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + pgUserColumns + ` FROM users WHERE id = $1`

	err := scanUser(querier.QueryRowContext(ctx, query, id), &user)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by id")
	}

	return &user, nil
}

// GetByUsername retrieves a user by username
func (r *PostgreSQLUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + pgUserColumns + ` FROM users WHERE username = $1`

	err := scanUser(querier.QueryRowContext(ctx, query, username), &user)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by username")
	}

	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *PostgreSQLUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + pgUserColumns + ` FROM users WHERE email = $1`

	err := scanUser(querier.QueryRowContext(ctx, query, email), &user)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by email")
	}

	return &user, nil
}

// GetByDocument retrieves a user by normalized document (digits-only CPF/CNPJ)
func (r *PostgreSQLUserRepository) GetByDocument(ctx context.Context, document string) (*domain.User, error) {
	var user domain.User
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + pgUserColumns + ` FROM users WHERE document = $1`

	err := scanUser(querier.QueryRowContext(ctx, query, document), &user)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by document")
	}

	return &user, nil
}

// List retrieves users ordered by creation time with offset/limit pagination
func (r *PostgreSQLUserRepository) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + pgUserColumns + ` FROM users ORDER BY created_at LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list users")
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		var user domain.User
		err := rows.Scan(
			&user.ID, &user.FullName, &user.Username, &user.Email, &user.Password,
			&user.Phone, &user.UserType, &user.Document,
			&user.Address.Street, &user.Address.Number, &user.Address.City,
			&user.Address.State, &user.Address.Country, &user.Address.ZipCode,
			&user.Status, &user.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan user row")
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate user rows")
	}

	return users, nil
}

// Update replaces the mutable user fields (full name, email, phone, user type)
func (r *PostgreSQLUserRepository) Update(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE users SET full_name = $1, email = $2, phone = $3, user_type = $4 WHERE id = $5`

	result, err := querier.ExecContext(ctx, query,
		user.FullName, user.Email, user.Phone, user.UserType, user.ID,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to update user")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete removes a user by ID
func (r *PostgreSQLUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete user")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// PostgreSQL: "duplicate key value violates unique constraint" or "pq: duplicate key"
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}
