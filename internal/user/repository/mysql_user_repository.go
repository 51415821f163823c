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

// MySQLUserRepository handles user persistence for MySQL
type MySQLUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new MySQLUserRepository
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{
		db: db,
	}
}

// Create inserts a new user
func (r *MySQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO users (id, full_name, username, email, password, phone, user_type, document,
			  street, number, city, state, country, zip_code, status, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	// Convert UUID to bytes for MySQL BINARY(16)
	uuidBytes, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	_, err = querier.ExecContext(ctx, query,
		uuidBytes, user.FullName, user.Username, user.Email, user.Password,
		user.Phone, user.UserType, user.Document,
		user.Address.Street, user.Address.Number, user.Address.City,
		user.Address.State, user.Address.Country, user.Address.ZipCode,
		user.Status, user.CreatedAt,
	)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// GetByID retrieves a user by ID
func (r *MySQLUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	// Convert UUID to bytes for MySQL BINARY(16)
	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal user id")
	}
	return r.getBy(ctx, "id", uuidBytes)
}

// GetByUsername retrieves a user by username
func (r *MySQLUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getBy(ctx, "username", username)
}

// GetByEmail retrieves a user by email
func (r *MySQLUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, "email", email)
}

// GetByDocument retrieves a user by normalized document (digits-only CPF/CNPJ)
func (r *MySQLUserRepository) GetByDocument(ctx context.Context, document string) (*domain.User, error) {
	return r.getBy(ctx, "document", document)
}

func (r *MySQLUserRepository) getBy(ctx context.Context, column string, value any) (*domain.User, error) {
	var user domain.User
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, full_name, username, email, password, phone, user_type, document,
			  street, number, city, state, country, zip_code, status, created_at
			  FROM users WHERE ` + column + ` = ?`

	err := querier.QueryRowContext(ctx, query, value).Scan(
		&user.ID, &user.FullName, &user.Username, &user.Email, &user.Password,
		&user.Phone, &user.UserType, &user.Document,
		&user.Address.Street, &user.Address.Number, &user.Address.City,
		&user.Address.State, &user.Address.Country, &user.Address.ZipCode,
		&user.Status, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by "+column)
	}

	return &user, nil
}

// List retrieves users ordered by creation time with offset/limit pagination
func (r *MySQLUserRepository) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, full_name, username, email, password, phone, user_type, document,
			  street, number, city, state, country, zip_code, status, created_at
			  FROM users ORDER BY created_at LIMIT ? OFFSET ?`

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
func (r *MySQLUserRepository) Update(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE users SET full_name = ?, email = ?, phone = ?, user_type = ? WHERE id = ?`

	uuidBytes, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	result, err := querier.ExecContext(ctx, query,
		user.FullName, user.Email, user.Phone, user.UserType, uuidBytes,
	)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
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
func (r *MySQLUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, uuidBytes)
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

// isMySQLDuplicateEntry checks if the error is a MySQL duplicate entry error (1062)
func isMySQLDuplicateEntry(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "error 1062")
}
