// Package accounts stores the shared account table behind the auth flows.
//
// Passwords are stored and compared verbatim, matching the application's
// existing contract: the recovery flow logs the literal stored password for
// admin follow-up, which rules out one-way hashing. Known security gap.
package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uelms-project/uelms/internal/common"
	"github.com/uelms-project/uelms/internal/dbx"
	"github.com/uelms-project/uelms/internal/server/models"
)

// uniqueViolation is the SQLSTATE Postgres reports for constraint collisions.
const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// Create inserts a new account row. A username or registration-no collision
// surfaces as common.ErrorDuplicate so callers can tell "already registered"
// from an infrastructure failure.
func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {

	query :=
		`INSERT INTO users (username, registration_no, password, role, is_active)
         VALUES ($1, NULLIF($2, ''), $3, $4, $5)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		account.Username, account.RegistrationNo, account.Password,
		account.Role, account.IsActive).Scan(&account.ID, &account.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.ErrorDuplicate
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

// Exists reports whether any account, active or not, holds the username.
func (r *PostgresRepository) Exists(ctx context.Context, username string) (bool, error) {
	query :=
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)
		 `

	var exists bool
	err := r.db.QueryRowContext(ctx, query, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return exists, nil
}

// GetByIdentifier returns the active account whose username or registration
// number equals identifier. A non-empty role narrows the match; the empty
// role accepts any. No active match yields common.ErrorNotFound.
func (r *PostgresRepository) GetByIdentifier(ctx context.Context, identifier string, role models.Role) (*models.Account, error) {
	query :=
		`SELECT id, username, COALESCE(registration_no, ''), password, role, is_active, created_at FROM users
		 WHERE is_active AND (username = $1 OR registration_no = $1)
		 `
	args := []any{identifier}
	if role != "" {
		query += ` AND role = $2
		 `
		args = append(args, role)
	}
	query += ` LIMIT 1
		 `

	account := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&account.ID, &account.Username, &account.RegistrationNo,
		&account.Password, &account.Role, &account.IsActive, &account.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

// FindPasswordByIdentifier returns the stored password of the unique active
// account matching identifier, or common.ErrorNotFound. Inactive accounts
// never match, even on an exact identifier hit.
func (r *PostgresRepository) FindPasswordByIdentifier(ctx context.Context, identifier string) (string, error) {
	query :=
		`SELECT password FROM users
		 WHERE is_active AND (username = $1 OR registration_no = $1)
		 LIMIT 1
		 `

	var password string
	err := r.db.QueryRowContext(ctx, query, identifier).Scan(&password)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}

	return password, nil
}
