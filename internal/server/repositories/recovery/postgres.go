// Package recovery keeps the append-only password-recovery audit log.
// Rows are written by the recovery flow and only ever read back by admin
// tooling; nothing updates or deletes them.
package recovery

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/uelms-project/uelms/internal/dbx"
	"github.com/uelms-project/uelms/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Record appends one recovery request. Repeat requests for the same
// identifier are all recorded independently; there is no uniqueness
// constraint on the log.
func (r *PostgresRepository) Record(ctx context.Context, req *models.RecoveryRequest) (*models.RecoveryRequest, error) {

	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO password_recovery_log (id, target_email, identifier, revealed_password)
         VALUES ($1, $2, $3, $4)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		req.ID, req.TargetEmail, req.Identifier, req.RevealedPassword).Scan(&req.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return req, nil
}

// ListByIdentifier returns all logged requests for one identifier, newest
// first, for manual admin follow-up.
func (r *PostgresRepository) ListByIdentifier(ctx context.Context, identifier string) ([]*models.RecoveryRequest, error) {
	query :=
		`SELECT id, target_email, identifier, revealed_password, created_at FROM password_recovery_log
		 WHERE identifier = $1
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, identifier)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.RecoveryRequest
	for rows.Next() {
		req := &models.RecoveryRequest{}
		if err := rows.Scan(&req.ID, &req.TargetEmail, &req.Identifier, &req.RevealedPassword, &req.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
