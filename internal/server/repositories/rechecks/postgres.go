// Package rechecks stores result re-evaluation requests. One row exists per
// (registration no, subject, semester, exam year); resubmitting replaces the
// reason and moves the request back to Pending.
package rechecks

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/uelms-project/uelms/internal/common"
	"github.com/uelms-project/uelms/internal/dbx"
	"github.com/uelms-project/uelms/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Submit upserts a request on its natural key and returns it with the
// assigned id, status and request date.
func (r *PostgresRepository) Submit(ctx context.Context, req *models.RecheckRequest) (*models.RecheckRequest, error) {

	query :=
		`INSERT INTO recheck_request (registration_no, subject_code, semester, exam_year, reason)
         VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT ON CONSTRAINT uq_recheck
		 DO UPDATE SET reason = EXCLUDED.reason, status = 'Pending', admin_comment = NULL, request_date = now()
		 RETURNING request_id, status, request_date
		 `

	err := r.db.QueryRowContext(ctx, query,
		req.RegistrationNo, req.SubjectCode, req.Semester, req.ExamYear, req.Reason).
		Scan(&req.RequestID, &req.Status, &req.RequestDate)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return req, nil
}

const selectColumns = `request_id, registration_no, subject_code, semester, exam_year, COALESCE(reason, ''), status, request_date, COALESCE(admin_comment, '')`

// ForStudent lists a student's requests, newest first.
func (r *PostgresRepository) ForStudent(ctx context.Context, registrationNo string) ([]*models.RecheckRequest, error) {
	query :=
		`SELECT ` + selectColumns + ` FROM recheck_request
		 WHERE registration_no = $1
		 ORDER BY request_date DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, registrationNo)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanAll(rows)
}

// ByStatuses lists requests in any of the given states for admin review.
// The IN list is built from positional placeholders, one per status.
func (r *PostgresRepository) ByStatuses(ctx context.Context, statuses ...models.RecheckStatus) ([]*models.RecheckRequest, error) {
	if len(statuses) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(statuses))
	args := make([]any, len(statuses))
	for i, s := range statuses {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = s
	}

	query :=
		`SELECT ` + selectColumns + ` FROM recheck_request
		 WHERE status IN (` + strings.Join(placeholders, ", ") + `)
		 ORDER BY request_date DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanAll(rows)
}

// Decide records the admin decision. An unknown request id yields
// common.ErrorNotFound.
func (r *PostgresRepository) Decide(ctx context.Context, requestID int64, status models.RecheckStatus, comment string) error {
	query :=
		`UPDATE recheck_request SET status = $2, admin_comment = $3
		 WHERE request_id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, requestID, status, comment)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func scanAll(rows *sql.Rows) ([]*models.RecheckRequest, error) {
	var result []*models.RecheckRequest
	for rows.Next() {
		req := &models.RecheckRequest{}
		if err := rows.Scan(&req.RequestID, &req.RegistrationNo, &req.SubjectCode,
			&req.Semester, &req.ExamYear, &req.Reason, &req.Status,
			&req.RequestDate, &req.AdminComment); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
