package recovery

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/uelms-project/uelms/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const (
	qInsert = `(?s)^INSERT\s+INTO\s+password_recovery_log\s*\(id,\s*target_email,\s*identifier,\s*revealed_password\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*RETURNING\s+created_at\s*$`
	qList   = `(?s)^SELECT\s+id,\s*target_email,\s*identifier,\s*revealed_password,\s*created_at\s+FROM\s+password_recovery_log\s+WHERE\s+identifier\s*=\s*\$1\s+ORDER\s+BY\s+created_at\s+DESC\s*$`
)

func TestRecord_AssignsIDAndTimestamp(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(qInsert).
		WithArgs(sqlmock.AnyArg(), "records-admin@uelms.edu", "alice", "p1").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	req := &models.RecoveryRequest{
		TargetEmail:      "records-admin@uelms.edu",
		Identifier:       "alice",
		RevealedPassword: "p1",
	}
	got, err := repo.Record(context.Background(), req)
	if err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if got.ID == "" {
		t.Fatalf("expected generated request id")
	}
	if !got.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created_at: %v", got.CreatedAt)
	}
}

func TestRecord_DuplicatesAllowed(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	// two requests for the same identifier both insert
	for i := 0; i < 2; i++ {
		mock.ExpectQuery(qInsert).
			WithArgs(sqlmock.AnyArg(), "records-admin@uelms.edu", "alice", "p1").
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	}

	for i := 0; i < 2; i++ {
		_, err := repo.Record(context.Background(), &models.RecoveryRequest{
			TargetEmail: "records-admin@uelms.edu", Identifier: "alice", RevealedPassword: "p1",
		})
		if err != nil {
			t.Fatalf("Record %d error: %v", i, err)
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecord_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qInsert).
		WithArgs(sqlmock.AnyArg(), "records-admin@uelms.edu", "alice", "p1").
		WillReturnError(errors.New("db down"))

	_, err := repo.Record(context.Background(), &models.RecoveryRequest{
		TargetEmail: "records-admin@uelms.edu", Identifier: "alice", RevealedPassword: "p1",
	})
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestListByIdentifier(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "target_email", "identifier", "revealed_password", "created_at"}).
		AddRow("r2", "records-admin@uelms.edu", "alice", "p1", time.Now()).
		AddRow("r1", "records-admin@uelms.edu", "alice", "p0", time.Now().Add(-time.Hour))
	mock.ExpectQuery(qList).WithArgs("alice").WillReturnRows(rows)

	got, err := repo.ListByIdentifier(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ListByIdentifier error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "r2" || got[1].RevealedPassword != "p0" {
		t.Fatalf("unexpected rows: %+v", got)
	}
}
