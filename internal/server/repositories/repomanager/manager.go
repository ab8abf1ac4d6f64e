package repomanager

import (
	"context"
	"database/sql"

	"github.com/uelms-project/uelms/internal/dbx"
	"github.com/uelms-project/uelms/internal/server/repositories/accounts"
	"github.com/uelms-project/uelms/internal/server/repositories/rechecks"
	"github.com/uelms-project/uelms/internal/server/repositories/recovery"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Recovery(db dbx.DBTX) recovery.Repository
	Rechecks(db dbx.DBTX) rechecks.Repository
}
