package accounts

import (
	"context"

	"github.com/uelms-project/uelms/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	Exists(ctx context.Context, username string) (bool, error)
	GetByIdentifier(ctx context.Context, identifier string, role models.Role) (*models.Account, error)
	FindPasswordByIdentifier(ctx context.Context, identifier string) (string, error)
}
