package recovery

import (
	"context"

	"github.com/uelms-project/uelms/internal/server/models"
)

type Repository interface {
	Record(ctx context.Context, req *models.RecoveryRequest) (*models.RecoveryRequest, error)
	ListByIdentifier(ctx context.Context, identifier string) ([]*models.RecoveryRequest, error)
}
