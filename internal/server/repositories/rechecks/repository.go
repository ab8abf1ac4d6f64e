package rechecks

import (
	"context"

	"github.com/uelms-project/uelms/internal/server/models"
)

type Repository interface {
	Submit(ctx context.Context, req *models.RecheckRequest) (*models.RecheckRequest, error)
	ForStudent(ctx context.Context, registrationNo string) ([]*models.RecheckRequest, error)
	ByStatuses(ctx context.Context, statuses ...models.RecheckStatus) ([]*models.RecheckRequest, error)
	Decide(ctx context.Context, requestID int64, status models.RecheckStatus, comment string) error
}
