package repo

import (
	"context"

	"github.com/valeriy131100/star-burger/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ImportTaskRepository interface {
	Create(ctx context.Context, task *domain.ImportTask) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ImportTask, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.ImportTaskStatus, errorMsg string) error
	Complete(ctx context.Context, id primitive.ObjectID, products, categories int) error
	IncrementRetryCount(ctx context.Context, id primitive.ObjectID) error
}
