package repo

import (
	"context"

	"github.com/valeriy131100/star-burger/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error)
	ListUnfinished(ctx context.Context) ([]domain.Order, error)
	AssignRestaurant(ctx context.Context, id primitive.ObjectID, restaurantID primitive.ObjectID) error
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.OrderStatus) error
}
