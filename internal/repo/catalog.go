package repo

import (
	"context"

	"github.com/valeriy131100/star-burger/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *domain.Restaurant) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Restaurant, error)
	List(ctx context.Context) ([]domain.Restaurant, error)
}

type ProductCategoryRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ProductCategory, error)
	GetByName(ctx context.Context, name string) (*domain.ProductCategory, error)
	Upsert(ctx context.Context, category *domain.ProductCategory) error
	List(ctx context.Context) ([]domain.ProductCategory, error)
}

type ProductRepository interface {
	Upsert(ctx context.Context, product *domain.Product) error
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
}

type MenuItemRepository interface {
	Set(ctx context.Context, item *domain.MenuItem) error
	List(ctx context.Context) ([]domain.MenuItem, error)
	ListAvailable(ctx context.Context) ([]domain.MenuItem, error)
}
