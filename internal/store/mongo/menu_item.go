package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/valeriy131100/star-burger/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MenuItemRepository struct {
	collection *mongo.Collection
}

func NewMenuItemRepository(db *mongo.Database) *MenuItemRepository {
	return &MenuItemRepository{
		collection: db.Collection("menu_items"),
	}
}

// Set upserts the availability flag for a (restaurant, product) pair. The
// unique compound index keeps the pair single-rowed.
func (r *MenuItemRepository) Set(ctx context.Context, item *domain.MenuItem) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"restaurant_id": item.RestaurantID,
		"product_id":    item.ProductID,
	}
	update := bson.M{
		"$set": bson.M{"availability": item.Availability},
		"$setOnInsert": bson.M{
			"restaurant_id": item.RestaurantID,
			"product_id":    item.ProductID,
		},
	}
	opts := options.Update().SetUpsert(true)

	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to set menu item: %w", err)
	}

	return nil
}

func (r *MenuItemRepository) List(ctx context.Context) ([]domain.MenuItem, error) {
	return r.find(ctx, bson.M{})
}

func (r *MenuItemRepository) ListAvailable(ctx context.Context) ([]domain.MenuItem, error) {
	return r.find(ctx, bson.M{"availability": true})
}

func (r *MenuItemRepository) find(ctx context.Context, filter bson.M) ([]domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []domain.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode menu items: %w", err)
	}

	return items, nil
}
