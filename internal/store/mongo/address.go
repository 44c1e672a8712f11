package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/valeriy131100/star-burger/internal/domain"
	"github.com/valeriy131100/star-burger/internal/repo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AddressRepository struct {
	collection *mongo.Collection
}

func NewAddressRepository(db *mongo.Database) *AddressRepository {
	return &AddressRepository{
		collection: db.Collection("addresses"),
	}
}

func (r *AddressRepository) GetByAddress(ctx context.Context, address string) (*domain.Address, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var cached domain.Address
	err := r.collection.FindOne(ctx, bson.M{"address": address}).Decode(&cached)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("address: %w", repo.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get address: %w", err)
	}

	return &cached, nil
}

func (r *AddressRepository) GetByAddresses(ctx context.Context, addresses []string) ([]domain.Address, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{"address": bson.M{"$in": addresses}})
	if err != nil {
		return nil, fmt.Errorf("failed to get addresses: %w", err)
	}
	defer cursor.Close(ctx)

	var cached []domain.Address
	if err := cursor.All(ctx, &cached); err != nil {
		return nil, fmt.Errorf("failed to decode addresses: %w", err)
	}

	return cached, nil
}

// Upsert writes the row keyed by address text. Concurrent resolvers of the
// same address overwrite each other with identical data, which is fine.
func (r *AddressRepository) Upsert(ctx context.Context, address *domain.Address) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if address.ID.IsZero() {
		address.ID = primitive.NewObjectID()
	}

	filter := bson.M{"address": address.Address}
	update := bson.M{
		"$set": bson.M{
			"latitude":   address.Latitude,
			"longitude":  address.Longitude,
			"updated_at": address.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"_id":     address.ID,
			"address": address.Address,
		},
	}
	opts := options.Update().SetUpsert(true)

	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert address: %w", err)
	}

	return nil
}
