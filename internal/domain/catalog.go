package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Restaurant struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Address      string             `bson:"address" json:"address"`
	ContactPhone string             `bson:"contact_phone" json:"contact_phone"`
}

type ProductCategory struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
}

type Product struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name        string              `bson:"name" json:"name"`
	CategoryID  *primitive.ObjectID `bson:"category_id,omitempty" json:"category_id,omitempty"`
	Price       float64             `bson:"price" json:"price"`
	Image       string              `bson:"image" json:"image"`
	Special     bool                `bson:"special" json:"special"`
	Description string              `bson:"description" json:"description"`
}

// MenuItem is a (restaurant, product) pair with an availability flag,
// unique per pair. It defines what a restaurant currently sells.
type MenuItem struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RestaurantID primitive.ObjectID `bson:"restaurant_id" json:"restaurant_id"`
	ProductID    primitive.ObjectID `bson:"product_id" json:"product_id"`
	Availability bool               `bson:"availability" json:"availability"`
}
