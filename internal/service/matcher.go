package service

import (
	"github.com/valeriy131100/star-burger/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductSet map[primitive.ObjectID]struct{}

func (s ProductSet) Contains(id primitive.ObjectID) bool {
	_, ok := s[id]
	return ok
}

// BuildAvailability derives restaurant -> set of available product ids from
// menu items. Items with availability=false are ignored.
func BuildAvailability(items []domain.MenuItem) map[primitive.ObjectID]ProductSet {
	availability := make(map[primitive.ObjectID]ProductSet)
	for _, item := range items {
		if !item.Availability {
			continue
		}
		set, ok := availability[item.RestaurantID]
		if !ok {
			set = make(ProductSet)
			availability[item.RestaurantID] = set
		}
		set[item.ProductID] = struct{}{}
	}
	return availability
}

// FulfillingRestaurants returns the restaurants whose available product set
// is a superset of the order's product set. An order with no products has no
// fulfilling restaurant. The result order is unspecified; an empty result is
// a valid outcome, not an error.
func FulfillingRestaurants(productIDs []primitive.ObjectID, availability map[primitive.ObjectID]ProductSet) []primitive.ObjectID {
	if len(productIDs) == 0 {
		return nil
	}

	var matched []primitive.ObjectID
	for restaurantID, available := range availability {
		fulfills := true
		for _, productID := range productIDs {
			if !available.Contains(productID) {
				fulfills = false
				break
			}
		}
		if fulfills {
			matched = append(matched, restaurantID)
		}
	}
	return matched
}
