package domain

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrAddressNotResolved means the geocoding provider knows no point for
// the address. The row stays cached with nil coordinates so the provider
// is not asked again.
var ErrAddressNotResolved = errors.New("address could not be resolved to coordinates")

type Coordinates struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// Address caches a geocoding lookup for a free-text address. Latitude and
// longitude are either both set or both nil; both nil means the provider
// returned no results.
type Address struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Address   string             `bson:"address" json:"address"`
	Latitude  *float64           `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude *float64           `bson:"longitude,omitempty" json:"longitude,omitempty"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// Coordinates returns the cached point, or ok=false when the address is
// recorded as unresolvable.
func (a *Address) Coordinates() (Coordinates, bool) {
	if a.Latitude == nil || a.Longitude == nil {
		return Coordinates{}, false
	}
	return Coordinates{Latitude: *a.Latitude, Longitude: *a.Longitude}, true
}
