package geocoder

import "context"

// Geocoder translates a free-text address into a point. found=false means
// the provider knows no point for the address; err covers transport and
// provider failures.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (lat, lon float64, found bool, err error)
}
