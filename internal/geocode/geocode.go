// Package geocode resolves street addresses to coordinates.
package geocode

import (
	"context"
	"errors"
)

// ErrAddressNotFound is returned when the provider has no match for an address.
var ErrAddressNotFound = errors.New("address not found")

// Result is a resolved coordinate pair.
type Result struct {
	Latitude  float64
	Longitude float64
}

// Geocoder resolves a free-form address into coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (Result, error)
}
