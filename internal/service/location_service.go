package service

import (
	"context"
	"errors"

	"spacedout/internal/cache"
	"spacedout/internal/geocode"
	"spacedout/internal/middleware"
	"spacedout/internal/models"
	"spacedout/internal/repository"
	"spacedout/internal/validation"
)

// LocationService handles location creation (with geocoding) and reads.
type LocationService struct {
	locationRepo repository.LocationRepository
	geocoder     geocode.Geocoder
}

// NewLocationService returns a new LocationService.
func NewLocationService(locationRepo repository.LocationRepository, geocoder geocode.Geocoder) *LocationService {
	return &LocationService{locationRepo: locationRepo, geocoder: geocoder}
}

// Create geocodes the address and persists the location. An address the
// provider cannot resolve is a validation error and no row is written.
func (s *LocationService) Create(ctx context.Context, name, address string) (*models.Location, error) {
	if err := validation.ValidateName(name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if address == "" {
		return nil, models.NewValidationError("address is required")
	}

	resolved, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		if errors.Is(err, geocode.ErrAddressNotFound) {
			return nil, models.NewValidationError("invalid address")
		}
		return nil, models.NewInternalError(err)
	}

	location := models.NewLocation(name, address, resolved.Latitude, resolved.Longitude)
	if err := s.locationRepo.Create(ctx, location); err != nil {
		return nil, err
	}
	cache.InvalidateLocations(ctx)

	middleware.Logger.InfoContext(ctx, "location created",
		"location_id", location.ID, "name", location.Name)
	return location, nil
}

// Get returns the full serialized location, comments and favoriting users
// included, through the cache.
func (s *LocationService) Get(ctx context.Context, id uint) (map[string]any, error) {
	var payload map[string]any
	err := cache.Aside(ctx, cache.LocationKey(id), &payload, cache.LocationTTL, func() error {
		location, err := s.locationRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		payload = location.Serialize()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// List returns every location in simple form, through the cache.
func (s *LocationService) List(ctx context.Context) ([]map[string]any, error) {
	var payload []map[string]any
	err := cache.Aside(ctx, cache.LocationsKey, &payload, cache.LocationTTL, func() error {
		locations, err := s.locationRepo.List(ctx)
		if err != nil {
			return err
		}
		payload = make([]map[string]any, 0, len(locations))
		for i := range locations {
			payload = append(payload, locations[i].SimpleSerialize())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// Delete removes the location and its comments and favorites join rows.
func (s *LocationService) Delete(ctx context.Context, id uint) error {
	if _, err := s.locationRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.locationRepo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateLocation(ctx, id)
	cache.InvalidateLocations(ctx)
	return nil
}
