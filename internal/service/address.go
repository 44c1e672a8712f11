package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/valeriy131100/star-burger/internal/domain"
	"github.com/valeriy131100/star-burger/internal/geocoder"
	"github.com/valeriy131100/star-burger/internal/repo"
	"go.uber.org/zap"
)

type AddressService struct {
	addresses repo.AddressRepository
	geocoder  geocoder.Geocoder
	logger    *zap.SugaredLogger
}

func NewAddressService(
	addresses repo.AddressRepository,
	geocoder geocoder.Geocoder,
	logger *zap.SugaredLogger,
) *AddressService {
	return &AddressService{
		addresses: addresses,
		geocoder:  geocoder,
		logger:    logger,
	}
}

// Resolve returns cached coordinates for the address, geocoding and caching
// on a miss. A provider "no results" answer is cached as nil coordinates and
// reported as domain.ErrAddressNotResolved; later calls return the same
// error without asking the provider again. Transport errors propagate and
// leave nothing cached.
func (s *AddressService) Resolve(ctx context.Context, address string) (domain.Coordinates, error) {
	cached, err := s.addresses.GetByAddress(ctx, address)
	if err == nil {
		coords, ok := cached.Coordinates()
		if !ok {
			return domain.Coordinates{}, domain.ErrAddressNotResolved
		}
		return coords, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return domain.Coordinates{}, fmt.Errorf("failed to check address cache: %w", err)
	}

	lat, lon, found, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("failed to geocode address: %w", err)
	}

	row := &domain.Address{
		Address:   address,
		UpdatedAt: time.Now(),
	}
	if found {
		row.Latitude = &lat
		row.Longitude = &lon
	}

	if err := s.addresses.Upsert(ctx, row); err != nil {
		return domain.Coordinates{}, fmt.Errorf("failed to cache address: %w", err)
	}

	if !found {
		s.logger.Infow("address has no coordinates", "address", address)
		return domain.Coordinates{}, domain.ErrAddressNotResolved
	}

	return domain.Coordinates{Latitude: lat, Longitude: lon}, nil
}

// ResolveBatch resolves a set of addresses with one cache query up front.
// The result map holds only resolvable addresses; a missing key means the
// address could not be resolved, whether the provider had no answer or the
// lookup failed outright. Individual failures never abort the batch.
func (s *AddressService) ResolveBatch(ctx context.Context, addresses []string) (map[string]domain.Coordinates, error) {
	distinct := make([]string, 0, len(addresses))
	seen := make(map[string]bool, len(addresses))
	for _, address := range addresses {
		if address == "" || seen[address] {
			continue
		}
		seen[address] = true
		distinct = append(distinct, address)
	}

	cached, err := s.addresses.GetByAddresses(ctx, distinct)
	if err != nil {
		return nil, fmt.Errorf("failed to load address cache: %w", err)
	}

	resolved := make(map[string]domain.Coordinates, len(distinct))
	known := make(map[string]bool, len(cached))
	for i := range cached {
		known[cached[i].Address] = true
		if coords, ok := cached[i].Coordinates(); ok {
			resolved[cached[i].Address] = coords
		}
	}

	for _, address := range distinct {
		if known[address] {
			continue
		}
		coords, err := s.Resolve(ctx, address)
		if err != nil {
			if !errors.Is(err, domain.ErrAddressNotResolved) {
				s.logger.Warnw("address lookup failed", "address", address, "error", err)
			}
			continue
		}
		resolved[address] = coords
	}

	return resolved, nil
}
