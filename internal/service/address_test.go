package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valeriy131100/star-burger/internal/domain"
)

func TestResolveCachesLookups(t *testing.T) {
	addresses := newFakeAddressRepo()
	geo := &fakeGeocoder{points: map[string]domain.Coordinates{
		"Moscow, Tverskaya 1": {Latitude: 55.757, Longitude: 37.611},
	}}
	svc := NewAddressService(addresses, geo, testLogger())

	coords, err := svc.Resolve(context.Background(), "Moscow, Tverskaya 1")
	require.NoError(t, err)
	assert.Equal(t, 55.757, coords.Latitude)
	assert.Equal(t, 37.611, coords.Longitude)
	assert.Equal(t, 1, geo.calls)

	// The second lookup is served from the cache.
	coords, err = svc.Resolve(context.Background(), "Moscow, Tverskaya 1")
	require.NoError(t, err)
	assert.Equal(t, 55.757, coords.Latitude)
	assert.Equal(t, 1, geo.calls, "cached address must not hit the provider again")
}

func TestResolveCachesUnresolvableAddresses(t *testing.T) {
	addresses := newFakeAddressRepo()
	geo := &fakeGeocoder{}
	svc := NewAddressService(addresses, geo, testLogger())

	_, err := svc.Resolve(context.Background(), "nowhere at all")
	assert.ErrorIs(t, err, domain.ErrAddressNotResolved)

	row, ok := addresses.rows["nowhere at all"]
	require.True(t, ok, "a no-result answer is still cached")
	assert.Nil(t, row.Latitude)
	assert.Nil(t, row.Longitude)

	_, err = svc.Resolve(context.Background(), "nowhere at all")
	assert.ErrorIs(t, err, domain.ErrAddressNotResolved)
	assert.Equal(t, 1, geo.calls, "a cached miss must not hit the provider again")
}

func TestResolveProviderErrorCachesNothing(t *testing.T) {
	addresses := newFakeAddressRepo()
	geo := &fakeGeocoder{err: assert.AnError}
	svc := NewAddressService(addresses, geo, testLogger())

	_, err := svc.Resolve(context.Background(), "Moscow")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrAddressNotResolved)
	assert.Empty(t, addresses.rows, "transport errors must leave the cache untouched")
}

func TestResolveBatch(t *testing.T) {
	lat, lon := 55.757, 37.611
	addresses := newFakeAddressRepo(
		&domain.Address{Address: "cached", Latitude: &lat, Longitude: &lon},
		&domain.Address{Address: "cached miss"},
	)
	geo := &fakeGeocoder{points: map[string]domain.Coordinates{
		"fresh": {Latitude: 59.939, Longitude: 30.315},
	}}
	svc := NewAddressService(addresses, geo, testLogger())

	resolved, err := svc.ResolveBatch(context.Background(), []string{
		"cached", "cached", "cached miss", "fresh", "unknown", "",
	})
	require.NoError(t, err)

	assert.Len(t, resolved, 2)
	assert.Equal(t, 55.757, resolved["cached"].Latitude)
	assert.Equal(t, 59.939, resolved["fresh"].Latitude)
	assert.NotContains(t, resolved, "cached miss")
	assert.NotContains(t, resolved, "unknown")
	assert.NotContains(t, resolved, "")

	// Only the two uncached addresses reached the provider.
	assert.Equal(t, 2, geo.calls)
}

func TestResolveBatchToleratesProviderFailure(t *testing.T) {
	addresses := newFakeAddressRepo()
	geo := &fakeGeocoder{err: assert.AnError}
	svc := NewAddressService(addresses, geo, testLogger())

	resolved, err := svc.ResolveBatch(context.Background(), []string{"a", "b"})
	require.NoError(t, err, "individual lookup failures must not abort the batch")
	assert.Empty(t, resolved)
}
