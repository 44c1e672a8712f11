package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderPrice(t *testing.T) {
	order := Order{Items: []OrderItem{
		{Price: 250, Quantity: 2},
		{Price: 90, Quantity: 1},
	}}
	assert.Equal(t, 590.0, order.Price())

	empty := Order{}
	assert.Zero(t, empty.Price())
}

func TestOrderFinished(t *testing.T) {
	tests := []struct {
		status   OrderStatus
		finished bool
	}{
		{OrderStatusUnperformed, false},
		{OrderStatusInWork, false},
		{OrderStatusDelivery, false},
		{OrderStatusCompleted, true},
		{OrderStatusRejected, true},
		{OrderStatusFailed, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			order := Order{Status: tt.status}
			assert.Equal(t, tt.finished, order.Finished())
		})
	}
}

func TestAddressCoordinates(t *testing.T) {
	lat, lon := 55.757718, 37.611347

	resolved := Address{Address: "Moscow", Latitude: &lat, Longitude: &lon}
	coords, ok := resolved.Coordinates()
	assert.True(t, ok)
	assert.Equal(t, lat, coords.Latitude)
	assert.Equal(t, lon, coords.Longitude)

	unresolved := Address{Address: "nowhere"}
	_, ok = unresolved.Coordinates()
	assert.False(t, ok)
}
