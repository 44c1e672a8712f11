package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valeriy131100/star-burger/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func coordsPtr(v float64) *float64 { return &v }

func TestUnfinishedOrdersReport(t *testing.T) {
	product := primitive.NewObjectID()

	near := domain.Restaurant{ID: primitive.NewObjectID(), Name: "Near", Address: "near addr"}
	far := domain.Restaurant{ID: primitive.NewObjectID(), Name: "Far", Address: "far addr"}
	noCoords := domain.Restaurant{ID: primitive.NewObjectID(), Name: "Lost", Address: "lost addr"}
	closed := domain.Restaurant{ID: primitive.NewObjectID(), Name: "Closed", Address: "closed addr"}

	restaurants := &fakeRestaurantRepo{restaurants: []domain.Restaurant{near, far, noCoords, closed}}
	menuItems := &fakeMenuItemRepo{items: []domain.MenuItem{
		{RestaurantID: near.ID, ProductID: product, Availability: true},
		{RestaurantID: far.ID, ProductID: product, Availability: true},
		{RestaurantID: noCoords.ID, ProductID: product, Availability: true},
		{RestaurantID: closed.ID, ProductID: product, Availability: false},
	}}

	order := domain.Order{
		ID:          primitive.NewObjectID(),
		Firstname:   "Ivan",
		Phonenumber: "+79161234567",
		Address:     "order addr",
		Status:      domain.OrderStatusUnperformed,
		PayBy:       domain.PaymentCash,
		Items:       []domain.OrderItem{{ProductID: product, Name: "Burger", Price: 250, Quantity: 2}},
	}
	orders := &fakeOrderRepo{unfinished: []domain.Order{order}}

	// Restaurant "Near" sits on the customer, "Far" roughly 111 km north,
	// "Lost" is cached as unresolvable.
	addresses := newFakeAddressRepo(
		&domain.Address{Address: "order addr", Latitude: coordsPtr(55.0), Longitude: coordsPtr(37.0)},
		&domain.Address{Address: "near addr", Latitude: coordsPtr(55.0), Longitude: coordsPtr(37.0)},
		&domain.Address{Address: "far addr", Latitude: coordsPtr(56.0), Longitude: coordsPtr(37.0)},
		&domain.Address{Address: "lost addr"},
	)
	geo := &fakeGeocoder{}
	addressSvc := NewAddressService(addresses, geo, testLogger())

	svc := NewReportService(orders, restaurants, menuItems, addressSvc, testLogger())

	reports, err := svc.UnfinishedOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 1)

	report := reports[0]
	assert.Equal(t, order.ID.Hex(), report.ID)
	assert.Equal(t, 500.0, report.Price)
	assert.Equal(t, domain.OrderStatusUnperformed, report.Status)

	require.Len(t, report.Restaurants, 3)
	assert.Equal(t, "Near: 0.00 km", report.Restaurants[0])
	assert.Regexp(t, `^Far: 11[0-2]\.\d{2} km$`, report.Restaurants[1])
	assert.Equal(t, "Lost: address is not resolvable", report.Restaurants[2])

	assert.Zero(t, geo.calls, "every address was cached")
}

func TestUnfinishedOrdersUnresolvableOrderAddress(t *testing.T) {
	product := primitive.NewObjectID()
	restaurant := domain.Restaurant{ID: primitive.NewObjectID(), Name: "Near", Address: "near addr"}

	orders := &fakeOrderRepo{unfinished: []domain.Order{{
		ID:      primitive.NewObjectID(),
		Address: "order addr",
		Status:  domain.OrderStatusUnperformed,
		Items:   []domain.OrderItem{{ProductID: product, Quantity: 1}},
	}}}
	restaurants := &fakeRestaurantRepo{restaurants: []domain.Restaurant{restaurant}}
	menuItems := &fakeMenuItemRepo{items: []domain.MenuItem{
		{RestaurantID: restaurant.ID, ProductID: product, Availability: true},
	}}
	addresses := newFakeAddressRepo(
		&domain.Address{Address: "order addr"},
		&domain.Address{Address: "near addr", Latitude: coordsPtr(55.0), Longitude: coordsPtr(37.0)},
	)
	addressSvc := NewAddressService(addresses, &fakeGeocoder{}, testLogger())

	svc := NewReportService(orders, restaurants, menuItems, addressSvc, testLogger())

	reports, err := svc.UnfinishedOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 1)

	// Without the customer point no distance can be computed at all.
	assert.Equal(t, []string{"order address is not resolvable"}, reports[0].Restaurants)
}

func TestUnfinishedOrdersNoFulfillingRestaurant(t *testing.T) {
	restaurant := domain.Restaurant{ID: primitive.NewObjectID(), Name: "Near", Address: "near addr"}

	orders := &fakeOrderRepo{unfinished: []domain.Order{{
		ID:      primitive.NewObjectID(),
		Address: "order addr",
		Status:  domain.OrderStatusUnperformed,
		Items:   []domain.OrderItem{{ProductID: primitive.NewObjectID(), Quantity: 1}},
	}}}
	restaurants := &fakeRestaurantRepo{restaurants: []domain.Restaurant{restaurant}}
	menuItems := &fakeMenuItemRepo{items: []domain.MenuItem{
		{RestaurantID: restaurant.ID, ProductID: primitive.NewObjectID(), Availability: true},
	}}
	addresses := newFakeAddressRepo(
		&domain.Address{Address: "order addr", Latitude: coordsPtr(55.0), Longitude: coordsPtr(37.0)},
		&domain.Address{Address: "near addr", Latitude: coordsPtr(55.0), Longitude: coordsPtr(37.0)},
	)
	addressSvc := NewAddressService(addresses, &fakeGeocoder{}, testLogger())

	svc := NewReportService(orders, restaurants, menuItems, addressSvc, testLogger())

	reports, err := svc.UnfinishedOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Empty(t, reports[0].Restaurants)
}
