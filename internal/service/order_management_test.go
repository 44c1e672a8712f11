package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valeriy131100/star-burger/internal/domain"
	"github.com/valeriy131100/star-burger/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAssignRestaurant(t *testing.T) {
	product := primitive.NewObjectID()
	restaurant := domain.Restaurant{ID: primitive.NewObjectID(), Name: "Near"}

	order := &domain.Order{
		ID:     primitive.NewObjectID(),
		Status: domain.OrderStatusUnperformed,
		Items:  []domain.OrderItem{{ProductID: product, Quantity: 1}},
	}
	orders := &fakeOrderRepo{created: []*domain.Order{order}}
	restaurants := &fakeRestaurantRepo{restaurants: []domain.Restaurant{restaurant}}
	menuItems := &fakeMenuItemRepo{items: []domain.MenuItem{
		{RestaurantID: restaurant.ID, ProductID: product, Availability: true},
	}}

	svc := NewOrderService(orders, newFakeProductRepo(), restaurants, menuItems, newFakeBroker(), "RU", testLogger())

	require.NoError(t, svc.AssignRestaurant(context.Background(), order.ID, restaurant.ID))
	assert.Equal(t, restaurant.ID, orders.assigned[order.ID])
}

func TestAssignRestaurantRejections(t *testing.T) {
	product := primitive.NewObjectID()
	other := primitive.NewObjectID()
	restaurant := domain.Restaurant{ID: primitive.NewObjectID(), Name: "Near"}

	tests := []struct {
		name        string
		order       *domain.Order
		orderID     primitive.ObjectID
		menuItems   []domain.MenuItem
		expectedErr error
	}{
		{
			name: "unknown order",
			order: &domain.Order{
				ID:     primitive.NewObjectID(),
				Status: domain.OrderStatusUnperformed,
				Items:  []domain.OrderItem{{ProductID: product, Quantity: 1}},
			},
			orderID:     primitive.NewObjectID(),
			expectedErr: repo.ErrNotFound,
		},
		{
			name: "finished order",
			order: &domain.Order{
				ID:     primitive.NewObjectID(),
				Status: domain.OrderStatusCompleted,
				Items:  []domain.OrderItem{{ProductID: product, Quantity: 1}},
			},
			expectedErr: ErrOrderFinished,
		},
		{
			name: "restaurant misses a product",
			order: &domain.Order{
				ID:     primitive.NewObjectID(),
				Status: domain.OrderStatusUnperformed,
				Items: []domain.OrderItem{
					{ProductID: product, Quantity: 1},
					{ProductID: other, Quantity: 1},
				},
			},
			menuItems: []domain.MenuItem{
				{RestaurantID: restaurant.ID, ProductID: product, Availability: true},
			},
			expectedErr: ErrCannotFulfill,
		},
		{
			name: "product only on the shelved menu",
			order: &domain.Order{
				ID:     primitive.NewObjectID(),
				Status: domain.OrderStatusUnperformed,
				Items:  []domain.OrderItem{{ProductID: product, Quantity: 1}},
			},
			menuItems: []domain.MenuItem{
				{RestaurantID: restaurant.ID, ProductID: product, Availability: false},
			},
			expectedErr: ErrCannotFulfill,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderID := tt.orderID
			if orderID.IsZero() {
				orderID = tt.order.ID
			}
			orders := &fakeOrderRepo{created: []*domain.Order{tt.order}}
			restaurants := &fakeRestaurantRepo{restaurants: []domain.Restaurant{restaurant}}
			menuItems := &fakeMenuItemRepo{items: tt.menuItems}
			svc := NewOrderService(orders, newFakeProductRepo(), restaurants, menuItems, newFakeBroker(), "RU", testLogger())

			err := svc.AssignRestaurant(context.Background(), orderID, restaurant.ID)
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Empty(t, orders.assigned)
		})
	}
}

func TestAssignRestaurantUnknownRestaurant(t *testing.T) {
	order := &domain.Order{
		ID:     primitive.NewObjectID(),
		Status: domain.OrderStatusUnperformed,
		Items:  []domain.OrderItem{{ProductID: primitive.NewObjectID(), Quantity: 1}},
	}
	orders := &fakeOrderRepo{created: []*domain.Order{order}}
	svc := NewOrderService(orders, newFakeProductRepo(), &fakeRestaurantRepo{}, &fakeMenuItemRepo{}, newFakeBroker(), "RU", testLogger())

	err := svc.AssignRestaurant(context.Background(), order.ID, primitive.NewObjectID())
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestUpdateOrderStatus(t *testing.T) {
	order := &domain.Order{ID: primitive.NewObjectID(), Status: domain.OrderStatusUnperformed}
	orders := &fakeOrderRepo{created: []*domain.Order{order}}
	svc := NewOrderService(orders, newFakeProductRepo(), &fakeRestaurantRepo{}, &fakeMenuItemRepo{}, newFakeBroker(), "RU", testLogger())

	require.NoError(t, svc.UpdateStatus(context.Background(), order.ID, domain.OrderStatusInWork))
	assert.Equal(t, domain.OrderStatusInWork, orders.statuses[order.ID])

	err := svc.UpdateStatus(context.Background(), order.ID, domain.OrderStatus("shipped"))
	assert.ErrorIs(t, err, ErrUnknownStatus)

	err = svc.UpdateStatus(context.Background(), primitive.NewObjectID(), domain.OrderStatusInWork)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
