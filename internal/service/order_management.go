package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/valeriy131100/star-burger/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrOrderFinished = errors.New("order is already finished")
	ErrCannotFulfill = errors.New("restaurant does not sell every product of the order")
	ErrUnknownStatus = errors.New("unknown order status")
)

// AssignRestaurant hands an order to a restaurant. Only a restaurant whose
// available menu covers every product of the order qualifies; finished
// orders cannot be reassigned.
func (s *OrderService) AssignRestaurant(ctx context.Context, orderID, restaurantID primitive.ObjectID) error {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("failed to load order: %w", err)
	}
	if order.Finished() {
		return ErrOrderFinished
	}

	restaurant, err := s.restaurants.GetByID(ctx, restaurantID)
	if err != nil {
		return fmt.Errorf("failed to load restaurant: %w", err)
	}

	menuItems, err := s.menuItems.ListAvailable(ctx)
	if err != nil {
		return fmt.Errorf("failed to load menu items: %w", err)
	}

	available := BuildAvailability(menuItems)[restaurant.ID]
	for _, productID := range order.ProductIDs() {
		if !available.Contains(productID) {
			return ErrCannotFulfill
		}
	}

	if err := s.orders.AssignRestaurant(ctx, orderID, restaurantID); err != nil {
		return fmt.Errorf("failed to assign restaurant: %w", err)
	}

	s.logger.Infow("restaurant assigned",
		"order_id", orderID.Hex(),
		"restaurant_id", restaurantID.Hex(),
		"restaurant", restaurant.Name,
	)

	return nil
}

// UpdateStatus moves an order to the given status.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID primitive.ObjectID, status domain.OrderStatus) error {
	if !status.Valid() {
		return ErrUnknownStatus
	}

	if _, err := s.orders.GetByID(ctx, orderID); err != nil {
		return fmt.Errorf("failed to load order: %w", err)
	}

	if err := s.orders.UpdateStatus(ctx, orderID, status); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	s.logger.Infow("order status updated", "order_id", orderID.Hex(), "status", status)

	return nil
}
