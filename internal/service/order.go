package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"github.com/valeriy131100/star-burger/internal/domain"
	"github.com/valeriy131100/star-burger/internal/queue"
	"github.com/valeriy131100/star-burger/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// FieldErrors collects per-field validation messages for a 400 response.
type FieldErrors map[string][]string

func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "invalid fields: " + strings.Join(fields, ", ")
}

type CreateOrderInput struct {
	Firstname   string
	Lastname    string
	Phonenumber string
	Address     string
	Products    []OrderProductInput
}

type OrderProductInput struct {
	ProductID string
	Quantity  int
}

type OrderService struct {
	orders      repo.OrderRepository
	products    repo.ProductRepository
	restaurants repo.RestaurantRepository
	menuItems   repo.MenuItemRepository
	broker      queue.Broker
	phoneRegion string
	logger      *zap.SugaredLogger
}

func NewOrderService(
	orders repo.OrderRepository,
	products repo.ProductRepository,
	restaurants repo.RestaurantRepository,
	menuItems repo.MenuItemRepository,
	broker queue.Broker,
	phoneRegion string,
	logger *zap.SugaredLogger,
) *OrderService {
	return &OrderService{
		orders:      orders,
		products:    products,
		restaurants: restaurants,
		menuItems:   menuItems,
		broker:      broker,
		phoneRegion: phoneRegion,
		logger:      logger,
	}
}

// PlaceOrder validates the input and persists the order with its items in
// one write; on any validation failure it returns FieldErrors and persists
// nothing. Item prices are snapshotted from the current product prices.
// Orders are always accepted unassigned: whether any restaurant can fulfill
// them is a back-office concern, not an intake one.
func (s *OrderService) PlaceOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error) {
	fieldErrs := make(FieldErrors)

	phone, err := s.validatePhone(input.Phonenumber)
	if err != nil {
		fieldErrs.Add("phonenumber", err.Error())
	}

	productIDs := s.validateProducts(input.Products, fieldErrs)

	var products []domain.Product
	if len(fieldErrs) == 0 {
		products, err = s.products.GetByIDs(ctx, productIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load products: %w", err)
		}

		byID := make(map[primitive.ObjectID]domain.Product, len(products))
		for _, product := range products {
			byID[product.ID] = product
		}
		for _, id := range productIDs {
			if _, ok := byID[id]; !ok {
				fieldErrs.Add("products", fmt.Sprintf("product %s does not exist", id.Hex()))
			}
		}
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	byID := make(map[primitive.ObjectID]domain.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	items := make([]domain.OrderItem, 0, len(input.Products))
	for i, productInput := range input.Products {
		product := byID[productIDs[i]]
		items = append(items, domain.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  productInput.Quantity,
		})
	}

	order := &domain.Order{
		Firstname:   input.Firstname,
		Lastname:    input.Lastname,
		Phonenumber: phone,
		Address:     input.Address,
		Status:      domain.OrderStatusUnperformed,
		PayBy:       domain.PaymentNotChose,
		Items:       items,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	s.logger.Infow("order placed", "order_id", order.ID.Hex(), "items", len(items), "price", order.Price())

	s.warmAddressCache(ctx, order.Address)

	return order, nil
}

func (s *OrderService) validatePhone(raw string) (string, error) {
	parsed, err := phonenumbers.Parse(raw, s.phoneRegion)
	if err != nil {
		return "", fmt.Errorf("invalid phone number: %v", err)
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return "", fmt.Errorf("phone number is not valid for region %s", s.phoneRegion)
	}

	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}

// validateProducts returns an ObjectID per input position; positions with
// errors hold the zero id and are reported in fieldErrs.
func (s *OrderService) validateProducts(inputs []OrderProductInput, fieldErrs FieldErrors) []primitive.ObjectID {
	if len(inputs) == 0 {
		fieldErrs.Add("products", "at least one product is required")
		return nil
	}

	ids := make([]primitive.ObjectID, len(inputs))
	seen := make(map[primitive.ObjectID]bool, len(inputs))
	for i, input := range inputs {
		if input.Quantity < 1 {
			fieldErrs.Add("products", fmt.Sprintf("product %s: quantity must be at least 1", input.ProductID))
		}

		id, err := primitive.ObjectIDFromHex(input.ProductID)
		if err != nil {
			fieldErrs.Add("products", fmt.Sprintf("invalid product id %q", input.ProductID))
			continue
		}

		if seen[id] {
			fieldErrs.Add("products", fmt.Sprintf("product %s is listed more than once", input.ProductID))
			continue
		}
		seen[id] = true
		ids[i] = id
	}

	return ids
}

// warmAddressCache queues a geocoding lookup so the manager report finds the
// order address already cached. Best effort: the order stands either way.
func (s *OrderService) warmAddressCache(ctx context.Context, address string) {
	message, err := json.Marshal(domain.GeocodingMessage{Address: address})
	if err != nil {
		s.logger.Errorw("failed to marshal geocoding message", "address", address, "error", err)
		return
	}

	if err := s.broker.Publish(ctx, queue.QueueGeocoding, message); err != nil {
		s.logger.Warnw("failed to queue geocoding lookup", "address", address, "error", err)
	}
}
