package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/umahmood/haversine"
	"github.com/valeriy131100/star-burger/internal/domain"
	"github.com/valeriy131100/star-burger/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	markerOrderUnresolvable      = "order address is not resolvable"
	markerRestaurantUnresolvable = "address is not resolvable"
)

type ReportService struct {
	orders      repo.OrderRepository
	restaurants repo.RestaurantRepository
	menuItems   repo.MenuItemRepository
	addresses   *AddressService
	logger      *zap.SugaredLogger
}

func NewReportService(
	orders repo.OrderRepository,
	restaurants repo.RestaurantRepository,
	menuItems repo.MenuItemRepository,
	addresses *AddressService,
	logger *zap.SugaredLogger,
) *ReportService {
	return &ReportService{
		orders:      orders,
		restaurants: restaurants,
		menuItems:   menuItems,
		addresses:   addresses,
		logger:      logger,
	}
}

type OrderReport struct {
	ID          string               `json:"id"`
	Firstname   string               `json:"firstname"`
	Lastname    string               `json:"lastname"`
	Phonenumber string               `json:"phonenumber"`
	Address     string               `json:"address"`
	Price       float64              `json:"price"`
	Status      domain.OrderStatus   `json:"status"`
	PayBy       domain.PaymentMethod `json:"pay_by"`
	Comment     string               `json:"comment"`
	Restaurants []string             `json:"restaurants"`
}

// UnfinishedOrders builds the manager report: every order not yet in a
// terminal status, annotated with the restaurants able to fulfill it and
// the distance from each to the customer. All order and restaurant
// addresses are resolved in one batch before any distance is computed.
func (s *ReportService) UnfinishedOrders(ctx context.Context) ([]OrderReport, error) {
	orders, err := s.orders.ListUnfinished(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	menuItems, err := s.menuItems.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu items: %w", err)
	}
	availability := BuildAvailability(menuItems)

	restaurants, err := s.restaurants.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load restaurants: %w", err)
	}
	restaurantsByID := make(map[primitive.ObjectID]domain.Restaurant, len(restaurants))
	for _, restaurant := range restaurants {
		restaurantsByID[restaurant.ID] = restaurant
	}

	allAddresses := make([]string, 0, len(orders)+len(restaurants))
	for _, order := range orders {
		allAddresses = append(allAddresses, order.Address)
	}
	for restaurantID := range availability {
		if restaurant, ok := restaurantsByID[restaurantID]; ok {
			allAddresses = append(allAddresses, restaurant.Address)
		}
	}

	coordinates, err := s.addresses.ResolveBatch(ctx, allAddresses)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve addresses: %w", err)
	}

	reports := make([]OrderReport, 0, len(orders))
	for i := range orders {
		order := &orders[i]
		reports = append(reports, OrderReport{
			ID:          order.ID.Hex(),
			Firstname:   order.Firstname,
			Lastname:    order.Lastname,
			Phonenumber: order.Phonenumber,
			Address:     order.Address,
			Price:       order.Price(),
			Status:      order.Status,
			PayBy:       order.PayBy,
			Comment:     order.Comment,
			Restaurants: s.annotateRestaurants(order, availability, restaurantsByID, coordinates),
		})
	}

	return reports, nil
}

func (s *ReportService) annotateRestaurants(
	order *domain.Order,
	availability map[primitive.ObjectID]ProductSet,
	restaurantsByID map[primitive.ObjectID]domain.Restaurant,
	coordinates map[string]domain.Coordinates,
) []string {
	orderCoords, ok := coordinates[order.Address]
	if !ok {
		return []string{markerOrderUnresolvable}
	}

	matched := FulfillingRestaurants(order.ProductIDs(), availability)

	type annotated struct {
		name string
		km   float64
	}
	var resolvable []annotated
	var unresolvable []string

	for _, restaurantID := range matched {
		restaurant, ok := restaurantsByID[restaurantID]
		if !ok {
			continue
		}

		restaurantCoords, ok := coordinates[restaurant.Address]
		if !ok {
			unresolvable = append(unresolvable, fmt.Sprintf("%s: %s", restaurant.Name, markerRestaurantUnresolvable))
			continue
		}

		_, km := haversine.Distance(
			haversine.Coord{Lat: restaurantCoords.Latitude, Lon: restaurantCoords.Longitude},
			haversine.Coord{Lat: orderCoords.Latitude, Lon: orderCoords.Longitude},
		)
		resolvable = append(resolvable, annotated{name: restaurant.Name, km: km})
	}

	sort.Slice(resolvable, func(i, j int) bool {
		if resolvable[i].km != resolvable[j].km {
			return resolvable[i].km < resolvable[j].km
		}
		return resolvable[i].name < resolvable[j].name
	})
	sort.Strings(unresolvable)

	annotations := make([]string, 0, len(resolvable)+len(unresolvable))
	for _, entry := range resolvable {
		annotations = append(annotations, fmt.Sprintf("%s: %.2f km", entry.name, entry.km))
	}
	annotations = append(annotations, unresolvable...)

	return annotations
}
