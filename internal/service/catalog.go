package service

import (
	"context"
	"fmt"

	"github.com/valeriy131100/star-burger/internal/domain"
	"github.com/valeriy131100/star-burger/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CatalogService struct {
	restaurants repo.RestaurantRepository
	products    repo.ProductRepository
	categories  repo.ProductCategoryRepository
	menuItems   repo.MenuItemRepository
}

func NewCatalogService(
	restaurants repo.RestaurantRepository,
	products repo.ProductRepository,
	categories repo.ProductCategoryRepository,
	menuItems repo.MenuItemRepository,
) *CatalogService {
	return &CatalogService{
		restaurants: restaurants,
		products:    products,
		categories:  categories,
		menuItems:   menuItems,
	}
}

// Restaurants lists all restaurants sorted by name.
func (s *CatalogService) Restaurants(ctx context.Context) ([]domain.Restaurant, error) {
	restaurants, err := s.restaurants.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load restaurants: %w", err)
	}

	return restaurants, nil
}

type CategoryView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ProductView struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Price       float64       `json:"price"`
	Special     bool          `json:"special_status"`
	Description string        `json:"description"`
	Category    *CategoryView `json:"category"`
	Image       string        `json:"image"`
}

// AvailableProducts lists products sold in at least one restaurant right
// now, with their categories attached.
func (s *CatalogService) AvailableProducts(ctx context.Context) ([]ProductView, error) {
	menuItems, err := s.menuItems.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu items: %w", err)
	}

	productIDs := make([]primitive.ObjectID, 0, len(menuItems))
	seen := make(map[primitive.ObjectID]bool, len(menuItems))
	for _, item := range menuItems {
		if seen[item.ProductID] {
			continue
		}
		seen[item.ProductID] = true
		productIDs = append(productIDs, item.ProductID)
	}

	if len(productIDs) == 0 {
		return []ProductView{}, nil
	}

	products, err := s.products.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	categoriesByID := make(map[primitive.ObjectID]domain.ProductCategory, len(categories))
	for _, category := range categories {
		categoriesByID[category.ID] = category
	}

	views := make([]ProductView, 0, len(products))
	for _, product := range products {
		view := ProductView{
			ID:          product.ID.Hex(),
			Name:        product.Name,
			Price:       product.Price,
			Special:     product.Special,
			Description: product.Description,
			Image:       product.Image,
		}
		if product.CategoryID != nil {
			if category, ok := categoriesByID[*product.CategoryID]; ok {
				view.Category = &CategoryView{ID: category.ID.Hex(), Name: category.Name}
			}
		}
		views = append(views, view)
	}

	return views, nil
}

type MatrixRow struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	Price        float64 `json:"price"`
	Availability []bool  `json:"availability"`
}

type AvailabilityMatrix struct {
	Restaurants []domain.Restaurant `json:"restaurants"`
	Products    []MatrixRow         `json:"products"`
}

// Matrix builds the manager products view: restaurants sorted by name as
// columns, every product as a row with its availability vector in that
// column order, defaulting to false.
func (s *CatalogService) Matrix(ctx context.Context) (*AvailabilityMatrix, error) {
	restaurants, err := s.restaurants.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load restaurants: %w", err)
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	menuItems, err := s.menuItems.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu items: %w", err)
	}

	availability := make(map[primitive.ObjectID]map[primitive.ObjectID]bool, len(products))
	for _, item := range menuItems {
		perProduct, ok := availability[item.ProductID]
		if !ok {
			perProduct = make(map[primitive.ObjectID]bool)
			availability[item.ProductID] = perProduct
		}
		perProduct[item.RestaurantID] = item.Availability
	}

	rows := make([]MatrixRow, 0, len(products))
	for _, product := range products {
		row := MatrixRow{
			ProductID:    product.ID.Hex(),
			ProductName:  product.Name,
			Price:        product.Price,
			Availability: make([]bool, len(restaurants)),
		}
		for i, restaurant := range restaurants {
			row.Availability[i] = availability[product.ID][restaurant.ID]
		}
		rows = append(rows, row)
	}

	return &AvailabilityMatrix{
		Restaurants: restaurants,
		Products:    rows,
	}, nil
}
