package parser

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// ParsedProduct is one product row of a catalog spreadsheet. Category is
// the name of the last category header row seen above it.
type ParsedProduct struct {
	Name        string
	Category    string
	Price       float64
	Description string
	Image       string
	Special     bool
}

type ParsedCatalog struct {
	Categories []string
	Products   []ParsedProduct
}

type CatalogSheetParser struct {
	service *sheets.Service
}

type Config struct {
	CredentialsJSON []byte
}

func New(cfg Config) (*CatalogSheetParser, error) {
	ctx := context.Background()

	service, err := sheets.NewService(ctx, option.WithCredentialsJSON(cfg.CredentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &CatalogSheetParser{
		service: service,
	}, nil
}

// ParseCatalog reads a spreadsheet laid out as category header rows (a single
// filled cell) followed by product rows: name, price, description, image URL,
// special flag.
func (p *CatalogSheetParser) ParseCatalog(ctx context.Context, spreadsheetID string) (*ParsedCatalog, error) {
	readRange := "A:E"
	resp, err := p.service.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	if len(resp.Values) == 0 {
		return nil, fmt.Errorf("no data found in spreadsheet")
	}

	return parseRows(resp.Values)
}

func parseRows(rows [][]interface{}) (*ParsedCatalog, error) {
	catalog := &ParsedCatalog{}
	seenCategories := make(map[string]bool)
	var currentCategory string

	// skip header
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 || cell(row, 0) == "" {
			continue
		}

		// category row: only the first cell is filled
		if len(row) == 1 || cell(row, 1) == "" {
			currentCategory = cell(row, 0)
			if !seenCategories[currentCategory] {
				seenCategories[currentCategory] = true
				catalog.Categories = append(catalog.Categories, currentCategory)
			}
			continue
		}

		price, err := parsePrice(cell(row, 1))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		catalog.Products = append(catalog.Products, ParsedProduct{
			Name:        cell(row, 0),
			Category:    currentCategory,
			Price:       price,
			Description: cell(row, 2),
			Image:       cell(row, 3),
			Special:     parseSpecial(cell(row, 4)),
		})
	}

	if len(catalog.Products) == 0 {
		return nil, fmt.Errorf("no product rows found in spreadsheet")
	}

	return catalog, nil
}

func cell(row []interface{}, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", row[idx]))
}

func parsePrice(raw string) (float64, error) {
	normalized := strings.ReplaceAll(raw, ",", ".")
	price, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, fmt.Errorf("bad price %q: %w", raw, err)
	}
	if price < 0 {
		return 0, fmt.Errorf("negative price %q", raw)
	}
	return price, nil
}

func parseSpecial(raw string) bool {
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "+":
		return true
	}
	return false
}
