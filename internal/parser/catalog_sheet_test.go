package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRows(t *testing.T) {
	rows := [][]interface{}{
		{"Name", "Price", "Description", "Image", "Special"},
		{"Burgers"},
		{"Classic Burger", "250", "Beef patty", "http://img/burger.png", "1"},
		{"Double Burger", "350,50", "Two patties", "", ""},
		{"Drinks", ""},
		{"Cola", "90", "", "http://img/cola.png", "yes"},
	}

	catalog, err := parseRows(rows)
	require.NoError(t, err)

	assert.Equal(t, []string{"Burgers", "Drinks"}, catalog.Categories)
	require.Len(t, catalog.Products, 3)

	burger := catalog.Products[0]
	assert.Equal(t, "Classic Burger", burger.Name)
	assert.Equal(t, "Burgers", burger.Category)
	assert.Equal(t, 250.0, burger.Price)
	assert.True(t, burger.Special)

	double := catalog.Products[1]
	assert.Equal(t, 350.5, double.Price, "comma decimal separators are accepted")
	assert.False(t, double.Special)

	cola := catalog.Products[2]
	assert.Equal(t, "Drinks", cola.Category)
	assert.True(t, cola.Special)
}

func TestParseRowsSkipsBlankRows(t *testing.T) {
	rows := [][]interface{}{
		{"Name", "Price"},
		{},
		{"", ""},
		{"Snacks"},
		{"Fries", "120", "", "", ""},
	}

	catalog, err := parseRows(rows)
	require.NoError(t, err)
	require.Len(t, catalog.Products, 1)
	assert.Equal(t, "Fries", catalog.Products[0].Name)
}

func TestParseRowsErrors(t *testing.T) {
	tests := []struct {
		name string
		rows [][]interface{}
	}{
		{
			name: "bad price",
			rows: [][]interface{}{
				{"Name", "Price"},
				{"Burger", "free", "", "", ""},
			},
		},
		{
			name: "negative price",
			rows: [][]interface{}{
				{"Name", "Price"},
				{"Burger", "-10", "", "", ""},
			},
		},
		{
			name: "no products",
			rows: [][]interface{}{
				{"Name", "Price"},
				{"Burgers"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseRows(tt.rows)
			assert.Error(t, err)
		})
	}
}

func TestParseSpecial(t *testing.T) {
	assert.True(t, parseSpecial("1"))
	assert.True(t, parseSpecial("TRUE"))
	assert.True(t, parseSpecial("+"))
	assert.False(t, parseSpecial("0"))
	assert.False(t, parseSpecial(""))
	assert.False(t, parseSpecial("no"))
}
