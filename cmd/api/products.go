package main

import (
	"net/http"
	"strings"
)

// listProductsHandler godoc
//
//	@Summary		List available products
//	@Description	Products currently sold in at least one restaurant
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{array}		service.ProductView
//	@Failure		500	{object}	map[string]string
//	@Router			/products [get]
func (app *application) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := app.catalogService.AvailableProducts(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	for i := range products {
		products[i].Image = app.staticURL(products[i].Image)
	}

	if err := app.jsonRespone(w, http.StatusOK, products); err != nil {
		app.internalServerError(w, r, err)
	}
}

// staticURL prefixes relative image paths with the configured static base.
func (app *application) staticURL(path string) string {
	if path == "" || strings.Contains(path, "://") {
		return path
	}

	return strings.TrimSuffix(app.config.staticURL, "/") + "/" + strings.TrimPrefix(path, "/")
}
