package main

import (
	"errors"
	"net/http"

	"github.com/valeriy131100/star-burger/internal/service"
)

type OrderProductRequest struct {
	Product  string `json:"product" validate:"required"`
	Quantity int    `json:"quantity"`
}

type CreateOrderRequest struct {
	Firstname   string                `json:"firstname" validate:"required,max=100"`
	Lastname    string                `json:"lastname" validate:"required,max=100"`
	Phonenumber string                `json:"phonenumber" validate:"required"`
	Address     string                `json:"address" validate:"required,max=200"`
	Products    []OrderProductRequest `json:"products" validate:"required,min=1,dive"`
}

type CreateOrderResponse struct {
	ID          string `json:"id"`
	Firstname   string `json:"firstname"`
	Lastname    string `json:"lastname"`
	Phonenumber string `json:"phonenumber"`
	Address     string `json:"address"`
}

// createOrderHandler godoc
//
//	@Summary		Place an order
//	@Description	Validates and persists a customer order with its line items
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateOrderRequest	true	"Order payload"
//	@Success		200		{object}	CreateOrderResponse
//	@Failure		400		{object}	map[string][]string
//	@Failure		500		{object}	map[string]string
//	@Router			/orders [post]
func (app *application) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.fieldErrorsResponse(w, r, validationFieldErrors(err))
		return
	}

	input := service.CreateOrderInput{
		Firstname:   req.Firstname,
		Lastname:    req.Lastname,
		Phonenumber: req.Phonenumber,
		Address:     req.Address,
	}
	for _, product := range req.Products {
		input.Products = append(input.Products, service.OrderProductInput{
			ProductID: product.Product,
			Quantity:  product.Quantity,
		})
	}

	order, err := app.orderService.PlaceOrder(r.Context(), input)
	if err != nil {
		var fieldErrs service.FieldErrors
		if errors.As(err, &fieldErrs) {
			app.fieldErrorsResponse(w, r, fieldErrs)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	response := CreateOrderResponse{
		ID:          order.ID.Hex(),
		Firstname:   order.Firstname,
		Lastname:    order.Lastname,
		Phonenumber: order.Phonenumber,
		Address:     order.Address,
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
