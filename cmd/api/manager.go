package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/valeriy131100/star-burger/internal/domain"
	"github.com/valeriy131100/star-burger/internal/repo"
	"github.com/valeriy131100/star-burger/internal/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidID = errors.New("invalid ID format")

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=75"`
	Password string `json:"password" validate:"required,max=75"`
}

type LoginResponse struct {
	Username string `json:"username"`
	IsStaff  bool   `json:"is_staff"`
}

// loginHandler godoc
//
//	@Summary		Manager login
//	@Description	Checks credentials and sets a session cookie
//	@Tags			manager
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Credentials"
//	@Success		200		{object}	LoginResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		401		{object}	map[string]string
//	@Router			/manager/login [post]
func (app *application) loginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	token, user, err := app.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			app.unauthorizedResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(app.config.sessionTTL.Seconds()),
	})

	response := LoginResponse{
		Username: user.Username,
		IsStaff:  user.IsStaff,
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// logoutHandler godoc
//
//	@Summary		Manager logout
//	@Description	Revokes the session and clears the cookie
//	@Tags			manager
//	@Produce		json
//	@Success		200	{object}	map[string]bool
//	@Router			/manager/logout [post]
func (app *application) logoutHandler(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if err := app.authService.Logout(r.Context(), cookie.Value); err != nil {
			app.logger.Warnw("failed to revoke session", "error", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	if err := app.jsonRespone(w, http.StatusOK, map[string]bool{"success": true}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listRestaurantsHandler godoc
//
//	@Summary		List restaurants
//	@Tags			manager
//	@Produce		json
//	@Success		200	{array}		domain.Restaurant
//	@Failure		401	{object}	map[string]string
//	@Router			/manager/restaurants [get]
func (app *application) listRestaurantsHandler(w http.ResponseWriter, r *http.Request) {
	restaurants, err := app.catalogService.Restaurants(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, restaurants); err != nil {
		app.internalServerError(w, r, err)
	}
}

// productsMatrixHandler godoc
//
//	@Summary		Products availability matrix
//	@Description	Every product with its availability per restaurant, columns sorted by restaurant name
//	@Tags			manager
//	@Produce		json
//	@Success		200	{object}	service.AvailabilityMatrix
//	@Failure		401	{object}	map[string]string
//	@Router			/manager/products [get]
func (app *application) productsMatrixHandler(w http.ResponseWriter, r *http.Request) {
	matrix, err := app.catalogService.Matrix(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, matrix); err != nil {
		app.internalServerError(w, r, err)
	}
}

// ordersReportHandler godoc
//
//	@Summary		Unfinished orders report
//	@Description	Orders not yet completed, rejected or failed, annotated with fulfilling restaurants and distances
//	@Tags			manager
//	@Produce		json
//	@Success		200	{array}		service.OrderReport
//	@Failure		401	{object}	map[string]string
//	@Router			/manager/orders [get]
func (app *application) ordersReportHandler(w http.ResponseWriter, r *http.Request) {
	reports, err := app.reportService.UnfinishedOrders(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, reports); err != nil {
		app.internalServerError(w, r, err)
	}
}

type CreateImportTaskRequest struct {
	SpreadsheetID string `json:"spreadsheet_id" validate:"required"`
}

// createImportTaskHandler godoc
//
//	@Summary		Create catalog import task
//	@Description	Queues a catalog import from a Google Sheets spreadsheet
//	@Tags			manager
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateImportTaskRequest	true	"Import task request"
//	@Success		201		{object}	map[string]string
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/manager/import [post]
func (app *application) createImportTaskHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateImportTaskRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	taskID, err := app.importService.CreateImportTask(r.Context(), req.SpreadsheetID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := map[string]string{
		"task_id": taskID.Hex(),
		"status":  "queued",
	}

	if err := app.jsonRespone(w, http.StatusCreated, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getImportTaskHandler godoc
//
//	@Summary		Get catalog import task status
//	@Tags			manager
//	@Produce		json
//	@Param			task_id	path		string	true	"Task ID"
//	@Success		200		{object}	domain.ImportTask
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/manager/import/{task_id} [get]
func (app *application) getImportTaskHandler(w http.ResponseWriter, r *http.Request) {
	taskIDStr := chi.URLParam(r, "task_id")
	if taskIDStr == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	taskID, err := primitive.ObjectIDFromHex(taskIDStr)
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	task, err := app.importService.GetTaskStatus(r.Context(), taskID)
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, task); err != nil {
		app.internalServerError(w, r, err)
	}
}

type AssignRestaurantRequest struct {
	RestaurantID string `json:"restaurant_id" validate:"required"`
}

// assignOrderRestaurantHandler godoc
//
//	@Summary		Assign a restaurant to an order
//	@Description	Hands the order to a restaurant whose menu covers all of its products
//	@Tags			manager
//	@Accept			json
//	@Produce		json
//	@Param			order_id	path		string					true	"Order ID"
//	@Param			request		body		AssignRestaurantRequest	true	"Restaurant to assign"
//	@Success		200			{object}	map[string]string
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/manager/orders/{order_id}/restaurant [post]
func (app *application) assignOrderRestaurantHandler(w http.ResponseWriter, r *http.Request) {
	orderID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "order_id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var req AssignRestaurantRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	restaurantID, err := primitive.ObjectIDFromHex(req.RestaurantID)
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	if err := app.orderService.AssignRestaurant(r.Context(), orderID, restaurantID); err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			app.notFoundError(w, r, err)
		case errors.Is(err, service.ErrOrderFinished), errors.Is(err, service.ErrCannotFulfill):
			app.badRequestResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	response := map[string]string{
		"order_id":      orderID.Hex(),
		"restaurant_id": restaurantID.Hex(),
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// updateOrderStatusHandler godoc
//
//	@Summary		Update order status
//	@Tags			manager
//	@Accept			json
//	@Produce		json
//	@Param			order_id	path		string						true	"Order ID"
//	@Param			request		body		UpdateOrderStatusRequest	true	"New status"
//	@Success		200			{object}	map[string]string
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/manager/orders/{order_id}/status [post]
func (app *application) updateOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	orderID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "order_id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var req UpdateOrderStatusRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.orderService.UpdateStatus(r.Context(), orderID, domain.OrderStatus(req.Status)); err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			app.notFoundError(w, r, err)
		case errors.Is(err, service.ErrUnknownStatus):
			app.badRequestResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	response := map[string]string{
		"order_id": orderID.Hex(),
		"status":   req.Status,
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
