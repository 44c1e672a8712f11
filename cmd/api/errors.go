package main

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/valeriy131100/star-burger/internal/service"
)

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal server error", "method", r.Method, "path", r.URL.Path, "error", err)

	writeJsonError(w, http.StatusInternalServerError, "the server encountered a problem")
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err)

	writeJsonError(w, http.StatusBadRequest, err.Error())
}

func (app *application) notFoundError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("not found", "method", r.Method, "path", r.URL.Path, "error", err)

	writeJsonError(w, http.StatusNotFound, "not found")
}

func (app *application) unauthorizedResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unauthorized", "method", r.Method, "path", r.URL.Path, "error", err)

	writeJsonError(w, http.StatusUnauthorized, "unauthorized")
}

func (app *application) forbiddenResponse(w http.ResponseWriter, r *http.Request) {
	app.logger.Warnw("forbidden", "method", r.Method, "path", r.URL.Path)

	writeJsonError(w, http.StatusForbidden, "forbidden")
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter string) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path)

	w.Header().Set("Retry-After", retryAfter)
	writeJsonError(w, http.StatusTooManyRequests, "rate limit exceeded, retry after: "+retryAfter)
}

// fieldErrorsResponse renders intake validation failures as
// {"field": ["description", ...]}.
func (app *application) fieldErrorsResponse(w http.ResponseWriter, r *http.Request, fieldErrs service.FieldErrors) {
	app.logger.Warnw("validation failed", "method", r.Method, "path", r.URL.Path, "fields", fieldErrs)

	if err := writeJson(w, http.StatusBadRequest, fieldErrs); err != nil {
		app.internalServerError(w, r, err)
	}
}

// validationFieldErrors flattens validator errors into the per-field map.
func validationFieldErrors(err error) service.FieldErrors {
	fieldErrs := make(service.FieldErrors)

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrs.Add("non_field_errors", err.Error())
		return fieldErrs
	}

	for _, fieldErr := range validationErrs {
		switch fieldErr.Tag() {
		case "required":
			fieldErrs.Add(fieldErr.Field(), "this field is required")
		case "min":
			fieldErrs.Add(fieldErr.Field(), "value is below the minimum of "+fieldErr.Param())
		case "max":
			fieldErrs.Add(fieldErr.Field(), "value exceeds the maximum of "+fieldErr.Param())
		default:
			fieldErrs.Add(fieldErr.Field(), "failed validation on "+fieldErr.Tag())
		}
	}

	return fieldErrs
}
