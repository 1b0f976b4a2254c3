package utils

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/florista/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {

	if err := DecodeJSONBody(r, dest); err != nil {
		slog.Warn("Invalid request", slog.String("error", err.Error()))
		response.WriteJson(w, http.StatusBadRequest, response.APIResponse{
			Success: false,
			Error:   &response.ErrorResponse{Code: "BAD_REQUEST", Message: err.Error()},
		})

		return false
	}

	if err := validate.Struct(dest); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			response.ValidationError(w, validationErrs)

			return false
		}

		slog.Warn("Validation failed", slog.String("error", err.Error()))
		response.WriteJson(w, http.StatusBadRequest, response.APIResponse{
			Success: false,
			Error:   &response.ErrorResponse{Code: "VALIDATION_ERROR", Message: "invalid input data"},
		})

		return false
	}

	return true

}
