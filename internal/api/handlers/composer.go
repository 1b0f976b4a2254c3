package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/florista/storefront/internal/api/middleware"
	"github.com/florista/storefront/internal/errors"
	"github.com/florista/storefront/internal/models"
	service "github.com/florista/storefront/internal/services"
	"github.com/florista/storefront/internal/utils"
	"github.com/florista/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ComposerHandler struct {
	composerService service.ComposerService
	validator       *validator.Validate
}

func NewComposerHandler(composerService service.ComposerService) *ComposerHandler {
	return &ComposerHandler{composerService: composerService, validator: validator.New()}
}

func (h *ComposerHandler) State() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		state, err := h.composerService.State(r.Context(), session)
		if err != nil {
			logger.Error("Failed to get composer state", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, state)
	}
}

func (h *ComposerHandler) ToggleFlower() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		flowerID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			response.Error(w, errors.BadRequestError("Invalid flower id"))

			return
		}

		state, err := h.composerService.ToggleFlower(r.Context(), session, flowerID)
		if err != nil {
			logger.Error("Failed to toggle flower", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, state)
	}
}

func (h *ComposerHandler) Generate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req models.GenerateBouquetRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid generate input")

			return
		}

		state, err := h.composerService.Generate(r.Context(), session, &req)
		if err != nil {
			logger.Error("Failed to generate bouquet", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Bouquet preview generated")
		response.Success(w, http.StatusOK, state)
	}
}

func (h *ComposerHandler) AddToCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		cart, err := h.composerService.AddToCart(r.Context(), session)
		if err != nil {
			logger.Error("Failed to add composed bouquet to cart", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Composed bouquet added to cart")
		response.Success(w, http.StatusOK, cart)
	}
}
