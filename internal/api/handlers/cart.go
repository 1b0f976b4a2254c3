package handlers

import (
	"log/slog"
	"net/http"

	"github.com/florista/storefront/internal/api/middleware"
	"github.com/florista/storefront/internal/errors"
	"github.com/florista/storefront/internal/models"
	service "github.com/florista/storefront/internal/services"
	"github.com/florista/storefront/internal/utils"
	"github.com/florista/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), session)
		if err != nil {
			logger.Error("Failed to get cart", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req models.AddCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add item input")

			return
		}

		cart, err := h.cartService.AddItem(r.Context(), session, &req)
		if err != nil {
			logger.Error("Failed to add cart item", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Cart item added", slog.String("itemId", req.ItemID))
		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		itemID := r.PathValue("id")
		if itemID == "" {
			response.Error(w, errors.BadRequestError("Item ID is required"))

			return
		}

		cart, err := h.cartService.RemoveItem(r.Context(), session, itemID)
		if err != nil {
			logger.Error("Failed to remove cart item", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		itemID := r.PathValue("id")
		if itemID == "" {
			response.Error(w, errors.BadRequestError("Item ID is required"))

			return
		}

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid quantity update input")

			return
		}

		cart, err := h.cartService.UpdateQuantity(r.Context(), session, itemID, req.Delta)
		if err != nil {
			logger.Error("Failed to update quantity", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}
