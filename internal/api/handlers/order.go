package handlers

import (
	"log/slog"
	"net/http"

	"github.com/florista/storefront/internal/api/middleware"
	"github.com/florista/storefront/internal/models"
	service "github.com/florista/storefront/internal/services"
	"github.com/florista/storefront/internal/utils"
	"github.com/florista/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type OrderHandler struct {
	orderService service.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService, validator: validator.New()}
}

func (h *OrderHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req models.CheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout input")

			return
		}

		order, err := h.orderService.Checkout(r.Context(), session, &req)
		if err != nil {
			logger.Error("Checkout failed", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Order created", slog.String("orderId", order.ID))
		response.Success(w, http.StatusCreated, order)
	}
}

func (h *OrderHandler) CurrentOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		order, err := h.orderService.CurrentOrder(r.Context(), session)
		if err != nil {
			logger.Warn("No current order", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

func (h *OrderHandler) UpdateStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req models.UpdateOrderStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid status update input")

			return
		}

		order, err := h.orderService.AdvanceStatus(r.Context(), session, req.Status)
		if err != nil {
			logger.Error("Failed to update order status", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Order status updated",
			slog.String("orderId", order.ID),
			slog.String("status", string(order.Status)))
		response.Success(w, http.StatusOK, order)
	}
}
