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

type SessionHandler struct {
	sessionService service.SessionService
	validator      *validator.Validate
}

func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService, validator: validator.New()}
}

func (h *SessionHandler) State() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		state, err := h.sessionService.State(r.Context(), session)
		if err != nil {
			logger.Error("Failed to get session state", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, state)
	}
}

func (h *SessionHandler) SetView() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req models.SetViewRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid view input")

			return
		}

		state, err := h.sessionService.SetActiveView(r.Context(), session, req.View)
		if err != nil {
			logger.Error("Failed to set active view", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, state)
	}
}

func (h *SessionHandler) OpenCart() http.HandlerFunc {
	return h.setCartOpen(true)
}

func (h *SessionHandler) CloseCart() http.HandlerFunc {
	return h.setCartOpen(false)
}

func (h *SessionHandler) setCartOpen(open bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		state, err := h.sessionService.SetCartOpen(r.Context(), session, open)
		if err != nil {
			logger.Error("Failed to toggle cart dialog", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, state)
	}
}
