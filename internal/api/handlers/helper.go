package handlers

import (
	"net/http"

	"github.com/florista/storefront/internal/api/middleware"
	"github.com/florista/storefront/internal/errors"
	"github.com/florista/storefront/internal/utils/response"
)

// sessionID pulls the session id the Session middleware put on the context.
// Its absence means the handler is mounted outside the middleware chain.
func sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {

	id, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		logger := middleware.LoggerFromContext(r.Context())
		logger.Warn("Request reached handler without a session id")
		response.Error(w, errors.BadRequestError("Session ID is required"))

		return "", false
	}

	return id, true
}
