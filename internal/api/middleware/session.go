package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type sessionContextKey string

const SessionContextKey = sessionContextKey("session")

// SessionHeader identifies an anonymous storefront session. The whole
// shopping state (cart, selection, current order) hangs off this id.
const SessionHeader = "X-Session-ID"

// Session mints a session id for first-time visitors and echoes it back on
// every response so the client can keep presenting it.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		sessionID := r.Header.Get(SessionHeader)
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		w.Header().Set(SessionHeader, sessionID)

		ctx := context.WithValue(r.Context(), SessionContextKey, sessionID)

		next.ServeHTTP(w, r.WithContext(ctx))

	})
}

func SessionFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionContextKey).(string)

	return sessionID, ok && sessionID != ""
}
