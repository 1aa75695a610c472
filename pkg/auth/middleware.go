package auth

import (
	"net/http"
	"strconv"

	"github.com/gorilla/sessions"

	"github.com/ghuser/stockery/pkg/httpx"
	"github.com/ghuser/stockery/pkg/logger"
)

const sessionName = "stockery_session"
const sessionClientIDKey = "client_id"

// RequireAuth is a chi middleware that enforces authentication via session cookies.
// It reads the session cookie, extracts the client ID, and injects it into the
// request context. Returns 401 Unauthorized if the session is missing, invalid,
// or lacks a valid client_id.
//
// After this middleware, handlers can safely call auth.ClientIDFromCtx(r.Context()).
func RequireAuth(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, sessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			clientIDStr, ok := session.Values[sessionClientIDKey].(string)
			if !ok || clientIDStr == "" {
				log.WarnContext(r.Context(), "session missing client_id")
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			clientID, err := strconv.ParseInt(clientIDStr, 10, 64)
			if err != nil || clientID <= 0 {
				log.WarnContext(r.Context(), "invalid client_id in session", "client_id", clientIDStr, "error", err)
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid session data"})
				return
			}

			ctx := WithClientID(r.Context(), clientID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
