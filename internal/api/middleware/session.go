package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/ikjoobang/ppt-designer/internal/pkg/logger"
)

const (
	// SessionHeader carries the caller's session id. The cookie is the
	// fallback for browser clients that do not manage headers themselves.
	SessionHeader = "X-Session-ID"
	SessionCookie = "ppt_session_id"
)

type sessionKey struct{}

// Session resolves the caller's session id from the X-Session-ID header or
// the session cookie, minting a fresh id when neither is present. The id is
// echoed back on both header and cookie and rides the request context.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(SessionHeader)
		if sessionID == "" {
			if c, err := r.Cookie(SessionCookie); err == nil {
				sessionID = c.Value
			}
		}
		if sessionID == "" {
			sessionID = uuid.New().String()
		}

		w.Header().Set(SessionHeader, sessionID)
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    sessionID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		ctx := context.WithValue(r.Context(), sessionKey{}, sessionID)
		ctx = logger.WithSession(ctx, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID extracts the session id resolved by the Session middleware.
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}
