package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"real-estate-api/controllers"
	"real-estate-api/utils"
)

type Auth struct {
	tokens *utils.TokenManager
}

func NewAuth(tokens *utils.TokenManager) *Auth {
	return &Auth{tokens: tokens}
}

// Require rejects requests without a valid bearer token.
func (a *Auth) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenHeader := r.Header.Get("Authorization")
		if tokenHeader == "" {
			slog.Info("Missing Authorization header", "method", r.Method, "url", r.URL.Path)
			controllers.WriteError(w, http.StatusUnauthorized, "Missing Authorization header")
			return
		}

		tokenParts := strings.Split(tokenHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			slog.Info("Invalid Authorization header format", "method", r.Method, "url", r.URL.Path)
			controllers.WriteError(w, http.StatusUnauthorized, "Invalid Authorization header format")
			return
		}

		claims, err := a.tokens.Validate(tokenParts[1])
		if err != nil {
			slog.Info("Invalid or expired token", "error", err)
			controllers.WriteError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			slog.Info("Token subject is not a user id", "error", err)
			controllers.WriteError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), controllers.UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Optional attaches the user id when a valid bearer token is present but
// lets anonymous requests through. Used where favorite annotation is wanted
// without requiring login.
func (a *Auth) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenHeader := r.Header.Get("Authorization")
		tokenParts := strings.Split(tokenHeader, " ")
		if len(tokenParts) == 2 && tokenParts[0] == "Bearer" {
			if claims, err := a.tokens.Validate(tokenParts[1]); err == nil {
				if userID, err := claims.UserID(); err == nil {
					ctx := context.WithValue(r.Context(), controllers.UserIDKey, userID)
					r = r.WithContext(ctx)
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}
