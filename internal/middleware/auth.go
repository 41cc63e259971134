package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/wilt/wilt/internal/auth"
	"github.com/wilt/wilt/internal/model"
	"github.com/wilt/wilt/internal/repository"
)

// UserStore loads user records during authentication.
type UserStore interface {
	GetUserByID(ctx context.Context, id string) (*model.User, error)
}

// AuthCache caches verified auth contexts between requests.
type AuthCache interface {
	GetAuthContext(ctx context.Context, userID string) (*model.AuthContext, error)
	SetAuthContext(ctx context.Context, authCtx *model.AuthContext) error
}

// AuthConfig holds configuration for the auth middleware.
// Cache is optional; without it every request hits the database.
type AuthConfig struct {
	Logger     *slog.Logger
	Tokens     *auth.TokenManager
	Repository UserStore
	Cache      AuthCache
}

// Auth returns a middleware that authenticates API requests.
// It extracts the bearer token from the Authorization header, verifies the
// signature and expiry, resolves the user (cache first, then database) and
// injects the auth context into the request. A token for a deleted or
// deactivated account is rejected.
func Auth(cfg AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				logAuthFailure(cfg.Logger, r, "missing_token")
				writeAuthError(w)
				return
			}

			userID, err := cfg.Tokens.Verify(token)
			if err != nil {
				reason := "invalid_token"
				if errors.Is(err, auth.ErrTokenExpired) {
					reason = "expired_token"
				}
				logAuthFailure(cfg.Logger, r, reason)
				writeAuthError(w)
				return
			}

			// Check cache first
			if cfg.Cache != nil {
				authCtx, _ := cfg.Cache.GetAuthContext(r.Context(), userID)
				if authCtx != nil {
					ctx := auth.ContextWithAuth(r.Context(), authCtx)
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
			}

			// Cache miss - load from database
			user, err := cfg.Repository.GetUserByID(r.Context(), userID)
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					logAuthFailure(cfg.Logger, r, "unknown_user")
					writeAuthError(w)
					return
				}
				cfg.Logger.Error("database error during auth",
					slog.String("error", err.Error()),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeAuthError(w)
				return
			}

			if !user.Active {
				logAuthFailure(cfg.Logger, r, "inactive_account")
				writeAuthError(w)
				return
			}

			authCtx := &model.AuthContext{
				UserID:   user.ID,
				Username: user.Username,
			}

			// Cache the result
			if cfg.Cache != nil {
				_ = cfg.Cache.SetAuthContext(r.Context(), authCtx)
			}

			ctx := auth.ContextWithAuth(r.Context(), authCtx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractBearerToken extracts the bearer token from the Authorization header.
func extractBearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// logAuthFailure logs a rejected request. Token material is never logged.
func logAuthFailure(logger *slog.Logger, r *http.Request, reason string) {
	logger.Warn("authentication failed",
		slog.String("reason", reason),
		slog.String("ip", r.RemoteAddr),
		slog.String("endpoint", r.Method+" "+r.URL.Path),
		slog.String("request_id", GetRequestID(r.Context())),
	)
}

// writeAuthError writes a 401 Unauthorized response.
// Uses the same message for all auth failures to prevent enumeration.
func writeAuthError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"Invalid or missing token","code":"UNAUTHORIZED"}`))
}
