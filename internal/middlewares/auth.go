package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/Shoyeb45/u-tube/internal/jwt"
	"github.com/Shoyeb45/u-tube/internal/logger"
	"github.com/Shoyeb45/u-tube/internal/models"
)

type contextKey string

const userContextKey contextKey = "user"

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	ParseAccessToken(ctx context.Context, tokenString string) (*jwt.AccessClaims, error)
}

// UserGetter loads the sanitized user named by a token.
type UserGetter interface {
	GetSanitizedByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// VerifyJWT returns a middleware that authenticates the request by its access
// token and attaches the sanitized user to the request context.
func VerifyJWT(tokener Tokener, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil || tokenString == "" {
				logger.Log.Infow("authorization failed", "err", err)
				unauthorized(w, "Unauthorized request")
				return
			}

			claims, err := tokener.ParseAccessToken(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				unauthorized(w, "Invalid access token")
				return
			}

			user, err := users.GetSanitizedByID(ctx, claims.UserID)
			if err != nil {
				logger.Log.Errorw("failed to load user for token", "user_id", claims.UserID, "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			if user == nil {
				logger.Log.Infow("authorization failed", "user_id", claims.UserID, "reason", "user not found")
				unauthorized(w, "Invalid access token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext returns the user attached by VerifyJWT.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey).(*models.User)
	return user, ok && user != nil
}

func unauthorized(w http.ResponseWriter, message string) {
	writeError(w, http.StatusUnauthorized, message)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.APIErrorResponse{
		StatusCode: status,
		Message:    message,
		Errors:     []string{},
		Success:    false,
	})
}
