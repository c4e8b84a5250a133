// Package handlers implements the user HTTP endpoints. Every handler writes
// the JSON success or error envelope.
package handlers

//go:generate mockgen -source=handlers.go -destination=handlers_mock.go -package=handlers

import (
	"context"

	"github.com/Shoyeb45/u-tube/internal/models"
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, in models.RegisterInput) (*models.User, error)
}

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (*models.User, *models.TokenPair, error)
}

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, user *models.User) error
}

// TokenRefresher defines the interface that the refresh service must implement.
type TokenRefresher interface {
	RefreshAccessToken(ctx context.Context, refreshToken string) (*models.TokenPair, error)
}
