package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Shoyeb45/u-tube/internal/models"
)

// Cookie names used to deliver tokens to browsers.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

var (
	ErrTokenMissing = errors.New("token missing")
	ErrInvalidToken = errors.New("invalid token")
)

// AccessClaims are embedded in access tokens.
type AccessClaims struct {
	UserID   uuid.UUID `json:"_id"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
	FullName string    `json:"fullname"`
	jwt.RegisteredClaims
}

// RefreshClaims are embedded in refresh tokens.
type RefreshClaims struct {
	UserID uuid.UUID `json:"_id"`
	jwt.RegisteredClaims
}

// JWT issues and verifies access and refresh tokens.
// Each kind has its own secret so one cannot be presented as the other.
type JWT struct {
	AccessSecret  string        // Secret key for signing access tokens
	AccessExp     time.Duration // Access token lifetime
	RefreshSecret string        // Secret key for signing refresh tokens
	RefreshExp    time.Duration // Refresh token lifetime
}

// Opt configures a JWT.
type Opt func(*JWT)

func WithAccessSecret(secret string) Opt {
	return func(j *JWT) { j.AccessSecret = secret }
}

func WithAccessExpiration(exp time.Duration) Opt {
	return func(j *JWT) { j.AccessExp = exp }
}

func WithRefreshSecret(secret string) Opt {
	return func(j *JWT) { j.RefreshSecret = secret }
}

func WithRefreshExpiration(exp time.Duration) Opt {
	return func(j *JWT) { j.RefreshExp = exp }
}

// New creates a new JWT instance. Defaults: 1 day access, 10 days refresh.
func New(opts ...Opt) *JWT {
	j := &JWT{
		AccessExp:  24 * time.Hour,
		RefreshExp: 10 * 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

func registered(exp time.Duration) jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(exp)),
	}
}

// GenerateAccessToken creates an access token carrying the user's identity claims.
func (j *JWT) GenerateAccessToken(ctx context.Context, user *models.UserDB) (string, error) {
	claims := AccessClaims{
		UserID:           user.UserID,
		Email:            user.Email,
		Username:         user.Username,
		FullName:         user.FullName,
		RegisteredClaims: registered(j.AccessExp),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.AccessSecret))
}

// GenerateRefreshToken creates a refresh token carrying only the user id.
func (j *JWT) GenerateRefreshToken(ctx context.Context, userID uuid.UUID) (string, error) {
	claims := RefreshClaims{
		UserID:           userID,
		RegisteredClaims: registered(j.RefreshExp),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.RefreshSecret))
}

// ParseAccessToken verifies signature and expiry and returns the claims.
func (j *JWT) ParseAccessToken(ctx context.Context, tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := parse(tokenString, claims, j.AccessSecret); err != nil {
		return nil, err
	}
	return claims, nil
}

// ParseRefreshToken verifies signature and expiry and returns the user id.
func (j *JWT) ParseRefreshToken(ctx context.Context, tokenString string) (uuid.UUID, error) {
	claims := &RefreshClaims{}
	if err := parse(tokenString, claims, j.RefreshSecret); err != nil {
		return uuid.Nil, err
	}
	return claims.UserID, nil
}

func parse(tokenString string, claims jwt.Claims, secret string) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return err
	}
	if !token.Valid {
		return ErrInvalidToken
	}
	return nil
}

// GetTokenFromRequest extracts the access token from the accessToken cookie,
// falling back to the Authorization header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	if c, err := r.Cookie(AccessTokenCookie); err == nil && c.Value != "" {
		return c.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrTokenMissing
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
