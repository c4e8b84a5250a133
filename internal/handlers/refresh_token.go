package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Shoyeb45/u-tube/internal/jwt"
	"github.com/Shoyeb45/u-tube/internal/models"
)

// NewRefreshTokenHandler returns an HTTP handler that rotates the token pair.
// The refresh token is read from the refreshToken cookie, else from the body.
// @Summary Refresh access token
// @Description Exchange a valid refresh token for a new token pair
// @Tags user
// @Accept json
// @Produce json
// @Param refreshTokenRequest body models.RefreshTokenRequest false "Refresh token, when no cookie is sent"
// @Success 200 {object} models.APIResponse{data=models.TokenPair} "Access token refreshed"
// @Failure 401 {object} models.APIErrorResponse "Invalid, expired or reused refresh token"
// @Router /user/refresh-token [post]
func NewRefreshTokenHandler(svc TokenRefresher) http.HandlerFunc {
	return Wrap(func(w http.ResponseWriter, r *http.Request) error {
		tokens, err := svc.RefreshAccessToken(r.Context(), refreshTokenFromRequest(r))
		if err != nil {
			return err
		}

		setTokenCookies(w, tokens)
		writeJSON(w, http.StatusOK, tokens, "Access token refreshed")
		return nil
	})
}

func refreshTokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(jwt.RefreshTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	var req models.RefreshTokenRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	return req.RefreshToken
}
