package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Shoyeb45/u-tube/internal/models"
)

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user, set token cookies and return the token pair
// @Tags user
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Login Request"
// @Success 200 {object} models.APIResponse{data=models.LoginResponse} "User logged in"
// @Failure 400 {object} models.APIErrorResponse "Username is required"
// @Failure 401 {object} models.APIErrorResponse "Invalid user credentials"
// @Failure 404 {object} models.APIErrorResponse "User does not exist"
// @Failure 429 {object} models.APIErrorResponse "Too many failed login attempts"
// @Router /user/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return Wrap(func(w http.ResponseWriter, r *http.Request) error {
		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return badRequest("Invalid request body")
		}

		user, tokens, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			return err
		}

		setTokenCookies(w, tokens)
		writeJSON(w, http.StatusOK, models.LoginResponse{
			User:         user,
			AccessToken:  tokens.AccessToken,
			RefreshToken: tokens.RefreshToken,
		}, "User logged in successfully")
		return nil
	})
}
