package handlers

import (
	"net/http"

	"github.com/Shoyeb45/u-tube/internal/middlewares"
	"github.com/Shoyeb45/u-tube/internal/services"
)

// NewLogoutHandler returns an HTTP handler that ends the current session.
// It must run behind middlewares.VerifyJWT.
// @Summary User logout
// @Description Clear the stored refresh token and the token cookies
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIResponse "User logged out"
// @Failure 401 {object} models.APIErrorResponse "Unauthorized request"
// @Router /user/logout [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return Wrap(func(w http.ResponseWriter, r *http.Request) error {
		user, ok := middlewares.UserFromContext(r.Context())
		if !ok {
			return services.ErrUnauthorized
		}

		if err := svc.Logout(r.Context(), user); err != nil {
			return err
		}

		clearTokenCookies(w)
		writeJSON(w, http.StatusOK, struct{}{}, "User logged out")
		return nil
	})
}
