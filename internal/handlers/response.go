package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Shoyeb45/u-tube/internal/jwt"
	"github.com/Shoyeb45/u-tube/internal/logger"
	"github.com/Shoyeb45/u-tube/internal/models"
	"github.com/Shoyeb45/u-tube/internal/services"
)

// HandlerFunc is an HTTP handler that reports failures by returning them.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Wrap adapts h to http.HandlerFunc. A returned error is written as the
// JSON error envelope with the status it maps to.
func Wrap(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			writeError(w, err)
		}
	}
}

// httpError is a failure that already knows its status and message.
type httpError struct {
	status  int
	message string
	details []string
}

func (e *httpError) Error() string {
	return e.message
}

func badRequest(message string) error {
	return &httpError{status: http.StatusBadRequest, message: message}
}

func writeJSON(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(models.APIResponse{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    status < http.StatusBadRequest,
	}); err != nil {
		logger.Log.Errorw("failed to write response", "err", err)
	}
}

// writeError maps err to a status code and writes the error envelope.
func writeError(w http.ResponseWriter, err error) {
	e := toHTTPError(err)
	if e.details == nil {
		e.details = []string{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.status)
	_ = json.NewEncoder(w).Encode(models.APIErrorResponse{
		StatusCode: e.status,
		Message:    e.message,
		Errors:     e.details,
		Success:    false,
	})
}

func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	var mfe *services.MissingFieldsError
	if errors.As(err, &mfe) {
		return &httpError{status: http.StatusBadRequest, message: "All fields are required", details: mfe.Fields}
	}

	switch {
	case errors.Is(err, services.ErrPasswordTooLong):
		return &httpError{status: http.StatusBadRequest, message: "Password must be at most 72 bytes"}
	case errors.Is(err, services.ErrAvatarRequired):
		return &httpError{status: http.StatusBadRequest, message: "Avatar file is required"}
	case errors.Is(err, services.ErrAvatarUpload):
		return &httpError{status: http.StatusBadRequest, message: "Failed to upload avatar"}
	case errors.Is(err, services.ErrUsernameRequired):
		return &httpError{status: http.StatusBadRequest, message: "Username is required"}
	case errors.Is(err, services.ErrUserAlreadyExists):
		return &httpError{status: http.StatusConflict, message: "User with email or username already exists"}
	case errors.Is(err, services.ErrUserDoesNotExist):
		return &httpError{status: http.StatusNotFound, message: "User does not exist"}
	case errors.Is(err, services.ErrInvalidCredentials):
		return &httpError{status: http.StatusUnauthorized, message: "Invalid user credentials"}
	case errors.Is(err, services.ErrUnauthorized):
		return &httpError{status: http.StatusUnauthorized, message: "Unauthorized request"}
	case errors.Is(err, services.ErrInvalidRefreshToken):
		return &httpError{status: http.StatusUnauthorized, message: "Invalid refresh token"}
	case errors.Is(err, services.ErrRefreshTokenReused):
		return &httpError{status: http.StatusUnauthorized, message: "Refresh token is expired or used"}
	case errors.Is(err, services.ErrTooManyAttempts):
		return &httpError{status: http.StatusTooManyRequests, message: "Too many failed login attempts, try again later"}
	case errors.Is(err, services.ErrUserNotCreated):
		logger.Log.Errorw("internal server error", "err", err)
		return &httpError{status: http.StatusInternalServerError, message: "Something went wrong while registering the user"}
	case errors.Is(err, services.ErrTokenGeneration):
		logger.Log.Errorw("internal server error", "err", err)
		return &httpError{status: http.StatusInternalServerError, message: "Something went wrong while generating refresh and access token"}
	default:
		logger.Log.Errorw("internal server error", "err", err)
		return &httpError{status: http.StatusInternalServerError, message: "Internal server error"}
	}
}

func tokenCookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
	}
}

// setTokenCookies stores both tokens as session cookies.
func setTokenCookies(w http.ResponseWriter, tokens *models.TokenPair) {
	http.SetCookie(w, tokenCookie(jwt.AccessTokenCookie, tokens.AccessToken, 0))
	http.SetCookie(w, tokenCookie(jwt.RefreshTokenCookie, tokens.RefreshToken, 0))
}

// clearTokenCookies expires both token cookies.
func clearTokenCookies(w http.ResponseWriter) {
	http.SetCookie(w, tokenCookie(jwt.AccessTokenCookie, "", -1))
	http.SetCookie(w, tokenCookie(jwt.RefreshTokenCookie, "", -1))
}
