package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shoyeb45/u-tube/internal/models"
	"github.com/Shoyeb45/u-tube/internal/services"
)

func TestToHTTPError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"missing fields", &services.MissingFieldsError{Fields: []string{"email"}}, http.StatusBadRequest},
		{"password too long", services.ErrPasswordTooLong, http.StatusBadRequest},
		{"avatar required", services.ErrAvatarRequired, http.StatusBadRequest},
		{"avatar upload wrapped", fmt.Errorf("%w: s3 down", services.ErrAvatarUpload), http.StatusBadRequest},
		{"username required", services.ErrUsernameRequired, http.StatusBadRequest},
		{"user exists", services.ErrUserAlreadyExists, http.StatusConflict},
		{"user does not exist", services.ErrUserDoesNotExist, http.StatusNotFound},
		{"invalid credentials", services.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unauthorized", services.ErrUnauthorized, http.StatusUnauthorized},
		{"invalid refresh token", services.ErrInvalidRefreshToken, http.StatusUnauthorized},
		{"refresh token reused", services.ErrRefreshTokenReused, http.StatusUnauthorized},
		{"too many attempts", services.ErrTooManyAttempts, http.StatusTooManyRequests},
		{"user not created", services.ErrUserNotCreated, http.StatusInternalServerError},
		{"token generation", fmt.Errorf("%w: boom", services.ErrTokenGeneration), http.StatusInternalServerError},
		{"bad request", badRequest("Invalid request body"), http.StatusBadRequest},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, toHTTPError(tt.err).status)
		})
	}
}

func TestWrap(t *testing.T) {
	t.Run("error envelope", func(t *testing.T) {
		h := Wrap(func(w http.ResponseWriter, r *http.Request) error {
			return &services.MissingFieldsError{Fields: []string{"username", "password"}}
		})

		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

		var body models.APIErrorResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.Equal(t, models.APIErrorResponse{
			StatusCode: http.StatusBadRequest,
			Message:    "All fields are required",
			Errors:     []string{"username", "password"},
			Success:    false,
		}, body)
	})

	t.Run("internal errors are not leaked", func(t *testing.T) {
		h := Wrap(func(w http.ResponseWriter, r *http.Request) error {
			return errors.New("pq: password authentication failed")
		})

		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"statusCode":500,"message":"Internal server error","errors":[],"success":false}`, rr.Body.String())
	})

	t.Run("success passes through", func(t *testing.T) {
		h := Wrap(func(w http.ResponseWriter, r *http.Request) error {
			writeJSON(w, http.StatusOK, map[string]string{"k": "v"}, "ok")
			return nil
		})

		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"statusCode":200,"data":{"k":"v"},"message":"ok","success":true}`, rr.Body.String())
	})
}

// cookieMap indexes the cookies set on a response by name.
func cookieMap(rr *httptest.ResponseRecorder) map[string]*http.Cookie {
	out := map[string]*http.Cookie{}
	for _, c := range rr.Result().Cookies() {
		out[c.Name] = c
	}
	return out
}
