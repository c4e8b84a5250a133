package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shoyeb45/u-tube/internal/models"
	"github.com/Shoyeb45/u-tube/internal/services"
)

func TestLoginHandler(t *testing.T) {
	user := &models.User{UserID: uuid.New(), Username: "alice"}
	tokens := &models.TokenPair{AccessToken: "ACCESS", RefreshToken: "REFRESH"}

	tests := []struct {
		name            string
		body            string
		mockSetup       func(m *MockLoginer)
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "success",
			body: `{"username":"alice","password":"secret123"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "alice", "secret123").Return(user, tokens, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "User logged in successfully",
		},
		{
			name:            "invalid JSON",
			body:            "{invalid json}",
			mockSetup:       func(m *MockLoginer) {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid request body",
		},
		{
			name: "username missing",
			body: `{"password":"secret123"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "", "secret123").Return(nil, nil, services.ErrUsernameRequired)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Username is required",
		},
		{
			name: "user does not exist",
			body: `{"username":"bob","password":"x"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "bob", "x").Return(nil, nil, services.ErrUserDoesNotExist)
			},
			expectedCode:    http.StatusNotFound,
			expectedMessage: "User does not exist",
		},
		{
			name: "wrong password",
			body: `{"username":"alice","password":"wrong"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "alice", "wrong").Return(nil, nil, services.ErrInvalidCredentials)
			},
			expectedCode:    http.StatusUnauthorized,
			expectedMessage: "Invalid user credentials",
		},
		{
			name: "throttled",
			body: `{"username":"alice","password":"wrong"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "alice", "wrong").Return(nil, nil, services.ErrTooManyAttempts)
			},
			expectedCode:    http.StatusTooManyRequests,
			expectedMessage: "Too many failed login attempts, try again later",
		},
		{
			name: "internal error",
			body: `{"username":"alice","password":"secret123"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "alice", "secret123").Return(nil, nil, errors.New("database error"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockSvc := NewMockLoginer(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/user/login", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			NewLoginHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var body struct {
				Message string               `json:"message"`
				Success bool                 `json:"success"`
				Data    models.LoginResponse `json:"data"`
			}
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			assert.Equal(t, tt.expectedMessage, body.Message)

			cookies := cookieMap(rr)
			if tt.expectedCode != http.StatusOK {
				assert.False(t, body.Success)
				assert.Empty(t, cookies)
				return
			}

			assert.True(t, body.Success)
			assert.Equal(t, "ACCESS", body.Data.AccessToken)
			assert.Equal(t, "REFRESH", body.Data.RefreshToken)
			assert.Equal(t, user.UserID, body.Data.User.UserID)

			require.Contains(t, cookies, "accessToken")
			require.Contains(t, cookies, "refreshToken")
			for _, c := range cookies {
				assert.True(t, c.HttpOnly)
				assert.True(t, c.Secure)
				assert.Equal(t, "/", c.Path)
			}
			assert.Equal(t, "ACCESS", cookies["accessToken"].Value)
			assert.Equal(t, "REFRESH", cookies["refreshToken"].Value)
		})
	}
}
