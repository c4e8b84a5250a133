package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Shoyeb45/u-tube/internal/middlewares"
	"github.com/Shoyeb45/u-tube/internal/models"
)

func TestLogoutHandler(t *testing.T) {
	user := &models.User{UserID: uuid.New(), Username: "alice"}

	tests := []struct {
		name         string
		user         *models.User
		mockSetup    func(m *MockLogouter)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			user: user,
			mockSetup: func(m *MockLogouter) {
				m.EXPECT().Logout(gomock.Any(), user).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"statusCode":200,"data":{},"message":"User logged out","success":true}`,
		},
		{
			name:         "no user in context",
			mockSetup:    func(m *MockLogouter) {},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"statusCode":401,"message":"Unauthorized request","errors":[],"success":false}`,
		},
		{
			name: "store failure",
			user: user,
			mockSetup: func(m *MockLogouter) {
				m.EXPECT().Logout(gomock.Any(), user).Return(errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"statusCode":500,"message":"Internal server error","errors":[],"success":false}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockSvc := NewMockLogouter(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/user/logout", nil)
			if tt.user != nil {
				req = req.WithContext(middlewares.WithUser(req.Context(), tt.user))
			}
			rr := httptest.NewRecorder()

			NewLogoutHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())

			cookies := cookieMap(rr)
			if tt.expectedCode == http.StatusOK {
				for _, name := range []string{"accessToken", "refreshToken"} {
					if assert.Contains(t, cookies, name) {
						assert.Equal(t, "", cookies[name].Value)
						assert.Less(t, cookies[name].MaxAge, 0)
					}
				}
			} else {
				assert.Empty(t, cookies)
			}
		})
	}
}
