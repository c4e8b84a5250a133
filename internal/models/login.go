package models

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// example: alice
	Username string `json:"username"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// LoginResponse is the data part of a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Sanitized user record
	User *User `json:"user"`

	// JWT access token
	// example: ACCESS_TOKEN
	AccessToken string `json:"accessToken"`

	// JWT refresh token
	// example: REFRESH_TOKEN
	RefreshToken string `json:"refreshToken"`
}
