package models

// TokenPair is a freshly issued access/refresh token pair.
// swagger:model TokenPair
type TokenPair struct {
	// JWT access token
	// example: ACCESS_TOKEN
	AccessToken string `json:"accessToken"`

	// JWT refresh token
	// example: REFRESH_TOKEN
	RefreshToken string `json:"refreshToken"`
}

// RefreshTokenRequest is the optional JSON body of the refresh endpoint,
// used when the refreshToken cookie is absent.
// swagger:model RefreshTokenRequest
type RefreshTokenRequest struct {
	// Refresh token
	// example: REFRESH_TOKEN
	RefreshToken string `json:"refreshToken"`
}
