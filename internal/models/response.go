package models

// APIResponse is the envelope of every successful response
// swagger:model APIResponse
type APIResponse struct {
	// HTTP status code
	// example: 200
	StatusCode int `json:"statusCode"`

	// Payload
	Data any `json:"data"`

	// Human readable message
	// example: Success
	Message string `json:"message"`

	// Always true
	// example: true
	Success bool `json:"success"`
}

// APIErrorResponse is the envelope of every failed response
// swagger:model APIErrorResponse
type APIErrorResponse struct {
	// HTTP status code
	// example: 401
	StatusCode int `json:"statusCode"`

	// Error message
	// example: Unauthorized request
	Message string `json:"message"`

	// Optional details, e.g. the missing field names
	Errors []string `json:"errors"`

	// Always false
	// example: false
	Success bool `json:"success"`
}
