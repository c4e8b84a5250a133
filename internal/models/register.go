package models

// RegisterInput carries validated-by-service registration data.
// AvatarPath and CoverImagePath point at local temp files, empty when absent.
type RegisterInput struct {
	Username       string
	Email          string
	Password       string
	FullName       string
	AvatarPath     string
	CoverImagePath string
}
