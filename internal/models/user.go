package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID      `json:"_id" db:"id"`                     // Primary key
	Username     string         `json:"username" db:"username"`          // Lowercased username
	Email        string         `json:"email" db:"email"`                // Lowercased email
	FullName     string         `json:"fullname" db:"full_name"`         // Display name
	Avatar       string         `json:"avatar" db:"avatar"`              // Media host URL, required
	CoverImage   string         `json:"coverImage" db:"cover_image"`     // Media host URL, may be empty
	WatchHistory WatchHistory   `json:"watchHistory" db:"watch_history"` // Watched video ids, oldest first
	Password     string         `json:"-" db:"password"`                 // Bcrypt hash
	RefreshToken sql.NullString `json:"-" db:"refresh_token"`            // Current refresh token
	CreatedAt    time.Time      `json:"createdAt" db:"created_at"`       // Creation timestamp
	UpdatedAt    time.Time      `json:"updatedAt" db:"updated_at"`       // Last update timestamp
}

// User is the sanitized view of a user: no password hash, no refresh token.
// swagger:model User
type User struct {
	UserID       uuid.UUID    `json:"_id" db:"id"`
	Username     string       `json:"username" db:"username"`
	Email        string       `json:"email" db:"email"`
	FullName     string       `json:"fullname" db:"full_name"`
	Avatar       string       `json:"avatar" db:"avatar"`
	CoverImage   string       `json:"coverImage" db:"cover_image"`
	WatchHistory WatchHistory `json:"watchHistory" db:"watch_history"`
	CreatedAt    time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time    `json:"updatedAt" db:"updated_at"`
}

// Sanitize returns the user without credential fields.
func (u *UserDB) Sanitize() *User {
	return &User{
		UserID:       u.UserID,
		Username:     u.Username,
		Email:        u.Email,
		FullName:     u.FullName,
		Avatar:       u.Avatar,
		CoverImage:   u.CoverImage,
		WatchHistory: u.WatchHistory,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// WatchHistory is an ordered list of video ids stored as a JSONB array.
type WatchHistory []uuid.UUID

// Value implements driver.Valuer.
func (h WatchHistory) Value() (driver.Value, error) {
	if h == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]uuid.UUID(h))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (h *WatchHistory) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*h = WatchHistory{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("watch_history: unsupported column type")
	}

	var ids []uuid.UUID
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*h = ids
	return nil
}
