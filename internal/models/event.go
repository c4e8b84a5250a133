package models

// User lifecycle event types published to Kafka
const (
	EventUserRegistered     = "user.registered"
	EventUserLoggedIn       = "user.logged_in"
	EventUserLoggedOut      = "user.logged_out"
	EventUserTokenRefreshed = "user.token_refreshed"
)

// UserEvent represents a user lifecycle event
type UserEvent struct {
	EventID   string `json:"event_id"`  // Unique event identifier
	Type      string `json:"type"`      // One of the Event* constants
	UserID    string `json:"user_id"`   // Subject user
	Username  string `json:"username"`  // Subject username
	Timestamp int64  `json:"timestamp"` // Unix timestamp
}
