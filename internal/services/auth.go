package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/Shoyeb45/u-tube/internal/hasher"
	"github.com/Shoyeb45/u-tube/internal/logger"
	"github.com/Shoyeb45/u-tube/internal/models"
	"github.com/Shoyeb45/u-tube/internal/repositories"
)

// Error variables
var (
	ErrMissingFields       = errors.New("all fields are required")
	ErrPasswordTooLong     = fmt.Errorf("password must be at most %d bytes", hasher.MaxPasswordLength)
	ErrUserAlreadyExists   = errors.New("user with email or username already exists")
	ErrAvatarRequired      = errors.New("avatar file is required")
	ErrAvatarUpload        = errors.New("failed to upload avatar")
	ErrUserNotCreated      = errors.New("something went wrong while registering the user")
	ErrUsernameRequired    = errors.New("username is required")
	ErrUserDoesNotExist    = errors.New("user does not exist")
	ErrInvalidCredentials  = errors.New("invalid user credentials")
	ErrTooManyAttempts     = errors.New("too many failed login attempts, try again later")
	ErrUnauthorized        = errors.New("unauthorized request")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenReused  = errors.New("refresh token is expired or used")
	ErrTokenGeneration     = errors.New("something went wrong while generating refresh and access token")
)

// MissingFieldsError lists the registration fields that were blank.
// It matches ErrMissingFields with errors.Is.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return ErrMissingFields.Error() + ": " + strings.Join(e.Fields, ", ")
}

func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingFields
}

// UserReader defines read-only operations for users.
// Lookups return nil, nil when the user does not exist.
type UserReader interface {
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	GetSanitizedByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, user *models.UserDB) error
	SetRefreshToken(ctx context.Context, id uuid.UUID, token string) error
	ClearRefreshToken(ctx context.Context, id uuid.UUID) error
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer creates and verifies access and refresh tokens.
type TokenIssuer interface {
	GenerateAccessToken(ctx context.Context, user *models.UserDB) (string, error)
	GenerateRefreshToken(ctx context.Context, userID uuid.UUID) (string, error)
	ParseRefreshToken(ctx context.Context, tokenString string) (uuid.UUID, error)
}

// MediaUploader stores a local file on the media host and returns its URL.
type MediaUploader interface {
	Upload(ctx context.Context, localPath string) (string, error)
}

// LoginLimiter tracks failed login attempts.
type LoginLimiter interface {
	CheckLogin(ctx context.Context, username string) error
	IncrementLogin(ctx context.Context, username string) error
	ResetLogin(ctx context.Context, username string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AuthService handles registration, login, logout and token refresh.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	hasher      PasswordHasher
	tokens      TokenIssuer
	uploader    MediaUploader
	limiter     LoginLimiter
	kafkaWriter KafkaWriter
}

// NewAuthService creates a new AuthService instance.
// limiter and kafkaWriter may be nil to disable throttling and events.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	hasher PasswordHasher,
	tokens TokenIssuer,
	uploader MediaUploader,
	limiter LoginLimiter,
	kafkaWriter KafkaWriter,
) *AuthService {
	return &AuthService{
		reader:      reader,
		writer:      writer,
		hasher:      hasher,
		tokens:      tokens,
		uploader:    uploader,
		limiter:     limiter,
		kafkaWriter: kafkaWriter,
	}
}

// Register validates input, uploads media and creates a user.
// It returns the stored record without credentials.
func (svc *AuthService) Register(ctx context.Context, in models.RegisterInput) (*models.User, error) {
	in.Username = strings.ToLower(strings.TrimSpace(in.Username))
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.FullName = strings.TrimSpace(in.FullName)

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"username", in.Username},
		{"email", in.Email},
		{"password", strings.TrimSpace(in.Password)},
		{"fullname", in.FullName},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}
	if len(in.Password) > hasher.MaxPasswordLength {
		return nil, ErrPasswordTooLong
	}

	exists, err := svc.reader.ExistsByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if exists {
		logger.Log.Infow("user already exists", "username", in.Username, "email", in.Email)
		return nil, ErrUserAlreadyExists
	}

	if in.AvatarPath == "" {
		return nil, ErrAvatarRequired
	}

	// Nothing is uploaded until the password has been hashed.
	hashedPassword, err := svc.hasher.Hash(in.Password)
	if errors.Is(err, hasher.ErrPasswordTooLong) {
		return nil, ErrPasswordTooLong
	}
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	avatarURL, err := svc.uploader.Upload(ctx, in.AvatarPath)
	if err != nil || avatarURL == "" {
		logger.Log.Errorw("failed to upload avatar", "username", in.Username, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrAvatarUpload, err)
	}

	var coverURL string
	if in.CoverImagePath != "" {
		coverURL, err = svc.uploader.Upload(ctx, in.CoverImagePath)
		if err != nil {
			logger.Log.Warnw("failed to upload cover image, continuing without it", "username", in.Username, "err", err)
			coverURL = ""
		}
	}

	user := &models.UserDB{
		UserID:       uuid.New(),
		Username:     in.Username,
		Email:        in.Email,
		FullName:     in.FullName,
		Avatar:       avatarURL,
		CoverImage:   coverURL,
		WatchHistory: models.WatchHistory{},
		Password:     hashedPassword,
	}

	if err := svc.writer.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateUser) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	created, err := svc.reader.GetSanitizedByID(ctx, user.UserID)
	if err != nil || created == nil {
		logger.Log.Errorw("created user could not be read back", "user_id", user.UserID, "err", err)
		return nil, ErrUserNotCreated
	}

	svc.publishUserEvent(ctx, models.EventUserRegistered, user)
	return created, nil
}

// Login authenticates a user and issues a new token pair.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.User, *models.TokenPair, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, nil, ErrUsernameRequired
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, nil, err
	}
	if user == nil {
		logger.Log.Infow("user does not exist", "username", username)
		return nil, nil, ErrUserDoesNotExist
	}

	if svc.limiter != nil {
		if err := svc.limiter.CheckLogin(ctx, username); err != nil {
			if errors.Is(err, repositories.ErrTooManyAttempts) {
				logger.Log.Warnw("login throttled", "username", username)
				return nil, nil, ErrTooManyAttempts
			}
			logger.Log.Errorw("login limiter unavailable", "err", err)
		}
	}

	if err := svc.hasher.Compare(user.Password, password); err != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		if svc.limiter != nil {
			if err := svc.limiter.IncrementLogin(ctx, username); err != nil {
				logger.Log.Errorw("failed to record login attempt", "err", err)
			}
		}
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := svc.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	if svc.limiter != nil {
		if err := svc.limiter.ResetLogin(ctx, username); err != nil {
			logger.Log.Errorw("failed to reset login attempts", "err", err)
		}
	}

	svc.publishUserEvent(ctx, models.EventUserLoggedIn, user)
	return user.Sanitize(), tokens, nil
}

// Logout clears the stored refresh token of the user.
func (svc *AuthService) Logout(ctx context.Context, user *models.User) error {
	if err := svc.writer.ClearRefreshToken(ctx, user.UserID); err != nil {
		logger.Log.Errorw("failed to clear refresh token", "user_id", user.UserID, "err", err)
		return err
	}

	svc.publishUserEvent(ctx, models.EventUserLoggedOut, &models.UserDB{UserID: user.UserID, Username: user.Username})
	return nil
}

// RefreshAccessToken rotates the token pair. The presented token must match
// the stored one; a superseded token is rejected as reused.
func (svc *AuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	if refreshToken == "" {
		return nil, ErrUnauthorized
	}

	userID, err := svc.tokens.ParseRefreshToken(ctx, refreshToken)
	if err != nil {
		logger.Log.Infow("refresh token rejected", "err", err)
		return nil, ErrInvalidRefreshToken
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidRefreshToken
	}

	stored := user.RefreshToken.String
	if !user.RefreshToken.Valid || subtle.ConstantTimeCompare([]byte(stored), []byte(refreshToken)) != 1 {
		logger.Log.Warnw("refresh token does not match stored token", "user_id", userID)
		return nil, ErrRefreshTokenReused
	}

	tokens, err := svc.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	svc.publishUserEvent(ctx, models.EventUserTokenRefreshed, user)
	return tokens, nil
}

// issueTokens generates both tokens and persists the refresh token.
// Nothing is returned unless all three steps succeed.
func (svc *AuthService) issueTokens(ctx context.Context, user *models.UserDB) (*models.TokenPair, error) {
	accessToken, err := svc.tokens.GenerateAccessToken(ctx, user)
	if err != nil {
		logger.Log.Errorw("failed to generate access token", "err", err)
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}

	refreshToken, err := svc.tokens.GenerateRefreshToken(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate refresh token", "err", err)
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}

	if err := svc.writer.SetRefreshToken(ctx, user.UserID, refreshToken); err != nil {
		logger.Log.Errorw("failed to save refresh token", "user_id", user.UserID, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}

	return &models.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// publishUserEvent publishes a user lifecycle event to Kafka. Failures are
// logged and never fail the request.
func (svc *AuthService) publishUserEvent(ctx context.Context, eventType string, user *models.UserDB) {
	if svc.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "type", eventType)
		return
	}

	event := models.UserEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		UserID:    user.UserID.String(),
		Username:  user.Username,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal user event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish user event to Kafka", "event_id", event.EventID, "type", eventType, "error", err)
	} else {
		logger.Log.Infow("User event published to Kafka", "event_id", event.EventID, "type", eventType)
	}
}
