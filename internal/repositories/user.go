package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/Shoyeb45/u-tube/internal/logger"
	"github.com/Shoyeb45/u-tube/internal/models"
)

var (
	// ErrDuplicateUser is returned when a unique index on username or email rejects a write.
	ErrDuplicateUser = errors.New("user with this username or email already exists")
	// ErrUserNotFound is returned when an update targets a missing user.
	ErrUserNotFound = errors.New("user not found")
)

const uniqueViolation = "23505"

const userColumns = `id, username, email, full_name, avatar, cover_image, watch_history,
		password, refresh_token, created_at, updated_at`

const sanitizedUserColumns = `id, username, email, full_name, avatar, cover_image, watch_history,
		created_at, updated_at`

// oneLine collapses a query for logging.
func oneLine(query string) string {
	return strings.Join(strings.Fields(query), " ")
}

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// ExistsByUsernameOrEmail reports whether any user has the given username or email.
func (r *UserReadRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR email = $2)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, username, email)

	logger.Log.Debugw("query",
		"sql", oneLine(query),
		"args", []any{username, email},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// GetByUsername returns the full record, or nil if there is no such user.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)

	logger.Log.Debugw("query",
		"sql", oneLine(query),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID returns the full record including credentials, or nil if there is no such user.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)

	logger.Log.Debugw("query",
		"sql", oneLine(query),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetSanitizedByID returns the user without password and refresh token,
// or nil if there is no such user. Credential columns are never selected.
func (r *UserReadRepository) GetSanitizedByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + sanitizedUserColumns + ` FROM users WHERE id = $1`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)

	logger.Log.Debugw("query",
		"sql", oneLine(query),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Create inserts a new user. The password must already be hashed.
func (r *UserWriteRepository) Create(ctx context.Context, user *models.UserDB) error {
	const query = `
		INSERT INTO users (id, username, email, full_name, avatar, cover_image, watch_history, password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`

	_, err := r.db.ExecContext(ctx, query,
		user.UserID, user.Username, user.Email, user.FullName,
		user.Avatar, user.CoverImage, user.WatchHistory, user.Password,
	)

	// Password hash stays out of the log
	logger.Log.Debugw("query",
		"sql", oneLine(query),
		"args", []any{user.UserID, user.Username, user.Email},
		"error", err,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicateUser
	}
	return err
}

// SetRefreshToken replaces the stored refresh token. Only this column and
// updated_at change.
func (r *UserWriteRepository) SetRefreshToken(ctx context.Context, id uuid.UUID, token string) error {
	const query = `UPDATE users SET refresh_token = $2, updated_at = NOW() WHERE id = $1`
	return r.exec(ctx, query, id, token)
}

// ClearRefreshToken removes the stored refresh token.
func (r *UserWriteRepository) ClearRefreshToken(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE users SET refresh_token = NULL, updated_at = NOW() WHERE id = $1`
	return r.exec(ctx, query, id)
}

func (r *UserWriteRepository) exec(ctx context.Context, query string, id uuid.UUID, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, append([]any{id}, args...)...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("query",
		"sql", oneLine(query),
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
