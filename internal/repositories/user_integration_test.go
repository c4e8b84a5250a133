package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Shoyeb45/u-tube/internal/db"
	"github.com/Shoyeb45/u-tube/internal/models"
)

func setupUserPostgresContainer(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { container.Terminate(context.Background()) })

	host, _ := container.Host(ctx)
	port, _ := container.MappedPort(ctx, "5432")
	uri := fmt.Sprintf("postgres://postgres:password@%s:%d", host, port.Int())

	var conn *sqlx.DB
	for i := 0; i < 10; i++ {
		conn, err = db.Connect(ctx, db.DSN(uri, "testdb", "disable"), 4, 2)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.Migrate(ctx, conn))
	return conn
}

func TestUserRepositories_Postgres(t *testing.T) {
	conn := setupUserPostgresContainer(t)
	reader := NewUserReadRepository(conn)
	writer := NewUserWriteRepository(conn)
	ctx := context.Background()

	user := &models.UserDB{
		UserID:   uuid.New(),
		Username: "alice",
		Email:    "alice@x.com",
		FullName: "Alice A",
		Avatar:   "https://cdn/a.png",
		Password: "$2a$10$hash",
	}
	require.NoError(t, writer.Create(ctx, user))

	t.Run("Exists", func(t *testing.T) {
		exists, err := reader.ExistsByUsernameOrEmail(ctx, "alice", "other@x.com")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = reader.ExistsByUsernameOrEmail(ctx, "bob", "bob@x.com")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("DuplicateRejectedByIndex", func(t *testing.T) {
		dup := *user
		dup.UserID = uuid.New()
		dup.Username = "alice2"
		assert.ErrorIs(t, writer.Create(ctx, &dup), ErrDuplicateUser)
	})

	t.Run("EmptyAvatarRejected", func(t *testing.T) {
		bad := *user
		bad.UserID = uuid.New()
		bad.Username, bad.Email, bad.Avatar = "carol", "carol@x.com", ""
		assert.Error(t, writer.Create(ctx, &bad))
	})

	t.Run("RefreshTokenLifecycle", func(t *testing.T) {
		require.NoError(t, writer.SetRefreshToken(ctx, user.UserID, "rt-1"))

		got, err := reader.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "rt-1", got.RefreshToken.String)
		assert.Equal(t, "$2a$10$hash", got.Password)

		require.NoError(t, writer.ClearRefreshToken(ctx, user.UserID))
		got, err = reader.GetByID(ctx, user.UserID)
		require.NoError(t, err)
		assert.False(t, got.RefreshToken.Valid)
	})

	t.Run("Sanitized", func(t *testing.T) {
		got, err := reader.GetSanitizedByID(ctx, user.UserID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "alice", got.Username)
		assert.Empty(t, got.WatchHistory)
	})

	t.Run("Missing", func(t *testing.T) {
		got, err := reader.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, got)
		assert.ErrorIs(t, writer.ClearRefreshToken(ctx, uuid.New()), ErrUserNotFound)
	})
}
