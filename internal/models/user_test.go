package models

import (
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserDB_Sanitize(t *testing.T) {
	u := &UserDB{
		UserID:       uuid.New(),
		Username:     "alice",
		Email:        "alice@x.com",
		FullName:     "Alice A",
		Avatar:       "https://cdn/avatar.png",
		Password:     "$2a$10$hash",
		RefreshToken: sql.NullString{String: "token", Valid: true},
	}

	data, err := json.Marshal(u.Sanitize())
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, "alice", fields["username"])
	assert.Equal(t, u.UserID.String(), fields["_id"])
	assert.NotContains(t, fields, "password")
	assert.NotContains(t, fields, "refreshToken")
}

func TestUserDB_CredentialsNeverSerialized(t *testing.T) {
	u := &UserDB{Password: "$2a$10$hash", RefreshToken: sql.NullString{String: "token", Valid: true}}

	data, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hash")
	assert.NotContains(t, string(data), "token")
}

func TestWatchHistory_ValueScan(t *testing.T) {
	ids := WatchHistory{uuid.New(), uuid.New()}

	v, err := ids.Value()
	require.NoError(t, err)

	var got WatchHistory
	require.NoError(t, got.Scan(v))
	assert.Equal(t, ids, got)

	var fromBytes WatchHistory
	require.NoError(t, fromBytes.Scan([]byte(v.(string))))
	assert.Equal(t, ids, fromBytes)
}

func TestWatchHistory_Empty(t *testing.T) {
	v, err := WatchHistory(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	var h WatchHistory
	require.NoError(t, h.Scan(nil))
	assert.Empty(t, h)
}

func TestWatchHistory_ScanErrors(t *testing.T) {
	var h WatchHistory
	assert.Error(t, h.Scan(42))
	assert.Error(t, h.Scan("not json"))
}
