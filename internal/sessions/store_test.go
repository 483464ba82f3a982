package sessions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/account-service/internal/config"
	"github.com/magabrotheeeer/account-service/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() { mr.Close() })

	cfg := config.RedisConnection{
		AddressRedis: mr.Addr(),
		Password:     "",
		DB:           0,
		User:         "",
	}
	session := config.Session{
		CookieName: "session_id",
		TTL:        time.Hour,
	}

	store, err := InitServer(context.Background(), cfg, session)
	require.NoError(t, err)
	return store
}

func TestCreateAndGet(t *testing.T) {
	store := setupTestStore(t)

	expected := models.SessionData{
		UserID:   "64f000000000000000000001",
		Username: "alice",
		Email:    "alice@example.com",
		Bio:      "",
	}
	token, err := store.Create(context.Background(), expected)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	actual, err := store.Get(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, expected, *actual)
}

func TestGetNotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.Get(context.Background(), "no_such_token")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSaveOverwritesSnapshot(t *testing.T) {
	store := setupTestStore(t)

	data := models.SessionData{UserID: "id1", Username: "alice"}
	token, err := store.Create(context.Background(), data)
	require.NoError(t, err)

	data.Bio = "hello"
	err = store.Save(context.Background(), token, data)
	require.NoError(t, err)

	actual, err := store.Get(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "hello", actual.Bio)
}

func TestDestroy(t *testing.T) {
	store := setupTestStore(t)

	token, err := store.Create(context.Background(), models.SessionData{UserID: "id1"})
	require.NoError(t, err)

	err = store.Destroy(context.Background(), token)
	require.NoError(t, err)

	_, err = store.Get(context.Background(), token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDestroyMissingSessionIsNoError(t *testing.T) {
	store := setupTestStore(t)

	err := store.Destroy(context.Background(), "no_such_token")
	require.NoError(t, err)
}

func TestCookieRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	cookie := store.Cookie("tok123")
	assert.Equal(t, "session_id", cookie.Name)
	assert.True(t, cookie.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(cookie)

	token, ok := store.TokenFromRequest(req)
	require.True(t, ok)
	assert.Equal(t, "tok123", token)
}

func TestExpiredCookieClearsValue(t *testing.T) {
	store := setupTestStore(t)

	cookie := store.ExpiredCookie()
	assert.Equal(t, "session_id", cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(cookie)

	_, ok := store.TokenFromRequest(req)
	assert.False(t, ok)
}
