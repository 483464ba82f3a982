package mongodb_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/account-service/internal/models"
	"github.com/magabrotheeeer/account-service/internal/storage"
	"github.com/magabrotheeeer/account-service/internal/storage/mongodb"
)

func setupTestStorage(t *testing.T) *mongodb.Storage {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017")
	require.NoError(t, err)

	uri := fmt.Sprintf("mongodb://%s:%s", host, port.Port())
	store, err := mongodb.New(ctx, uri, "account_service_test")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close(ctx)
	})
	return store
}

func TestStorage_RegisterAndGetUser(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	user := models.User{
		Username:     "testuser",
		Email:        "test@example.com",
		PasswordHash: "hashedpassword",
		Bio:          "",
		CreatedAt:    time.Now().UTC(),
	}

	id, err := store.RegisterUser(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := store.GetUserByUsername(ctx, "testuser")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID.Hex())
	assert.Equal(t, "test@example.com", got.Email)
	assert.Equal(t, "hashedpassword", got.PasswordHash)
	assert.Empty(t, got.Bio)

	byID, err := store.GetUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, got.Username, byID.Username)
}

func TestStorage_RegisterUserDuplicateUsername(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	user := models.User{
		Username:     "duplicate",
		Email:        "first@example.com",
		PasswordHash: "hash1",
		CreatedAt:    time.Now().UTC(),
	}
	_, err := store.RegisterUser(ctx, user)
	require.NoError(t, err)

	user.Email = "second@example.com"
	_, err = store.RegisterUser(ctx, user)
	require.ErrorIs(t, err, storage.ErrUserExists)
}

func TestStorage_GetUserByUsernameNotFound(t *testing.T) {
	store := setupTestStorage(t)

	_, err := store.GetUserByUsername(context.Background(), "nonexistent")
	require.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestStorage_UpdateProfilePartial(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	id, err := store.RegisterUser(ctx, models.User{
		Username:     "profileuser",
		Email:        "old@example.com",
		PasswordHash: "hash",
		Bio:          "old bio",
		CreatedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)

	bio := "new bio"
	matched, err := store.UpdateProfile(ctx, id, models.ProfileUpdate{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	got, err := store.GetUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "new bio", got.Bio)
	assert.Equal(t, "old@example.com", got.Email, "omitted field must stay unchanged")
	assert.False(t, got.UpdatedAt.IsZero())

	empty := ""
	matched, err = store.UpdateProfile(ctx, id, models.ProfileUpdate{Email: &empty})
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	got, err = store.GetUser(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, got.Email, "explicit empty value must be written")
	assert.Equal(t, "new bio", got.Bio)
}

func TestStorage_UpdateProfileUnknownUser(t *testing.T) {
	store := setupTestStorage(t)

	bio := "bio"
	matched, err := store.UpdateProfile(context.Background(), "64f000000000000000000099", models.ProfileUpdate{Bio: &bio})
	require.NoError(t, err)
	assert.Zero(t, matched)
}
