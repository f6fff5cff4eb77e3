package implementation

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ai-videosummary-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testUser() *entity.User {
	hash := "$2a$04$notarealhashnotarealhashnotarealhash"
	return &entity.User{
		Id:                  uuid.New(),
		Email:               "user@example.com",
		Name:                "Demo User",
		Role:                entity.UserRoleUser,
		DailyUsage:          2,
		DailyUsageLastReset: time.Now().Truncate(time.Second),
		TotalUsage:          15,
		PasswordHash:        &hash,
		CreatedAt:           time.Now().Truncate(time.Second),
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileSessionStore(path)
	ctx := context.Background()

	user := testUser()
	assert.NoError(t, store.Save(ctx, user))

	loaded, err := store.Load(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, loaded)
	assert.Equal(t, user.Id, loaded.Id)
	assert.Equal(t, user.Email, loaded.Email)
	assert.Equal(t, user.DailyUsage, loaded.DailyUsage)
	assert.Equal(t, user.TotalUsage, loaded.TotalUsage)
	// The credential hash must survive the slot, or a restored session
	// written back through the repository would erase it.
	assert.Equal(t, user.PasswordHash, loaded.PasswordHash)
}

func TestFileStoreEmptySlot(t *testing.T) {
	store := NewFileSessionStore(filepath.Join(t.TempDir(), "missing.json"))

	loaded, err := store.Load(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestFileStoreCorruptSlotReadsAsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileSessionStore(path)
	ctx := context.Background()

	for _, garbage := range []string{"{not json", "", `{"id":"not-a-uuid"}`, `{}`} {
		assert.NoError(t, os.WriteFile(path, []byte(garbage), 0o600))

		loaded, err := store.Load(ctx)
		assert.NoError(t, err, garbage)
		assert.Nil(t, loaded, garbage)
	}

	// The slot still works after being corrupted.
	assert.NoError(t, store.Save(ctx, testUser()))
	loaded, err := store.Load(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, loaded)
}

func TestFileStoreSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileSessionStore(path)
	ctx := context.Background()

	first := testUser()
	assert.NoError(t, store.Save(ctx, first))

	second := testUser()
	second.Email = "premium@example.com"
	second.IsPremium = true
	assert.NoError(t, store.Save(ctx, second))

	loaded, err := store.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, second.Id, loaded.Id)
	assert.Equal(t, "premium@example.com", loaded.Email)
	assert.True(t, loaded.IsPremium)
}

func TestFileStoreClearIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileSessionStore(path)
	ctx := context.Background()

	assert.NoError(t, store.Save(ctx, testUser()))
	assert.NoError(t, store.Clear(ctx))

	loaded, err := store.Load(ctx)
	assert.NoError(t, err)
	assert.Nil(t, loaded)

	// Clearing an already-empty slot must not fail.
	assert.NoError(t, store.Clear(ctx))
}
