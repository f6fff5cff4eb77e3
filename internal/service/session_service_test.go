package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"ai-videosummary-be/internal/dto"
	"ai-videosummary-be/internal/entity"
	"ai-videosummary-be/internal/pkg/mailer"
	"ai-videosummary-be/internal/repository/implementation"
	"ai-videosummary-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newTestSession(t *testing.T) (ISessionService, *memory.Factory) {
	t.Helper()
	factory := memory.NewFactory()
	store := memory.NewSessionStore()
	svc := NewSessionService(factory, store, mailer.NoopEmailService{}, nil)
	if err := svc.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	return svc, factory
}

func seedUser(t *testing.T, factory *memory.Factory, email, password string) *entity.User {
	t.Helper()
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	hash := string(hashBytes)
	user := &entity.User{
		Id:                  uuid.New(),
		Email:               email,
		PasswordHash:        &hash,
		Name:                "Test User",
		Role:                entity.UserRoleUser,
		DailyUsageLastReset: time.Now(),
		CreatedAt:           time.Now(),
	}
	if err := factory.Users.Create(context.Background(), user); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return user
}

func TestInitWithEmptySlot(t *testing.T) {
	svc, _ := newTestSession(t)

	assert.Equal(t, SessionStateUnauthenticated, svc.State())
	assert.Nil(t, svc.Current())
}

func TestInitRestoresSavedSession(t *testing.T) {
	factory := memory.NewFactory()
	store := memory.NewSessionStore()
	user := seedUser(t, factory, "user@example.com", "password")
	if err := store.Save(context.Background(), user); err != nil {
		t.Fatalf("save: %v", err)
	}

	svc := NewSessionService(factory, store, mailer.NoopEmailService{}, nil)
	assert.Equal(t, SessionStateInitializing, svc.State())

	err := svc.Init(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, SessionStateAuthenticated, svc.State())

	current := svc.Current()
	assert.NotNil(t, current)
	assert.Equal(t, user.Email, current.Email)
}

func TestLoginSuccess(t *testing.T) {
	svc, factory := newTestSession(t)
	seedUser(t, factory, "user@example.com", "password")

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "user@example.com",
		Password: "password",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, "user@example.com", res.User.Email)
	assert.Equal(t, SessionStateAuthenticated, svc.State())
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, factory := newTestSession(t)
	seedUser(t, factory, "user@example.com", "password")

	_, errWrongPassword := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "user@example.com",
		Password: "nope",
	})
	_, errUnknownEmail := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ghost@example.com",
		Password: "password",
	})

	assert.ErrorIs(t, errWrongPassword, dto.ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknownEmail, dto.ErrInvalidCredentials)
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
	assert.Equal(t, SessionStateUnauthenticated, svc.State())
}

func TestSignupCreatesFreshFreeAccount(t *testing.T) {
	svc, factory := newTestSession(t)

	res, err := svc.Signup(context.Background(), &dto.RegisterRequest{
		Email:    "new@example.com",
		Password: "secret123",
		Name:     "Newcomer",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.False(t, res.User.IsPremium)
	assert.Equal(t, 0, res.User.DailyUsage)
	assert.Equal(t, 0, res.User.TotalUsage)
	assert.Equal(t, SessionStateAuthenticated, svc.State())

	// The account must be loginable afterwards.
	_ = factory
	assert.NoError(t, svc.Logout(context.Background()))
	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "new@example.com",
		Password: "secret123",
	})
	assert.NoError(t, err)
}

func TestSignupRejectsTakenEmail(t *testing.T) {
	svc, factory := newTestSession(t)
	seedUser(t, factory, "user@example.com", "password")

	_, err := svc.Signup(context.Background(), &dto.RegisterRequest{
		Email:    "user@example.com",
		Password: "whatever1",
		Name:     "Copycat",
	})
	assert.ErrorIs(t, err, dto.ErrEmailTaken)
}

func TestLogoutIsIdempotent(t *testing.T) {
	svc, factory := newTestSession(t)
	seedUser(t, factory, "user@example.com", "password")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "user@example.com",
		Password: "password",
	})
	assert.NoError(t, err)

	assert.NoError(t, svc.Logout(context.Background()))
	assert.Equal(t, SessionStateUnauthenticated, svc.State())
	assert.Nil(t, svc.Current())

	// A second logout must not fail.
	assert.NoError(t, svc.Logout(context.Background()))
	assert.Equal(t, SessionStateUnauthenticated, svc.State())
}

func TestSessionSurvivesRestart(t *testing.T) {
	factory := memory.NewFactory()
	store := memory.NewSessionStore()
	seedUser(t, factory, "user@example.com", "password")

	first := NewSessionService(factory, store, mailer.NoopEmailService{}, nil)
	assert.NoError(t, first.Init(context.Background()))
	_, err := first.Login(context.Background(), &dto.LoginRequest{
		Email:    "user@example.com",
		Password: "password",
	})
	assert.NoError(t, err)

	// A new service over the same store plays the role of a restart.
	second := NewSessionService(factory, store, mailer.NoopEmailService{}, nil)
	assert.NoError(t, second.Init(context.Background()))
	assert.Equal(t, SessionStateAuthenticated, second.State())
	assert.Equal(t, "user@example.com", second.Current().Email)
}

func TestFileStoreRestartKeepsCredentials(t *testing.T) {
	factory := memory.NewFactory()
	path := filepath.Join(t.TempDir(), "session.json")
	seedUser(t, factory, "user@example.com", "password")

	first := NewSessionService(factory, implementation.NewFileSessionStore(path), mailer.NoopEmailService{}, nil)
	assert.NoError(t, first.Init(context.Background()))
	_, err := first.Login(context.Background(), &dto.LoginRequest{
		Email:    "user@example.com",
		Password: "password",
	})
	assert.NoError(t, err)

	// Restart, then touch the counters so the restored snapshot flows back
	// through UpdateUser into the repository row.
	second := NewSessionService(factory, implementation.NewFileSessionStore(path), mailer.NoopEmailService{}, nil)
	assert.NoError(t, second.Init(context.Background()))
	assert.NotNil(t, second.Current().PasswordHash)

	_, err = NewUsageRecorder(second).Record(context.Background(), second.Current())
	assert.NoError(t, err)

	stored, err := factory.Users.FindOne(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, stored.PasswordHash)

	// The account must still be loginable with the original password.
	assert.NoError(t, second.Logout(context.Background()))
	_, err = second.Login(context.Background(), &dto.LoginRequest{
		Email:    "user@example.com",
		Password: "password",
	})
	assert.NoError(t, err)
}

func TestUpdateUserRequiresSession(t *testing.T) {
	svc, factory := newTestSession(t)
	user := seedUser(t, factory, "user@example.com", "password")

	err := svc.UpdateUser(context.Background(), user)
	assert.ErrorIs(t, err, dto.ErrNotAuthenticated)
}

func TestUpdateUserPersistsEverywhere(t *testing.T) {
	factory := memory.NewFactory()
	store := memory.NewSessionStore()
	user := seedUser(t, factory, "user@example.com", "password")

	svc := NewSessionService(factory, store, mailer.NoopEmailService{}, nil)
	assert.NoError(t, svc.Init(context.Background()))
	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "user@example.com",
		Password: "password",
	})
	assert.NoError(t, err)

	updated := svc.Current()
	updated.DailyUsage = 2
	updated.TotalUsage = 9
	assert.NoError(t, svc.UpdateUser(context.Background(), updated))

	// In-memory snapshot.
	assert.Equal(t, 2, svc.Current().DailyUsage)

	// Repository row.
	stored, err := factory.Users.FindOne(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 9, stored.TotalUsage)

	// Session slot, via a fresh restore.
	restored := NewSessionService(factory, store, mailer.NoopEmailService{}, nil)
	assert.NoError(t, restored.Init(context.Background()))
	assert.Equal(t, 2, restored.Current().DailyUsage)
	assert.Equal(t, user.Email, restored.Current().Email)
}
