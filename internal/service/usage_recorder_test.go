package service

import (
	"context"
	"testing"
	"time"

	"ai-videosummary-be/internal/dto"
	"ai-videosummary-be/internal/repository/memory"

	"ai-videosummary-be/internal/pkg/mailer"

	"github.com/stretchr/testify/assert"
)

func TestRecordIncrementsBothCounters(t *testing.T) {
	factory := memory.NewFactory()
	store := memory.NewSessionStore()
	seedUser(t, factory, "user@example.com", "password")

	session := NewSessionService(factory, store, mailer.NoopEmailService{}, nil)
	assert.NoError(t, session.Init(context.Background()))
	_, err := session.Login(context.Background(), &dto.LoginRequest{
		Email:    "user@example.com",
		Password: "password",
	})
	assert.NoError(t, err)

	recorder := NewUsageRecorder(session)
	snapshot := session.Current()

	updated, err := recorder.Record(context.Background(), snapshot)
	assert.NoError(t, err)
	assert.Equal(t, 1, updated.DailyUsage)
	assert.Equal(t, 1, updated.TotalUsage)

	// The session manager saw the same write.
	assert.Equal(t, 1, session.Current().DailyUsage)
	assert.Equal(t, 1, session.Current().TotalUsage)
}

func TestRecordResetsStaleDailyCounter(t *testing.T) {
	factory := memory.NewFactory()
	store := memory.NewSessionStore()
	user := seedUser(t, factory, "user@example.com", "password")

	// Counter left over from yesterday.
	user.DailyUsage = 3
	user.TotalUsage = 40
	user.DailyUsageLastReset = time.Now().AddDate(0, 0, -1)
	assert.NoError(t, factory.Users.Update(context.Background(), user))

	session := NewSessionService(factory, store, mailer.NoopEmailService{}, nil)
	assert.NoError(t, session.Init(context.Background()))
	_, err := session.Login(context.Background(), &dto.LoginRequest{
		Email:    "user@example.com",
		Password: "password",
	})
	assert.NoError(t, err)

	recorder := NewUsageRecorder(session)
	updated, err := recorder.Record(context.Background(), session.Current())
	assert.NoError(t, err)

	// First summary of the new day lands on a fresh count.
	assert.Equal(t, 1, updated.DailyUsage)
	assert.Equal(t, 41, updated.TotalUsage)
}

func TestRecordWithoutSessionFails(t *testing.T) {
	session, factory := newTestSession(t)
	user := seedUser(t, factory, "user@example.com", "password")

	recorder := NewUsageRecorder(session)
	_, err := recorder.Record(context.Background(), user)
	assert.ErrorIs(t, err, dto.ErrNotAuthenticated)
}
