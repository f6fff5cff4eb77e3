package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"ai-videosummary-be/internal/repository/unitofwork"
	"ai-videosummary-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

// Needs a running Postgres; skipped unless DB_CONNECTION_STRING is set.
func TestGormConnection(t *testing.T) {
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.SummaryRepository())

	sqlDB, _ := gormDB.DB()
	assert.NoError(t, sqlDB.Ping())

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("users table reachable, %d rows", count)
	})

	t.Run("Check Summary Repository", func(t *testing.T) {
		count, err := uow.SummaryRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("video_summaries table reachable, %d rows", count)
	})
}
