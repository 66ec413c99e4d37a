package services_test

import (
	"fmt"
	"testing"

	"coursecraft/config"
	"coursecraft/database"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// openTestDB returns an isolated in-memory database with migrations applied
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// testConfig keeps bcrypt at minimum cost so test runs stay fast
func testConfig() *config.Config {
	return &config.Config{
		JWTKey:    "test-secret",
		SaltRound: bcrypt.MinCost,
	}
}
