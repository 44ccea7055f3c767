package database

import (
	"context"
	"strings"
	"testing"

	coreport "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
	applogger "github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/time"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestDBManager provides a migrated in-memory sqlite database for tests
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager connects a private in-memory database and migrates it.
// The connection is closed when the test finishes.
func NewTestDBManager(t testing.TB) *TestDBManager {
	t.Helper()

	logger := applogger.NewNoopLogger()
	timeProvider := timeprovider.NewRealTimeProvider()
	config := SQLiteMemoryConfig("test_" + strings.ReplaceAll(uuid.NewString(), "-", ""))

	manager := NewManager(config, logger, timeProvider)
	if _, err := manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	migrations, err := manager.MigrationManager()
	if err != nil {
		t.Fatalf("Failed to get migration manager: %v", err)
	}
	if err := migrations.MigrateAll(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// DB returns the GORM handle of the test database
func (m *TestDBManager) DB() *gorm.DB {
	return m.Manager.DB()
}

// Repositories builds repositories over the test database
func (m *TestDBManager) Repositories() *Repositories {
	return m.Manager.Repositories()
}

// Create inserts the given model rows, failing the test on error
func (m *TestDBManager) Create(t testing.TB, rows ...any) {
	t.Helper()

	for _, row := range rows {
		if err := m.DB().Create(row).Error; err != nil {
			t.Fatalf("Failed to create test row %T: %v", row, err)
		}
	}
}
