package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific advanced indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

type indexStatement struct {
	name string
	sql  string
}

// CreateAdvancedIndexes creates advanced PostgreSQL indexes for better performance
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	statements := []indexStatement{
		{
			// Leaderboard and stats scans only read positive rows
			name: "idx_ledger_earned",
			sql: `CREATE INDEX IF NOT EXISTS idx_ledger_earned
				ON ledger (user_id) INCLUDE (amount)
				WHERE amount > 0`,
		},
		{
			name: "idx_ledger_created_at_brin",
			sql: `CREATE INDEX IF NOT EXISTS idx_ledger_created_at_brin
				ON ledger USING BRIN (created_at)
				WITH (pages_per_range = 32)`,
		},
		{
			name: "idx_comments_approved",
			sql: `CREATE INDEX IF NOT EXISTS idx_comments_approved
				ON comments (user_id)
				WHERE status = 'approved' AND deleted = false`,
		},
		{
			name: "idx_redemption_intents_open",
			sql: `CREATE INDEX IF NOT EXISTS idx_redemption_intents_open
				ON redemption_intents (updated_at)
				WHERE status IN ('started', 'rollback_failed')`,
		},
	}

	db := m.db.WithContext(ctx)
	for _, statement := range statements {
		if err := db.Exec(statement.sql).Error; err != nil {
			m.logger.Error("Failed to create advanced index", map[string]any{
				"index": statement.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL performance tweaks. Failures
// are logged and skipped.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	db := m.db.WithContext(ctx)

	// The ledger is append-only; intents are rewritten at every step
	if err := db.Exec(`ALTER TABLE redemption_intents SET (fillfactor = 80)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for redemption_intents table", map[string]any{
			"error": err.Error(),
		})
	}

	if err := db.Exec(`ALTER TABLE ledger ALTER COLUMN user_id SET STATISTICS 1000`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for ledger.user_id", map[string]any{
			"error": err.Error(),
		})
	}

	m.logger.Info("PostgreSQL performance tweaks applied", nil)
}
