package migration

import (
	"context"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const backfillBatchSize = 500

// BackfillTransactionTypes stores a transaction type on ledger rows written
// before the column existed
type BackfillTransactionTypes struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewBackfillTransactionTypes creates a new migration instance
func NewBackfillTransactionTypes(db *gorm.DB, logger coreport.Logger) *BackfillTransactionTypes {
	return &BackfillTransactionTypes{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *BackfillTransactionTypes) Run(ctx context.Context) error {
	m.logger.Info("Backfilling ledger transaction types", nil)

	if !m.db.Migrator().HasColumn(&model.LedgerEntry{}, "TransactionType") {
		if err := m.db.WithContext(ctx).Migrator().AddColumn(&model.LedgerEntry{}, "TransactionType"); err != nil {
			m.logger.Error("Failed to add transaction_type column", map[string]any{"error": err.Error()})
			return err
		}
	}

	var (
		rows    []model.LedgerEntry
		updated int64
	)
	result := m.db.WithContext(ctx).
		Where("transaction_type = '' OR transaction_type IS NULL").
		FindInBatches(&rows, backfillBatchSize, func(tx *gorm.DB, batch int) error {
			for _, row := range rows {
				txType := entity.InferTransactionType(row.Amount, row.Reason)
				if err := m.db.WithContext(ctx).
					Model(&model.LedgerEntry{}).
					Where("id = ?", row.ID).
					Update("transaction_type", string(txType)).Error; err != nil {
					return err
				}
				updated++
			}
			return nil
		})
	if result.Error != nil {
		m.logger.Error("Failed to backfill transaction types", map[string]any{"error": result.Error.Error()})
		return result.Error
	}

	m.logger.Info("Backfilled ledger transaction types", map[string]any{"rows": updated})
	return nil
}
