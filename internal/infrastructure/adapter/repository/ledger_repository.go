package repository

import (
	"context"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fanattics-portal/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

var _ persistence.LedgerRepository = (*LedgerRepository)(nil)

// LedgerRepository implements LedgerRepository interface using GORM
type LedgerRepository struct {
	db     *gorm.DB
	logger coreport.Logger
	dbErrors
}

// NewLedgerRepository creates a new LedgerRepository instance
func NewLedgerRepository(db *gorm.DB, logger coreport.Logger) *LedgerRepository {
	return &LedgerRepository{
		db:       db,
		logger:   logger,
		dbErrors: newDBErrors(logger, errs.ErrLedgerEntryNotFound),
	}
}

// modelToEntity converts a ledger row to an entity, classifying legacy rows
// that carry no transaction type
func (r *LedgerRepository) modelToEntity(m *model.LedgerEntry) *entity.LedgerEntry {
	txType := entity.TransactionType(m.TransactionType)
	if !txType.IsValid() {
		txType = entity.InferTransactionType(m.Amount, m.Reason)
	}

	entry := &entity.LedgerEntry{
		ID:        m.ID,
		User:      entity.Ref[*entity.User](m.UserID),
		Amount:    m.Amount,
		Reason:    m.Reason,
		Type:      txType,
		CreatedAt: m.CreatedAt,
	}
	if m.ChallengeID != nil {
		entry.Challenge = entity.Ref[*entity.Challenge](*m.ChallengeID)
	}
	return entry
}

// Create stores an entry and assigns its ID
func (r *LedgerRepository) Create(ctx context.Context, entry *entity.LedgerEntry) error {
	row := &model.LedgerEntry{
		UserID:          entry.UserID(),
		Amount:          entry.Amount,
		Reason:          entry.Reason,
		ChallengeID:     optionalID(entry.Challenge.ID()),
		TransactionType: string(entry.Type),
		CreatedAt:       entry.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return r.handleDatabaseError("creating ledger entry", err, map[string]any{
			"user_id": entry.UserID(),
			"amount":  entry.Amount,
		})
	}
	entry.ID = row.ID

	r.logger.Info("Ledger entry created", map[string]any{
		"ledger_entry_id":  entry.ID,
		"user_id":          entry.UserID(),
		"amount":           entry.Amount,
		"transaction_type": string(entry.Type),
	})
	return nil
}

// Delete removes an entry
func (r *LedgerRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.LedgerEntry{}, id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting ledger entry", result.Error, map[string]any{"ledger_entry_id": id})
	}
	if result.RowsAffected == 0 {
		return errs.ErrLedgerEntryNotFound
	}

	r.logger.Warn("Ledger entry deleted", map[string]any{"ledger_entry_id": id})
	return nil
}

// GetByID retrieves one entry
func (r *LedgerRepository) GetByID(ctx context.Context, id uint64) (*entity.LedgerEntry, error) {
	var row model.LedgerEntry
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting ledger entry", err, map[string]any{"ledger_entry_id": id})
	}
	return r.modelToEntity(&row), nil
}

// FindByUser returns all entries of a user, oldest first
func (r *LedgerRepository) FindByUser(ctx context.Context, userID uint64) ([]*entity.LedgerEntry, error) {
	var rows []model.LedgerEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at, id").
		Find(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("finding ledger entries", err, map[string]any{"user_id": userID})
	}
	return r.toEntities(rows), nil
}

// FindByUsers returns the entries of all given users in a single query
func (r *LedgerRepository) FindByUsers(ctx context.Context, userIDs []uint64) ([]*entity.LedgerEntry, error) {
	db := r.db.WithContext(ctx).Order("user_id, created_at, id")
	if len(userIDs) > 0 {
		db = db.Where("user_id IN ?", userIDs)
	}

	var rows []model.LedgerEntry
	if err := db.Find(&rows).Error; err != nil {
		return nil, r.handleDatabaseError("finding ledger entries of users", err, map[string]any{"user_count": len(userIDs)})
	}
	return r.toEntities(rows), nil
}

func (r *LedgerRepository) toEntities(rows []model.LedgerEntry) []*entity.LedgerEntry {
	entries := make([]*entity.LedgerEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, r.modelToEntity(&rows[i]))
	}
	return entries
}
