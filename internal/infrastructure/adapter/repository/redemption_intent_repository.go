package repository

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fanattics-portal/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

var _ persistence.RedemptionIntentRepository = (*RedemptionIntentRepository)(nil)

// RedemptionIntentRepository implements RedemptionIntentRepository interface using GORM
type RedemptionIntentRepository struct {
	db *gorm.DB
	dbErrors
}

// NewRedemptionIntentRepository creates a new RedemptionIntentRepository instance
func NewRedemptionIntentRepository(db *gorm.DB, logger coreport.Logger) *RedemptionIntentRepository {
	return &RedemptionIntentRepository{
		db:       db,
		dbErrors: newDBErrors(logger, errs.ErrIntentNotFound),
	}
}

func intentToEntity(m *model.RedemptionIntent) *entity.RedemptionIntent {
	return &entity.RedemptionIntent{
		ID:            m.ID,
		UserID:        m.UserID,
		ProductID:     m.ProductID,
		Points:        m.Points,
		ProductTitle:  m.ProductTitle,
		Status:        entity.IntentStatus(m.Status),
		LedgerEntryID: m.LedgerEntryID,
		TransactionID: m.TransactionID,
		Error:         m.Error,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func intentToModel(i *entity.RedemptionIntent) *model.RedemptionIntent {
	return &model.RedemptionIntent{
		ID:            i.ID,
		UserID:        i.UserID,
		ProductID:     i.ProductID,
		Points:        i.Points,
		ProductTitle:  i.ProductTitle,
		Status:        string(i.Status),
		LedgerEntryID: i.LedgerEntryID,
		TransactionID: i.TransactionID,
		Error:         i.Error,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

// Create stores a new intent
func (r *RedemptionIntentRepository) Create(ctx context.Context, intent *entity.RedemptionIntent) error {
	if err := r.db.WithContext(ctx).Create(intentToModel(intent)).Error; err != nil {
		return r.handleDatabaseError("creating redemption intent", err, map[string]any{"intent_id": intent.ID})
	}
	return nil
}

// Update saves status and produced IDs
func (r *RedemptionIntentRepository) Update(ctx context.Context, intent *entity.RedemptionIntent) error {
	result := r.db.WithContext(ctx).
		Model(&model.RedemptionIntent{}).
		Where("id = ?", intent.ID).
		Updates(map[string]any{
			"points":          intent.Points,
			"product_title":   intent.ProductTitle,
			"status":          string(intent.Status),
			"ledger_entry_id": intent.LedgerEntryID,
			"transaction_id":  intent.TransactionID,
			"error":           intent.Error,
			"updated_at":      intent.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating redemption intent", result.Error, map[string]any{"intent_id": intent.ID})
	}
	if result.RowsAffected == 0 {
		return errs.ErrIntentNotFound
	}
	return nil
}

// GetByID retrieves an intent
func (r *RedemptionIntentRepository) GetByID(ctx context.Context, id string) (*entity.RedemptionIntent, error) {
	var row model.RedemptionIntent
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, r.handleDatabaseError("getting redemption intent", err, map[string]any{"intent_id": id})
	}
	return intentToEntity(&row), nil
}

// ListStale returns started or rollback_failed intents last updated before cutoff
func (r *RedemptionIntentRepository) ListStale(ctx context.Context, cutoff time.Time, limit int) ([]*entity.RedemptionIntent, error) {
	db := r.db.WithContext(ctx).
		Where("status IN ? AND updated_at < ?",
			[]string{string(entity.IntentStarted), string(entity.IntentRollbackFailed)}, cutoff).
		Order("updated_at, id")
	if limit > 0 {
		db = db.Limit(limit)
	}

	var rows []model.RedemptionIntent
	if err := db.Find(&rows).Error; err != nil {
		return nil, r.handleDatabaseError("listing stale redemption intents", err, nil)
	}

	intents := make([]*entity.RedemptionIntent, 0, len(rows))
	for i := range rows {
		intents = append(intents, intentToEntity(&rows[i]))
	}
	return intents, nil
}
