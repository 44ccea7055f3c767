package repository

import (
	"context"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fanattics-portal/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ persistence.GiftShopTransactionRepository = (*GiftShopTransactionRepository)(nil)

// GiftShopTransactionRepository implements GiftShopTransactionRepository interface using GORM
type GiftShopTransactionRepository struct {
	db     *gorm.DB
	logger coreport.Logger
	dbErrors
}

// NewGiftShopTransactionRepository creates a new GiftShopTransactionRepository instance
func NewGiftShopTransactionRepository(db *gorm.DB, logger coreport.Logger) *GiftShopTransactionRepository {
	return &GiftShopTransactionRepository{
		db:       db,
		logger:   logger,
		dbErrors: newDBErrors(logger, errs.ErrTransactionNotFound),
	}
}

func (r *GiftShopTransactionRepository) modelToEntity(m *model.GiftShopTransaction) *entity.GiftShopTransaction {
	txn := &entity.GiftShopTransaction{
		ID:              m.ID,
		User:            entity.Ref[*entity.User](m.UserID),
		Product:         entity.Ref[*entity.Product](m.ProductID),
		LedgerEntry:     entity.Ref[*entity.LedgerEntry](m.LedgerEntryID),
		Status:          entity.GiftShopStatus(m.Status),
		ShippingAddress: m.ShippingAddress,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.Product.ID != 0 {
		txn.Product = entity.Populated(productToEntity(&m.Product))
	}
	return txn
}

// Create stores a transaction and assigns its ID
func (r *GiftShopTransactionRepository) Create(ctx context.Context, txn *entity.GiftShopTransaction) error {
	row := &model.GiftShopTransaction{
		UserID:          txn.User.ID(),
		ProductID:       txn.Product.ID(),
		LedgerEntryID:   txn.LedgerEntry.ID(),
		Status:          string(txn.Status),
		ShippingAddress: txn.ShippingAddress,
		CreatedAt:       txn.CreatedAt,
		UpdatedAt:       txn.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error; err != nil {
		return r.handleDatabaseError("creating gift-shop transaction", err, map[string]any{
			"user_id":         row.UserID,
			"product_id":      row.ProductID,
			"ledger_entry_id": row.LedgerEntryID,
		})
	}
	txn.ID = row.ID

	r.logger.Info("Gift-shop transaction created", map[string]any{
		"transaction_id": txn.ID,
		"user_id":        row.UserID,
		"product_id":     row.ProductID,
	})
	return nil
}

// Delete removes a transaction
func (r *GiftShopTransactionRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.GiftShopTransaction{}, id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting gift-shop transaction", result.Error, map[string]any{"transaction_id": id})
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}

	r.logger.Warn("Gift-shop transaction deleted", map[string]any{"transaction_id": id})
	return nil
}

// GetByID retrieves a transaction with its product
func (r *GiftShopTransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.GiftShopTransaction, error) {
	var row model.GiftShopTransaction
	if err := r.db.WithContext(ctx).Preload("Product").
		Preload("Product.Redeemers", preloadRedeemers).First(&row, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting gift-shop transaction", err, map[string]any{"transaction_id": id})
	}
	return r.modelToEntity(&row), nil
}

// Update saves status and shipping changes
func (r *GiftShopTransactionRepository) Update(ctx context.Context, txn *entity.GiftShopTransaction) error {
	result := r.db.WithContext(ctx).
		Model(&model.GiftShopTransaction{}).
		Where("id = ?", txn.ID).
		Updates(map[string]any{
			"status":           string(txn.Status),
			"shipping_address": txn.ShippingAddress,
			"updated_at":       txn.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating gift-shop transaction", result.Error, map[string]any{"transaction_id": txn.ID})
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}

// ListByUser returns a user's transactions, newest first, with products populated
func (r *GiftShopTransactionRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.GiftShopTransaction, error) {
	var rows []model.GiftShopTransaction
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Redeemers", preloadRedeemers).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing gift-shop transactions", err, map[string]any{"user_id": userID})
	}

	txns := make([]*entity.GiftShopTransaction, 0, len(rows))
	for i := range rows {
		txns = append(txns, r.modelToEntity(&rows[i]))
	}
	return txns, nil
}
