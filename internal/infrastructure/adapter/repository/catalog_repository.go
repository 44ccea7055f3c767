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

var (
	_ persistence.ChallengeRepository = (*ChallengeRepository)(nil)
	_ persistence.ProductRepository   = (*ProductRepository)(nil)
)

// ChallengeRepository implements ChallengeRepository interface using GORM
type ChallengeRepository struct {
	db *gorm.DB
	dbErrors
}

// NewChallengeRepository creates a new ChallengeRepository instance
func NewChallengeRepository(db *gorm.DB, logger coreport.Logger) *ChallengeRepository {
	return &ChallengeRepository{
		db:       db,
		dbErrors: newDBErrors(logger, errs.ErrChallengeNotFound),
	}
}

func challengeToEntity(m *model.Challenge) *entity.Challenge {
	return &entity.Challenge{
		ID:          m.ID,
		Title:       m.Title,
		Slug:        m.Slug,
		Description: m.Description,
		Content:     m.Content,
		Deadline:    m.Deadline,
		Points:      m.Points,
		CreatedAt:   m.CreatedAt,
	}
}

// GetByID retrieves a challenge
func (r *ChallengeRepository) GetByID(ctx context.Context, id uint64) (*entity.Challenge, error) {
	var row model.Challenge
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting challenge", err, map[string]any{"challenge_id": id})
	}
	return challengeToEntity(&row), nil
}

// GetBySlug retrieves a challenge by its URL slug
func (r *ChallengeRepository) GetBySlug(ctx context.Context, slug string) (*entity.Challenge, error) {
	var row model.Challenge
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&row).Error; err != nil {
		return nil, r.handleDatabaseError("getting challenge by slug", err, map[string]any{"slug": slug})
	}
	return challengeToEntity(&row), nil
}

// List returns challenges ordered by deadline, open-ended last
func (r *ChallengeRepository) List(ctx context.Context) ([]*entity.Challenge, error) {
	var rows []model.Challenge
	if err := r.db.WithContext(ctx).Order("deadline IS NULL, deadline, id").Find(&rows).Error; err != nil {
		return nil, r.handleDatabaseError("listing challenges", err, nil)
	}

	challenges := make([]*entity.Challenge, 0, len(rows))
	for i := range rows {
		challenges = append(challenges, challengeToEntity(&rows[i]))
	}
	return challenges, nil
}

// ProductRepository implements ProductRepository interface using GORM.
// The redeemedBy list lives in product_redeemers.
type ProductRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	dbErrors
}

// NewProductRepository creates a new ProductRepository instance
func NewProductRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *ProductRepository {
	return &ProductRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
		dbErrors:     newDBErrors(logger, errs.ErrProductNotFound),
	}
}

func productToEntity(m *model.Product) *entity.Product {
	redeemedBy := make([]uint64, 0, len(m.Redeemers))
	for _, r := range m.Redeemers {
		redeemedBy = append(redeemedBy, r.UserID)
	}
	return &entity.Product{
		ID:         m.ID,
		Title:      m.Title,
		Price:      m.Price,
		ImageURL:   m.ImageURL,
		RedeemedBy: redeemedBy,
		IsActive:   m.IsActive,
	}
}

func preloadRedeemers(db *gorm.DB) *gorm.DB {
	return db.Order("created_at, user_id")
}

// GetByID retrieves a product with its RedeemedBy list
func (r *ProductRepository) GetByID(ctx context.Context, id uint64) (*entity.Product, error) {
	var row model.Product
	err := r.db.WithContext(ctx).Preload("Redeemers", preloadRedeemers).First(&row, id).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting product", err, map[string]any{"product_id": id})
	}
	return productToEntity(&row), nil
}

// ListActive returns the products currently offered
func (r *ProductRepository) ListActive(ctx context.Context) ([]*entity.Product, error) {
	var rows []model.Product
	err := r.db.WithContext(ctx).
		Preload("Redeemers", preloadRedeemers).
		Where("is_active = ?", true).
		Order("price, id").
		Find(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing products", err, nil)
	}

	products := make([]*entity.Product, 0, len(rows))
	for i := range rows {
		products = append(products, productToEntity(&rows[i]))
	}
	return products, nil
}

// AppendRedeemer adds userID to the product's RedeemedBy list
func (r *ProductRepository) AppendRedeemer(ctx context.Context, productID, userID uint64) error {
	fields := map[string]any{"product_id": productID, "user_id": userID}

	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", productID).Count(&count).Error; err != nil {
		return r.handleDatabaseError("checking product", err, fields)
	}
	if count == 0 {
		return errs.ErrProductNotFound
	}

	redeemer := &model.ProductRedeemer{
		ProductID: productID,
		UserID:    userID,
		CreatedAt: r.timeProvider.Now(),
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(redeemer).Error
	if err != nil {
		return r.handleDatabaseError("appending product redeemer", err, fields)
	}

	r.logger.Debug("Product redeemer recorded", fields)
	return nil
}

// HasRedeemer reports whether userID is in the product's RedeemedBy list
func (r *ProductRepository) HasRedeemer(ctx context.Context, productID, userID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ProductRedeemer{}).
		Where("product_id = ? AND user_id = ?", productID, userID).
		Count(&count).Error
	if err != nil {
		return false, r.handleDatabaseError("checking product redeemer", err, map[string]any{
			"product_id": productID,
			"user_id":    userID,
		})
	}
	return count > 0, nil
}
