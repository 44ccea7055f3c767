package database

import (
	coreport "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/fanattics-portal/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// Repositories groups the GORM repositories built over one connection
type Repositories struct {
	Users           *repository.UserRepository
	Ledger          *repository.LedgerRepository
	Challenges      *repository.ChallengeRepository
	Products        *repository.ProductRepository
	Transactions    *repository.GiftShopTransactionRepository
	Comments        *repository.CommentRepository
	DiscussionPosts *repository.DiscussionPostRepository
	Intents         *repository.RedemptionIntentRepository
	Locks           *repository.UserLockRepository
}

// NewRepositories creates every repository over db
func NewRepositories(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *Repositories {
	return &Repositories{
		Users:           repository.NewUserRepository(db, timeProvider, logger),
		Ledger:          repository.NewLedgerRepository(db, logger),
		Challenges:      repository.NewChallengeRepository(db, logger),
		Products:        repository.NewProductRepository(db, timeProvider, logger),
		Transactions:    repository.NewGiftShopTransactionRepository(db, logger),
		Comments:        repository.NewCommentRepository(db, logger),
		DiscussionPosts: repository.NewDiscussionPostRepository(db, logger),
		Intents:         repository.NewRedemptionIntentRepository(db, logger),
		Locks:           repository.NewUserLockRepository(db, timeProvider, logger),
	}
}
