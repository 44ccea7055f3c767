package redemption

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/notification"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/usecase"
)

// Mode selects how the three redemption writes are kept all-or-nothing
type Mode string

const (
	// ModeAtomic runs the writes in one database transaction
	ModeAtomic Mode = "atomic"
	// ModeCompensating runs the writes separately behind an intent log and
	// deletes earlier records when a later write fails
	ModeCompensating Mode = "compensating"
)

// ParseMode maps a config string onto a Mode, defaulting to atomic
func ParseMode(s string) Mode {
	if Mode(s) == ModeCompensating {
		return ModeCompensating
	}
	return ModeAtomic
}

// Config tunes the redemption workflow
type Config struct {
	Mode Mode
	// SerializePerUser takes a user lock around each redemption
	SerializePerUser  bool
	LockTimeout       time.Duration
	GiftShopCacheTTL  time.Duration
	RecoveryBatchSize int
	Retry             RetryConfig
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	return Config{
		Mode:              ModeAtomic,
		LockTimeout:       30 * time.Second,
		GiftShopCacheTTL:  time.Hour,
		RecoveryBatchSize: 100,
		Retry:             DefaultRetryConfig(),
	}
}

// Dependencies are the collaborators of the Service
type Dependencies struct {
	UnitOfWork   persistence.UnitOfWork
	Users        persistence.UserRepository
	Ledger       persistence.LedgerRepository
	Transactions persistence.GiftShopTransactionRepository
	Products     persistence.ProductRepository
	Intents      persistence.RedemptionIntentRepository
	Locks        persistence.UserLockRepository
	ViewCache    cache.ViewCache
	Notifier     notification.Notifier
	TimeProvider coreport.TimeProvider
	Logger       coreport.Logger
}

var _ usecase.RedemptionUseCase = (*Service)(nil)

// Service is the gift shop: product catalog, redemptions and fulfilment
type Service struct {
	Dependencies
	config      Config
	validate    *validator.Validate
	idempotency *IdempotencyHandler
}

// NewService creates a new redemption Service
func NewService(deps Dependencies, config Config) *Service {
	if config.Mode == "" {
		config.Mode = ModeAtomic
	}
	if config.RecoveryBatchSize <= 0 {
		config.RecoveryBatchSize = DefaultConfig().RecoveryBatchSize
	}
	if config.Retry.MaxRetries <= 0 {
		config.Retry = DefaultRetryConfig()
	}

	return &Service{
		Dependencies: deps,
		config:       config,
		validate:     NewValidator(),
		idempotency:  NewIdempotencyHandler(deps.Intents),
	}
}
