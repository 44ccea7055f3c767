package points

import (
	"time"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/usecase"
)

var _ usecase.PointsUseCase = (*Service)(nil)

// Service derives balances and statistics from the ledger and awards points
type Service struct {
	userRepo      persistence.UserRepository
	ledgerRepo    persistence.LedgerRepository
	commentRepo   persistence.CommentRepository
	challengeRepo persistence.ChallengeRepository
	viewCache     cache.ViewCache
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
	readTimeout   time.Duration
}

// NewService creates a new points Service
func NewService(
	userRepo persistence.UserRepository,
	ledgerRepo persistence.LedgerRepository,
	commentRepo persistence.CommentRepository,
	challengeRepo persistence.ChallengeRepository,
	viewCache cache.ViewCache,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		userRepo:      userRepo,
		ledgerRepo:    ledgerRepo,
		commentRepo:   commentRepo,
		challengeRepo: challengeRepo,
		viewCache:     viewCache,
		timeProvider:  timeProvider,
		logger:        logger,
	}
}

// WithReadTimeout bounds every aggregation query; zero disables the bound
func (s *Service) WithReadTimeout(timeout time.Duration) *Service {
	s.readTimeout = timeout
	return s
}
