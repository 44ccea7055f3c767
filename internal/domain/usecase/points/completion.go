package points

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/usecase"
)

// CompletionSet answers "has this user completed challenge X" from entries
// that were already fetched
type CompletionSet map[uint64]struct{}

// NewCompletionSet collects the challenges referenced by positive entries
func NewCompletionSet(entries []*entity.LedgerEntry) CompletionSet {
	set := make(CompletionSet)
	for _, e := range entries {
		if e != nil && e.CompletesChallenge() {
			set[e.Challenge.ID()] = struct{}{}
		}
	}
	return set
}

// Completed reports whether challengeID is in the set
func (c CompletionSet) Completed(challengeID uint64) bool {
	_, ok := c[challengeID]
	return ok
}

// ListChallenges returns every challenge with the caller's completion flag,
// using a single ledger read for the whole list
func (s *Service) ListChallenges(ctx context.Context, userID uint64) ([]usecase.ChallengeView, error) {
	challenges, err := s.challengeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list challenges: %w", err)
	}

	completions, err := s.completionsFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]usecase.ChallengeView, 0, len(challenges))
	for _, ch := range challenges {
		views = append(views, usecase.ChallengeView{
			Challenge: ch,
			Completed: completions.Completed(ch.ID),
		})
	}
	return views, nil
}

// GetChallenge returns one challenge by slug with the caller's completion flag
func (s *Service) GetChallenge(ctx context.Context, userID uint64, slug string) (*usecase.ChallengeView, error) {
	ch, err := s.challengeRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	completions, err := s.completionsFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &usecase.ChallengeView{
		Challenge: ch,
		Completed: completions.Completed(ch.ID),
	}, nil
}

func (s *Service) completionsFor(ctx context.Context, userID uint64) (CompletionSet, error) {
	if userID == 0 {
		return CompletionSet{}, nil
	}
	entries, err := s.ledgerRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger for user %d: %w", userID, err)
	}
	return NewCompletionSet(entries), nil
}
