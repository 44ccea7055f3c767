package redemption

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fanattics-portal/internal/domain/error"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/usecase"
)

var errInterrupted = errors.New("redemption interrupted before completion")

// Recover finishes or undoes redemptions whose intent was left in started
// or rollback_failed for longer than olderThan. An intent whose ledger
// entry, transaction and redeemer all exist is marked completed; anything
// less is compensated. An intent that never recorded its debit is matched
// to an unclaimed debit of the same user first, see findOrphanedDebit.
func (s *Service) Recover(ctx context.Context, olderThan time.Duration) (usecase.RecoveryReport, error) {
	var report usecase.RecoveryReport

	cutoff := s.TimeProvider.Now().Add(-olderThan)
	intents, err := s.Intents.ListStale(ctx, cutoff, s.config.RecoveryBatchSize)
	if err != nil {
		return report, fmt.Errorf("failed to list stale redemption intents: %w", err)
	}

	claimed := make(map[uint64]struct{})
	for _, intent := range intents {
		if intent.LedgerEntryID != nil {
			claimed[*intent.LedgerEntryID] = struct{}{}
		}
	}

	for _, intent := range intents {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		report.Examined++

		if intent.LedgerEntryID == nil {
			if err := s.findOrphanedDebit(ctx, intent, cutoff, claimed); err != nil {
				report.Failed++
				s.Logger.Error("Failed to search for unrecorded redemption debit", map[string]any{
					"intent_id": intent.ID,
					"error":     err.Error(),
				})
				continue
			}
		}

		applied, err := s.fullyApplied(ctx, intent)
		if err != nil {
			report.Failed++
			s.Logger.Error("Failed to inspect redemption intent", map[string]any{
				"intent_id": intent.ID,
				"error":     err.Error(),
			})
			continue
		}

		if applied {
			s.closeIntent(ctx, intent, entity.IntentCompleted, nil)
			report.Completed++
			continue
		}

		s.compensate(ctx, intent, errInterrupted)
		if intent.Status == entity.IntentRolledBack {
			report.RolledBack++
		} else {
			report.Failed++
		}
	}

	s.Logger.Info("Redemption recovery finished", map[string]any{
		"examined":    report.Examined,
		"completed":   report.Completed,
		"rolled_back": report.RolledBack,
		"failed":      report.Failed,
	})
	return report, nil
}

// fullyApplied reports whether all three records of intent exist
func (s *Service) fullyApplied(ctx context.Context, intent *entity.RedemptionIntent) (bool, error) {
	if intent.LedgerEntryID == nil || intent.TransactionID == nil {
		return false, nil
	}

	if _, err := s.Ledger.GetByID(ctx, *intent.LedgerEntryID); err != nil {
		if errs.IsNotFoundError(err) {
			return false, nil
		}
		return false, err
	}

	if _, err := s.Transactions.GetByID(ctx, *intent.TransactionID); err != nil {
		if errs.IsNotFoundError(err) {
			return false, nil
		}
		return false, err
	}

	return s.Products.HasRedeemer(ctx, intent.ProductID, intent.UserID)
}

// findOrphanedDebit attaches to intent a debit that was written for it but
// never recorded: a redeem entry of the intent's user with its amount and
// reason, created between the intent's start and cutoff, that no gift-shop
// transaction and no other intent of the batch references.
func (s *Service) findOrphanedDebit(ctx context.Context, intent *entity.RedemptionIntent, cutoff time.Time, claimed map[uint64]struct{}) error {
	entries, err := s.Ledger.FindByUser(ctx, intent.UserID)
	if err != nil {
		return err
	}

	reason := entity.RedemptionReasonPrefix + intent.ProductTitle
	var candidates []*entity.LedgerEntry
	for _, entry := range entries {
		if _, taken := claimed[entry.ID]; taken {
			continue
		}
		if entry.Type != entity.TypeRedeem || entry.Amount != -intent.Points || entry.Reason != reason {
			continue
		}
		if entry.CreatedAt.Before(intent.UpdatedAt) || !entry.CreatedAt.Before(cutoff) {
			continue
		}
		candidates = append(candidates, entry)
	}
	if len(candidates) == 0 {
		return nil
	}

	txns, err := s.Transactions.ListByUser(ctx, intent.UserID)
	if err != nil {
		return err
	}
	referenced := make(map[uint64]struct{}, len(txns))
	for _, txn := range txns {
		referenced[txn.LedgerEntry.ID()] = struct{}{}
	}

	for _, entry := range candidates {
		if _, ok := referenced[entry.ID]; ok {
			continue
		}
		id := entry.ID
		intent.LedgerEntryID = &id
		claimed[id] = struct{}{}
		s.Logger.Warn("Found unrecorded redemption debit", map[string]any{
			"intent_id":       intent.ID,
			"ledger_entry_id": id,
		})
		return nil
	}
	return nil
}
