package redemption

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fanattics-portal/internal/domain/error"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/cache"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/notification"
	"github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/usecase"
)

func failure(message string) usecase.RedeemResult {
	return usecase.RedeemResult{Success: false, Error: message}
}

// Redeem debits the user's points for a product. The sequence is:
// 1. Validate the request
// 2. Replay a completed request with the same idempotency key
// 3. Write the ledger debit, the gift-shop transaction and the redeemer
// 4. Invalidate cached views and notify the member
//
// No balance check is made; balances may go negative.
func (s *Service) Redeem(ctx context.Context, req usecase.RedeemRequest) usecase.RedeemResult {
	if err := s.validateRequest(req); err != nil {
		fields := map[string]any{"user_id": req.UserID, "product_id": req.ProductID}
		var verr *errs.ValidationError
		if errors.As(err, &verr) {
			for k, v := range verr.LogFields() {
				fields[k] = v
			}
		}
		s.Logger.Warn("Rejected redemption request", fields)
		return failure(usecase.RedeemErrInvalidInput)
	}

	if s.config.SerializePerUser {
		owner, err := s.Locks.AcquireLock(ctx, req.UserID, s.config.LockTimeout)
		if err != nil {
			s.Logger.Warn("Failed to acquire user lock for redemption", map[string]any{
				"user_id": req.UserID,
				"error":   err.Error(),
			})
			if errs.IsUserLockedError(err) {
				return failure(usecase.RedeemErrUserBusy)
			}
			return failure(usecase.RedeemErrFailed)
		}
		defer func() {
			if err := s.Locks.ReleaseLock(context.WithoutCancel(ctx), req.UserID, owner); err != nil {
				s.Logger.Error("Failed to release user lock", map[string]any{
					"user_id": req.UserID,
					"error":   err.Error(),
				})
			}
		}()
	}

	intent, result, done := s.openIntent(ctx, req)
	if done {
		return result
	}

	var err error
	if s.config.Mode == ModeCompensating {
		err = s.redeemCompensating(ctx, req, intent)
	} else {
		err = s.redeemAtomic(ctx, req, intent)
	}
	if err != nil {
		fields := map[string]any{"error": err.Error()}
		var rerr *errs.RedemptionError
		if errors.As(err, &rerr) {
			fields = rerr.LogFields()
		}
		fields["mode"] = string(s.config.Mode)
		s.Logger.Error("Redemption failed", fields)
		return failure(usecase.RedeemErrFailed)
	}

	s.Logger.Info("Product redeemed", map[string]any{
		"user_id":    req.UserID,
		"product_id": req.ProductID,
		"points":     req.Points,
	})
	s.afterRedemption(ctx, req)

	return usecase.RedeemResult{Success: true}
}

// openIntent resolves the idempotency key and records the intent the
// workflow will update. done reports that result is final.
func (s *Service) openIntent(ctx context.Context, req usecase.RedeemRequest) (intent *entity.RedemptionIntent, result usecase.RedeemResult, done bool) {
	if req.IdempotencyKey != "" {
		existing, found, err := s.idempotency.CheckIdempotency(ctx, req.IdempotencyKey)
		if err != nil {
			s.Logger.Error("Idempotency check failed", map[string]any{
				"idempotency_key": req.IdempotencyKey,
				"error":           err.Error(),
			})
			return nil, failure(usecase.RedeemErrFailed), true
		}

		if found {
			switch {
			case existing.UserID != req.UserID || existing.ProductID != req.ProductID:
				s.Logger.Warn("Idempotency key reused for a different redemption", map[string]any{
					"idempotency_key": req.IdempotencyKey,
					"user_id":         req.UserID,
				})
				return nil, failure(usecase.RedeemErrInvalidInput), true
			case existing.Status == entity.IntentCompleted:
				s.Logger.Info("Replaying completed redemption", map[string]any{
					"idempotency_key": req.IdempotencyKey,
					"user_id":         req.UserID,
				})
				return nil, usecase.RedeemResult{Success: true}, true
			case existing.IsPending():
				return nil, failure(usecase.RedeemErrInProgress), true
			}

			existing.Restart(req.Points, req.ProductTitle, s.TimeProvider)
			if err := s.Intents.Update(ctx, existing); err != nil {
				s.Logger.Error("Failed to restart redemption intent", map[string]any{
					"intent_id": existing.ID,
					"error":     err.Error(),
				})
				return nil, failure(usecase.RedeemErrFailed), true
			}
			return existing, usecase.RedeemResult{}, false
		}
	}

	if req.IdempotencyKey == "" && s.config.Mode != ModeCompensating {
		return nil, usecase.RedeemResult{}, false
	}

	id := req.IdempotencyKey
	if id == "" {
		id = uuid.NewString()
	}
	intent = entity.NewRedemptionIntent(id, req.UserID, req.ProductID, req.Points, req.ProductTitle, s.TimeProvider)
	if err := s.Intents.Create(ctx, intent); err != nil {
		if errors.Is(err, errs.ErrDuplicate) {
			return nil, failure(usecase.RedeemErrInProgress), true
		}
		s.Logger.Error("Failed to record redemption intent", map[string]any{
			"intent_id": id,
			"error":     err.Error(),
		})
		return nil, failure(usecase.RedeemErrFailed), true
	}
	return intent, usecase.RedeemResult{}, false
}

// redeemAtomic runs the three writes in one unit of work. A keyed intent
// is marked completed inside the same transaction.
func (s *Service) redeemAtomic(ctx context.Context, req usecase.RedeemRequest, intent *entity.RedemptionIntent) (err error) {
	fail := func(step errs.RedemptionStep, cause error) error {
		return errs.NewRedemptionError(step, req.UserID, req.ProductID, req.Points, cause)
	}

	entry, err := entity.NewRedemptionEntry(req.UserID, req.Points, req.ProductTitle, s.TimeProvider)
	if err != nil {
		s.closeIntent(ctx, intent, entity.IntentRolledBack, err)
		return fail(errs.StepLedgerDebit, err)
	}

	txCtx, err := s.UnitOfWork.Begin(ctx)
	if err != nil {
		s.closeIntent(ctx, intent, entity.IntentRolledBack, err)
		return fail(errs.StepLedgerDebit, err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := s.UnitOfWork.Rollback(txCtx); rbErr != nil {
			s.Logger.Error("Failed to roll back redemption", map[string]any{
				"user_id":    req.UserID,
				"product_id": req.ProductID,
				"error":      rbErr.Error(),
			})
		}
		if intent != nil {
			intent.LedgerEntryID = nil
			intent.TransactionID = nil
		}
		s.closeIntent(ctx, intent, entity.IntentRolledBack, err)
	}()

	if err = s.UnitOfWork.Ledger(txCtx).Create(txCtx, entry); err != nil {
		return fail(errs.StepLedgerDebit, err)
	}

	txn, err := entity.NewGiftShopTransaction(req.UserID, req.ProductID, entry.ID, s.TimeProvider)
	if err != nil {
		return fail(errs.StepGiftShopRecord, err)
	}
	if err = s.UnitOfWork.GiftShopTransactions(txCtx).Create(txCtx, txn); err != nil {
		return fail(errs.StepGiftShopRecord, err)
	}

	if err = s.UnitOfWork.Products(txCtx).AppendRedeemer(txCtx, req.ProductID, req.UserID); err != nil {
		return fail(errs.StepProductRedeemedBy, err)
	}

	if intent != nil {
		intent.LedgerEntryID = &entry.ID
		intent.TransactionID = &txn.ID
		intent.Mark(entity.IntentCompleted, nil, s.TimeProvider)
		if err = s.UnitOfWork.Intents(txCtx).Update(txCtx, intent); err != nil {
			return fail(errs.StepIntentRecord, err)
		}
	}

	if err = s.UnitOfWork.Commit(txCtx); err != nil {
		return fail(errs.StepCommit, err)
	}
	committed = true
	return nil
}

// redeemCompensating runs the writes one by one, recording progress on the
// intent, and undoes earlier writes when a later one fails. A write whose
// progress cannot be recorded on the intent is undone as well.
func (s *Service) redeemCompensating(ctx context.Context, req usecase.RedeemRequest, intent *entity.RedemptionIntent) error {
	fail := func(step errs.RedemptionStep, cause error) error {
		return errs.NewRedemptionError(step, req.UserID, req.ProductID, req.Points, cause)
	}

	entry, err := entity.NewRedemptionEntry(req.UserID, req.Points, req.ProductTitle, s.TimeProvider)
	if err != nil {
		s.closeIntent(ctx, intent, entity.IntentRolledBack, err)
		return fail(errs.StepLedgerDebit, err)
	}

	if err := s.Ledger.Create(ctx, entry); err != nil {
		s.closeIntent(ctx, intent, entity.IntentRolledBack, err)
		return fail(errs.StepLedgerDebit, err)
	}
	intent.LedgerEntryID = &entry.ID
	if err := s.saveIntent(ctx, intent); err != nil {
		s.compensate(ctx, intent, err)
		return fail(errs.StepIntentRecord, err)
	}

	txn, err := entity.NewGiftShopTransaction(req.UserID, req.ProductID, entry.ID, s.TimeProvider)
	if err == nil {
		err = s.Transactions.Create(ctx, txn)
	}
	if err != nil {
		s.compensate(ctx, intent, err)
		return fail(errs.StepGiftShopRecord, err)
	}
	intent.TransactionID = &txn.ID
	if err := s.saveIntent(ctx, intent); err != nil {
		s.compensate(ctx, intent, err)
		return fail(errs.StepIntentRecord, err)
	}

	if err := s.Products.AppendRedeemer(ctx, req.ProductID, req.UserID); err != nil {
		s.compensate(ctx, intent, err)
		return fail(errs.StepProductRedeemedBy, err)
	}

	s.closeIntent(ctx, intent, entity.IntentCompleted, nil)
	return nil
}

// compensate deletes the records intent produced, newest first. A record
// that is already gone counts as deleted. Failures are logged and leave the
// intent in rollback_failed for Recover.
func (s *Service) compensate(ctx context.Context, intent *entity.RedemptionIntent, cause error) {
	ctx = context.WithoutCancel(ctx)
	var failed error

	if intent.TransactionID != nil {
		id := *intent.TransactionID
		if err := s.retryOnTransientError(ctx, "delete gift-shop transaction", func() error {
			return ignoreNotFound(s.Transactions.Delete(ctx, id))
		}); err != nil {
			failed = err
			s.Logger.Error("Failed to delete gift-shop transaction during rollback", map[string]any{
				"intent_id":      intent.ID,
				"transaction_id": id,
				"error":          err.Error(),
			})
		}
	}

	if intent.LedgerEntryID != nil {
		id := *intent.LedgerEntryID
		if err := s.retryOnTransientError(ctx, "delete ledger entry", func() error {
			return ignoreNotFound(s.Ledger.Delete(ctx, id))
		}); err != nil {
			failed = err
			s.Logger.Error("Failed to delete ledger entry during rollback", map[string]any{
				"intent_id":       intent.ID,
				"ledger_entry_id": id,
				"error":           err.Error(),
			})
		}
	}

	if failed != nil {
		s.closeIntent(ctx, intent, entity.IntentRollbackFailed, errors.Join(cause, failed))
		return
	}
	s.closeIntent(ctx, intent, entity.IntentRolledBack, cause)
}

func ignoreNotFound(err error) error {
	if errs.IsNotFoundError(err) {
		return nil
	}
	return err
}

func (s *Service) closeIntent(ctx context.Context, intent *entity.RedemptionIntent, status entity.IntentStatus, cause error) {
	if intent == nil {
		return
	}
	intent.Mark(status, cause, s.TimeProvider)
	_ = s.saveIntent(ctx, intent)
}

func (s *Service) saveIntent(ctx context.Context, intent *entity.RedemptionIntent) error {
	if err := s.Intents.Update(context.WithoutCancel(ctx), intent); err != nil {
		s.Logger.Error("Failed to update redemption intent", map[string]any{
			"intent_id": intent.ID,
			"status":    string(intent.Status),
			"error":     err.Error(),
		})
		return err
	}
	return nil
}

// afterRedemption refreshes cached views and sends the member a notice.
// Neither step affects the result.
func (s *Service) afterRedemption(ctx context.Context, req usecase.RedeemRequest) {
	if err := s.ViewCache.Invalidate(ctx, cache.KeyGiftShop, cache.KeyLeaderboard); err != nil {
		s.Logger.Warn("Failed to invalidate cached views", map[string]any{
			"error": err.Error(),
		})
	}

	user, err := s.Users.GetByID(ctx, req.UserID)
	if err != nil {
		s.Logger.Warn("Skipping redemption notice", map[string]any{
			"user_id": req.UserID,
			"error":   err.Error(),
		})
		return
	}

	notice := notification.RedemptionNotice{
		UserID:       user.ID,
		Email:        user.Email,
		Name:         user.Name,
		ProductID:    req.ProductID,
		ProductTitle: req.ProductTitle,
		Points:       req.Points,
	}
	if err := s.Notifier.NotifyRedemption(ctx, notice); err != nil {
		s.Logger.Warn("Failed to publish redemption notice", map[string]any{
			"user_id":    req.UserID,
			"product_id": req.ProductID,
			"error":      err.Error(),
		})
	}
}
