package persistence

import (
	"context"
)

// UnitOfWork coordinates writes across repositories inside one database
// transaction. Begin returns a context that carries the transaction; the
// repository getters bind to it.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Ledger returns a ledger repository bound to the current transaction
	Ledger(ctx context.Context) LedgerRepository

	// GiftShopTransactions returns a gift-shop repository bound to the current transaction
	GiftShopTransactions(ctx context.Context) GiftShopTransactionRepository

	// Products returns a product repository bound to the current transaction
	Products(ctx context.Context) ProductRepository

	// Intents returns a redemption intent repository bound to the current transaction
	Intents(ctx context.Context) RedemptionIntentRepository
}
