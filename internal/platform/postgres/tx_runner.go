package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/moloke/lightverse/internal/store"
)

// TxRunner implements store.TxRunner on a *sql.DB. Each call opens one
// transaction and hands the callback stores bound to it.
type TxRunner struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ store.TxRunner = (*TxRunner)(nil)

// NewTxRunner creates a transaction runner over the given database.
func NewTxRunner(db *sql.DB, log *slog.Logger) *TxRunner {
	if db == nil {
		panic("db is required for TxRunner")
	}
	if log == nil {
		log = slog.Default()
	}
	return &TxRunner{db: db, logger: log}
}

// RunInTx implements store.TxRunner.RunInTx.
func (r *TxRunner) RunInTx(
	ctx context.Context,
	fn func(ctx context.Context, s store.TxStores) error,
) error {
	return store.RunInTransaction(ctx, r.db, func(ctx context.Context, tx *sql.Tx) error {
		return fn(ctx, store.TxStores{
			Users:    NewPostgresUserStore(tx, r.logger),
			Sessions: NewPostgresSessionStore(tx, r.logger),
			Streaks:  NewPostgresStreakStore(tx, r.logger),
		})
	})
}
