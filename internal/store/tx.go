package store

import "context"

// TxStores bundles the stores that participate in one transaction, all
// bound to the same underlying *sql.Tx.
type TxStores struct {
	Users    UserStore
	Sessions SessionStore
	Streaks  StreakStore
}

// TxRunner executes a function against transaction-bound stores. The
// transaction commits if the function returns nil and rolls back
// otherwise. Implemented by the postgres platform package; tests supply
// a runner that passes mock stores straight through.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, s TxStores) error) error
}
