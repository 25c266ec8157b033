package mocks

import (
	"context"

	"github.com/moloke/lightverse/internal/store"
)

// MockTxRunner implements store.TxRunner for testing. It invokes the
// callback with the configured stores directly, with no real transaction.
type MockTxRunner struct {
	// RunInTxFn allows test cases to mock the RunInTx behavior
	RunInTxFn func(ctx context.Context, fn func(ctx context.Context, s store.TxStores) error) error

	// Stores are handed to the callback when RunInTxFn isn't defined
	Stores store.TxStores

	// Err, when set, is returned without invoking the callback
	Err error
}

var _ store.TxRunner = (*MockTxRunner)(nil)

// RunInTx implements the store.TxRunner interface
func (m *MockTxRunner) RunInTx(
	ctx context.Context,
	fn func(ctx context.Context, s store.TxStores) error,
) error {
	if m.RunInTxFn != nil {
		return m.RunInTxFn(ctx, fn)
	}
	if m.Err != nil {
		return m.Err
	}
	return fn(ctx, m.Stores)
}
