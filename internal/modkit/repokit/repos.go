// Package repokit holds the small seams repositories are built on
package repokit

import (
	"context"

	"todos/internal/platform/store"
)

type (
	// Queryer is what a bound repository runs statements on
	Queryer = store.RowQuerier
	// TxRunner is a Queryer that can also open transactions
	TxRunner = store.TxRunner

	// Row is a single row result
	Row = store.Row
	// Rows is a result set
	Rows = store.Rows
	// CommandTag reports what a write did
	CommandTag = store.CommandTag
)

// WithTx runs fn in a transaction on tx; fn's error rolls it back
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	return tx.Tx(ctx, fn)
}
