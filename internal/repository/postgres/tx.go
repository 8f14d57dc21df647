package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"lexvault/internal/port"
)

// Querier is the subset of sqlx used by the repositories. Both *sqlx.DB and
// *sqlx.Tx satisfy it, so a repository call transparently joins a
// transaction carried by the context.
type Querier interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

type txCtxKey struct{}

func withTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txCtxKey{}, tx)
}

// querierFrom returns the ambient transaction if the context carries one,
// otherwise the pool.
func querierFrom(ctx context.Context, db *sqlx.DB) Querier {
	if tx, ok := ctx.Value(txCtxKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return db
}

// TxManager runs functions inside a database transaction using the context
// pattern. Nested RunInTx calls are not supported; a RunInTx inside a
// RunInTx callback starts a second independent transaction.
type TxManager struct {
	db *sqlx.DB
}

// NewTxManager creates a new TxManager.
func NewTxManager(db *sqlx.DB) port.TxManager {
	return &TxManager{db: db}
}

// RunInTx executes fn within a transaction. On success it commits; on error
// it rolls back and returns the error; on panic it rolls back and re-panics.
// If ctx is cancelled before commit, the driver aborts the transaction and
// nothing is persisted.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
