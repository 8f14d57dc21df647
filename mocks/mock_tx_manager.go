package mocks

import (
	"context"
)

// StubTxManager is a pass-through port.TxManager for unit tests: it runs the
// callback with the same context (there is no real transaction) and returns
// either the callback's error or a preset BeginErr.
type StubTxManager struct {
	// BeginErr, when set, is returned without invoking the callback,
	// simulating a failure to open the transaction.
	BeginErr error
	// CommitErr, when set, is returned after a successful callback,
	// simulating a commit failure.
	CommitErr error
	// Calls counts how many transactions were started.
	Calls int
}

func (s *StubTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.Calls++
	if s.BeginErr != nil {
		return s.BeginErr
	}
	if err := fn(ctx); err != nil {
		return err
	}
	return s.CommitErr
}
