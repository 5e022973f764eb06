package mocks

import (
	"context"
)

// TxManager runs the unit of work inline. Err, when set, is returned
// without calling fn, simulating a failed BEGIN.
type TxManager struct {
	Err   error
	Calls int
}

func (t *TxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	t.Calls++
	if t.Err != nil {
		return t.Err
	}
	return fn(ctx)
}
