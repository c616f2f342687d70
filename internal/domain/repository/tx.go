package repository

import "context"

// TxManager runs a function inside a single database transaction. The
// context passed to fn carries the transaction; repositories resolve
// their connection from it, so every repository call inside fn joins
// the same transaction and rolls back together on error.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
