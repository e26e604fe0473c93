package unitofwork

import "context"

// RepositoryFactory hands out fresh units of work so each request can
// scope its repositories to a single transaction.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
