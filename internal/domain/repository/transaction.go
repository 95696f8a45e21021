package repository

import "context"

// RepositoryFactory hands out repositories bound to one transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	CategoryRepo() CategoryRepository
	ExpenseRepo() ExpenseRepository
}

// TransactionManager runs a unit of work inside a single database
// transaction. The callback's repositories all share that transaction; any
// returned error rolls everything back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
