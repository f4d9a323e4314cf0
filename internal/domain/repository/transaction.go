package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// The use case layer depends on it instead of a concrete DB driver, and uses
// it to keep the session snapshot and the credential list consistent: a
// profile update rewrites both inside one transaction, so a crash can never
// leave one written and the other not.
type TransactionManager interface {
	// Execute runs a function within a database transaction. If the function
	// returns an error the transaction is rolled back, otherwise committed.
	// All repository operations obtained from the factory share the same
	// transaction.
	Execute(ctx context.Context, fn func(txRepos RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction.
type RepositoryFactory interface {
	// FarmerRepo returns a FarmerRepository bound to the current transaction.
	FarmerRepo() FarmerRepository

	// SessionRepo returns a SessionRepository bound to the current transaction.
	SessionRepo() SessionRepository
}
