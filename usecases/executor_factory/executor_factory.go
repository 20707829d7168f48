package executor_factory

import (
	"context"

	"github.com/uplox/uploads-backend/repositories"
)

type ExecutorFactory interface {
	NewExecutor() repositories.Executor
}

type TransactionFactory interface {
	Transaction(ctx context.Context, fn func(tx repositories.Transaction) error) error
}

// helper with generics, for transactions that compute a value
func TransactionReturnValue[ReturnType any](
	ctx context.Context,
	factory TransactionFactory,
	fn func(tx repositories.Transaction) (ReturnType, error),
) (ReturnType, error) {
	var value ReturnType
	transactionErr := factory.Transaction(ctx, func(tx repositories.Transaction) error {
		var fnErr error
		value, fnErr = fn(tx)
		return fnErr
	})
	return value, transactionErr
}
