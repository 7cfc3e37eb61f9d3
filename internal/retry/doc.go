// Package retry re-runs operations that fail with transient PostgreSQL or
// network errors, waiting an exponentially growing delay between attempts.
//
//	executor := retry.NewExecutor(retry.NewPostgreSQLErrorClassifier(), retry.NewExponentialBackoff(3))
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    return pool.Ping(ctx)
//	})
//
// Executors are safe for concurrent use.
package retry
