package domain

import "context"

// Database defines lifecycle operations for the underlying metadata store.
// Each implementation owns its own migration files and strategy.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error
}

// Ensurer prepares backing storage (directories, schema) before use.
// Implementations must be idempotent.
type Ensurer interface {
	Ensure(ctx context.Context) error
}
