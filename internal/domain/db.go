package domain

import "context"

// Database defines lifecycle operations for the underlying database.
// Migrate creates the employee, department and join tables when absent
// and is safe to run on every start.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error
}
