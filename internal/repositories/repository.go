package repositories

import "context"

// Repository aggregates the per-entity repositories behind one handle.
type Repository interface {
	User() UserRepository
	TeacherRequest() TeacherRequestRepository
	Class() ClassRepository
	Assignment() AssignmentRepository
	Payment() PaymentRepository

	// WithTransaction runs fn with every sub-repository bound to one
	// transaction. The admin dual-update flows run outside it and keep
	// their partial-write behavior.
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	// Health check
	Ping(ctx context.Context) error

	// Close connections
	Close() error
}

// RepositoryManager owns repository lifecycle: connect, hand out, shut down.
type RepositoryManager interface {
	Initialize() error
	GetRepository() Repository
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
