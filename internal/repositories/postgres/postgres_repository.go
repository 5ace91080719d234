package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/skillhorizon/marketplace-service/internal/repositories"
)

// PostgreSQLRepository implements the aggregate Repository interface.
type PostgreSQLRepository struct {
	db          *gorm.DB
	redisClient *redis.Client

	user           repositories.UserRepository
	teacherRequest repositories.TeacherRequestRepository
	class          repositories.ClassRepository
	assignment     repositories.AssignmentRepository
	payment        repositories.PaymentRepository
}

// RepositoryConfig holds the connections the repositories run on.
// RedisClient may be nil; only the class listing cache uses it.
type RepositoryConfig struct {
	DB          *gorm.DB
	RedisClient *redis.Client
}

func NewPostgreSQLRepository(config RepositoryConfig) repositories.Repository {
	repo := &PostgreSQLRepository{
		db:          config.DB,
		redisClient: config.RedisClient,
	}

	repo.user = NewUserPostgreSQL(config.DB)
	repo.teacherRequest = NewTeacherRequestPostgreSQL(config.DB)
	repo.class = NewClassPostgreSQL(config.DB, config.RedisClient)
	repo.assignment = NewAssignmentPostgreSQL(config.DB)
	repo.payment = NewPaymentPostgreSQL(config.DB)

	return repo
}

func (r *PostgreSQLRepository) User() repositories.UserRepository { return r.user }

func (r *PostgreSQLRepository) TeacherRequest() repositories.TeacherRequestRepository {
	return r.teacherRequest
}

func (r *PostgreSQLRepository) Class() repositories.ClassRepository { return r.class }

func (r *PostgreSQLRepository) Assignment() repositories.AssignmentRepository { return r.assignment }

func (r *PostgreSQLRepository) Payment() repositories.PaymentRepository { return r.payment }

// WithTransaction executes fn against a repository bound to one transaction.
func (r *PostgreSQLRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &PostgreSQLRepository{
			db:             tx,
			redisClient:    r.redisClient,
			user:           NewUserPostgreSQL(tx),
			teacherRequest: NewTeacherRequestPostgreSQL(tx),
			class:          NewClassPostgreSQL(tx, r.redisClient),
			assignment:     NewAssignmentPostgreSQL(tx),
			payment:        NewPaymentPostgreSQL(tx),
		}
		return fn(txRepo)
	})
}

func (r *PostgreSQLRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	if r.redisClient != nil {
		if err := r.redisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("cache ping failed: %w", err)
		}
	}

	return nil
}

func (r *PostgreSQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	if r.redisClient != nil {
		if err := r.redisClient.Close(); err != nil {
			return fmt.Errorf("failed to close Redis: %w", err)
		}
	}

	return nil
}

// RepositoryManager implements the RepositoryManager interface.
type RepositoryManager struct {
	config RepositoryConfig
	repo   repositories.Repository
}

func NewRepositoryManager(config RepositoryConfig) repositories.RepositoryManager {
	return &RepositoryManager{config: config}
}

func (rm *RepositoryManager) Initialize() error {
	if rm.config.DB == nil {
		return fmt.Errorf("database connection is required")
	}

	sqlDB, err := rm.config.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}

	if rm.config.RedisClient != nil {
		if err := rm.config.RedisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection failed: %w", err)
		}
	}

	rm.repo = NewPostgreSQLRepository(rm.config)

	return nil
}

func (rm *RepositoryManager) GetRepository() repositories.Repository {
	return rm.repo
}

func (rm *RepositoryManager) HealthCheck(ctx context.Context) error {
	if rm.repo == nil {
		return fmt.Errorf("repository not initialized")
	}
	return rm.repo.Ping(ctx)
}

func (rm *RepositoryManager) Shutdown(ctx context.Context) error {
	if rm.repo == nil {
		return nil
	}
	return rm.repo.Close()
}
