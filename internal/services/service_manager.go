package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/skillhorizon/marketplace-service/internal/auth"
	"github.com/skillhorizon/marketplace-service/internal/events"
	"github.com/skillhorizon/marketplace-service/internal/payments"
	"github.com/skillhorizon/marketplace-service/internal/repositories"
	"github.com/skillhorizon/marketplace-service/internal/validator"
)

// serviceManager implements ServiceManager interface
type serviceManager struct {
	// Dependencies
	repo      repositories.Repository
	tokens    *auth.TokenManager
	intents   payments.IntentClient
	publisher events.Publisher
	logger    *slog.Logger
	validator *validator.Validator

	// Service instances
	userService           UserService
	teacherRequestService TeacherRequestService
	classService          ClassService
	assignmentService     AssignmentService
	paymentService        PaymentService
	reportService         ReportService

	// Lifecycle management
	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

// NewServiceManager creates a new service manager with all dependencies
func NewServiceManager(
	repo repositories.Repository,
	tokens *auth.TokenManager,
	intents payments.IntentClient,
	publisher events.Publisher,
	logger *slog.Logger,
	validator *validator.Validator,
) ServiceManager {
	return &serviceManager{
		repo:      repo,
		tokens:    tokens,
		intents:   intents,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

// Initialize sets up all services and their dependencies
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sm.logger.Info("Initializing service manager")

	sm.userService = NewUserService(sm.repo, sm.tokens, sm.publisher, sm.logger, sm.validator)
	sm.logger.Info("User service initialized")

	sm.teacherRequestService = NewTeacherRequestService(sm.repo, sm.publisher, sm.logger, sm.validator)
	sm.logger.Info("TeacherRequest service initialized")

	sm.classService = NewClassService(sm.repo, sm.publisher, sm.logger, sm.validator)
	sm.logger.Info("Class service initialized")

	sm.assignmentService = NewAssignmentService(sm.repo, sm.logger, sm.validator)
	sm.logger.Info("Assignment service initialized")

	sm.paymentService = NewPaymentService(sm.repo, sm.intents, sm.publisher, sm.logger, sm.validator)
	sm.logger.Info("Payment service initialized")

	sm.reportService = NewReportService(sm.repo, sm.logger)
	sm.logger.Info("Report service initialized")

	sm.initialized = true
	sm.logger.Info("Service manager initialized successfully")

	return nil
}

// Service getters
func (sm *serviceManager) User() UserService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}

	return sm.userService
}

func (sm *serviceManager) TeacherRequest() TeacherRequestService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}

	return sm.teacherRequestService
}

func (sm *serviceManager) Class() ClassService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}

	return sm.classService
}

func (sm *serviceManager) Assignment() AssignmentService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}

	return sm.assignmentService
}

func (sm *serviceManager) Payment() PaymentService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}

	return sm.paymentService
}

func (sm *serviceManager) Report() ReportService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}

	return sm.reportService
}

// Health and lifecycle
func (sm *serviceManager) HealthCheck(ctx context.Context) error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		return fmt.Errorf("service manager not initialized")
	}

	if sm.shutdown {
		return fmt.Errorf("service manager is shut down")
	}

	if mgr, ok := sm.repo.(repositories.RepositoryManager); ok {
		if err := mgr.HealthCheck(ctx); err != nil {
			return fmt.Errorf("repository health check failed: %w", err)
		}
	} else if err := sm.repo.Ping(ctx); err != nil {
		return fmt.Errorf("repository ping failed: %w", err)
	}

	return nil
}

func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}

	sm.logger.Info("Shutting down service manager")

	if sm.publisher != nil {
		if err := sm.publisher.Close(); err != nil {
			sm.logger.Error("Failed to close event publisher", "error", err)
		}
	}

	sm.shutdown = true
	sm.initialized = false
	sm.logger.Info("Service manager shut down")

	return nil
}
