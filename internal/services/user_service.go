package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/skillhorizon/marketplace-service/internal/auth"
	"github.com/skillhorizon/marketplace-service/internal/events"
	"github.com/skillhorizon/marketplace-service/internal/models"
	"github.com/skillhorizon/marketplace-service/internal/repositories"
	"github.com/skillhorizon/marketplace-service/internal/validator"
)

type userService struct {
	repo      repositories.Repository
	tokens    *auth.TokenManager
	publisher events.Publisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewUserService(repo repositories.Repository, tokens *auth.TokenManager, publisher events.Publisher, logger *slog.Logger, validator *validator.Validator) UserService {
	return &userService{
		repo:      repo,
		tokens:    tokens,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

func (s *userService) IssueToken(ctx context.Context, req *TokenRequest) (*TokenResponse, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validationError(err)
	}

	// The role claim is a hint only; a user signing in before their first
	// /users POST has no stored role yet and that is fine.
	role := ""
	if user, err := s.repo.User().GetByEmail(ctx, nil, req.Email); err == nil {
		role = string(user.Role)
	}

	token, err := s.tokens.Issue(req.Email, role)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &TokenResponse{Token: token}, nil
}

func (s *userService) Create(ctx context.Context, req *UserCreateRequest) (*InsertResult, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validationError(err)
	}

	// Check-then-insert; the window between the two calls is a known race.
	exists, err := s.repo.User().ExistsByEmail(ctx, nil, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check user existence: %w", err)
	}
	if exists {
		return &InsertResult{InsertedID: nil, Message: "user already exists"}, nil
	}

	role := models.RoleStudent
	if req.Role != "" {
		role = models.UserRole(req.Role)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Role:     role,
		PhotoURL: req.PhotoURL,
	}

	if err := s.repo.User().Create(ctx, nil, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user created", "user_id", user.ID, "email", user.Email)
	s.publish(ctx, events.NewEvent(events.TypeUserCreated, user))

	id := user.ID
	return &InsertResult{InsertedID: &id}, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.User().GetByEmail(ctx, nil, email)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, notFoundError("user")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *userService) GetRole(ctx context.Context, email string) (models.UserRole, error) {
	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

func (s *userService) List(ctx context.Context) ([]*models.User, error) {
	users, err := s.repo.User().List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) MakeAdmin(ctx context.Context, id uint) (*UpdateResult, error) {
	matched, err := s.repo.User().UpdateRoleByID(ctx, nil, id, models.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to update user role: %w", err)
	}
	if matched == 0 {
		return nil, notFoundError("user")
	}

	s.logger.Info("user promoted to admin", "user_id", id)
	return &UpdateResult{MatchedCount: matched, ModifiedCount: matched}, nil
}

func (s *userService) ApproveTeacher(ctx context.Context, email string) (*DualUpdateResult, error) {
	return s.transitionTeacher(ctx, email, models.StatusAccepted, models.RoleTeacher, events.TypeTeacherRequestApproved)
}

func (s *userService) RejectTeacher(ctx context.Context, email string) (*DualUpdateResult, error) {
	return s.transitionTeacher(ctx, email, models.StatusRejected, models.RoleStudent, events.TypeTeacherRequestRejected)
}

// transitionTeacher issues the two updates sequentially with no
// transaction. If the user-side update fails or matches nothing, the
// request-side write has already landed and is not rolled back.
func (s *userService) transitionTeacher(ctx context.Context, email string, status models.RequestStatus, role models.UserRole, eventType string) (*DualUpdateResult, error) {
	if email == "" {
		return nil, validationError(fmt.Errorf("email is required"))
	}

	requestMatched, err := s.repo.TeacherRequest().UpdateStatusByEmail(ctx, nil, email, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update teacher request status: %w", err)
	}

	userMatched, err := s.repo.User().UpdateRoleByEmail(ctx, nil, email, role)
	if err != nil {
		return nil, fmt.Errorf("failed to update user role: %w", err)
	}
	if userMatched == 0 {
		return nil, notFoundError("user")
	}

	s.logger.Info("teacher request transitioned",
		"email", email,
		"status", status,
		"role", role,
	)
	s.publish(ctx, events.NewEvent(eventType, map[string]interface{}{
		"email":  email,
		"status": status,
		"role":   role,
	}))

	return &DualUpdateResult{RequestMatched: requestMatched, UserMatched: userMatched}, nil
}

func (s *userService) publish(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish event", "type", event.Type, "error", err)
	}
}
