package services

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/datatypes"

	"github.com/skillhorizon/marketplace-service/internal/events"
	"github.com/skillhorizon/marketplace-service/internal/models"
	"github.com/skillhorizon/marketplace-service/internal/repositories"
	"github.com/skillhorizon/marketplace-service/internal/validator"
)

type teacherRequestService struct {
	repo      repositories.Repository
	publisher events.Publisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewTeacherRequestService(repo repositories.Repository, publisher events.Publisher, logger *slog.Logger, validator *validator.Validator) TeacherRequestService {
	return &teacherRequestService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

func (s *teacherRequestService) Create(ctx context.Context, req *TeacherRequestCreate) (*InsertResult, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validationError(err)
	}

	request := &models.TeacherRequest{
		Email:      req.Email,
		Name:       req.Name,
		Image:      req.Image,
		Experience: req.Experience,
		Title:      req.Title,
		Category:   req.Category,
		Status:     models.StatusPending,
	}
	if len(req.Profile) > 0 {
		request.Profile = datatypes.JSON(req.Profile)
	}

	if err := s.repo.TeacherRequest().Create(ctx, nil, request); err != nil {
		return nil, fmt.Errorf("failed to create teacher request: %w", err)
	}

	s.logger.Info("teacher request submitted", "request_id", request.ID, "email", request.Email)
	s.publish(ctx, events.NewEvent(events.TypeTeacherRequestSubmitted, request))

	id := request.ID
	return &InsertResult{InsertedID: &id}, nil
}

func (s *teacherRequestService) List(ctx context.Context) ([]*models.TeacherRequest, error) {
	requests, err := s.repo.TeacherRequest().List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list teacher requests: %w", err)
	}
	return requests, nil
}

func (s *teacherRequestService) Resubmit(ctx context.Context, email string) (*UpdateResult, error) {
	if email == "" {
		return nil, validationError(fmt.Errorf("email is required"))
	}

	matched, err := s.repo.TeacherRequest().UpdateStatusByEmail(ctx, nil, email, models.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to resubmit teacher request: %w", err)
	}
	if matched == 0 {
		return nil, notFoundError("teacher request")
	}

	s.logger.Info("teacher request resubmitted", "email", email)
	return &UpdateResult{MatchedCount: matched, ModifiedCount: matched}, nil
}

func (s *teacherRequestService) publish(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish event", "type", event.Type, "error", err)
	}
}
