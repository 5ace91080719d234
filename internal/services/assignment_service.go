package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/skillhorizon/marketplace-service/internal/models"
	"github.com/skillhorizon/marketplace-service/internal/repositories"
	"github.com/skillhorizon/marketplace-service/internal/validator"
)

type assignmentService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewAssignmentService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) AssignmentService {
	return &assignmentService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *assignmentService) Create(ctx context.Context, req *AssignmentCreateRequest, requesterEmail string) (*InsertResult, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validationError(err)
	}

	if req.TeacherEmail != requesterEmail {
		return nil, forbiddenError("cannot create assignments for another teacher")
	}

	assignment := &models.Assignment{
		TeacherEmail: req.TeacherEmail,
		ClassID:      req.ClassID,
		Title:        req.Title,
		Description:  req.Description,
		Deadline:     req.Deadline,
	}

	if err := s.repo.Assignment().Create(ctx, nil, assignment); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	s.logger.Info("assignment created",
		"assignment_id", assignment.ID,
		"class_id", assignment.ClassID,
		"teacher", assignment.TeacherEmail,
	)

	id := assignment.ID
	return &InsertResult{InsertedID: &id}, nil
}

func (s *assignmentService) ListByTeacherAndClass(ctx context.Context, teacherEmail string, classID uint) ([]*models.Assignment, error) {
	if teacherEmail == "" || classID == 0 {
		return nil, validationError(fmt.Errorf("teacher email and class id are required"))
	}

	assignments, err := s.repo.Assignment().ListByTeacherAndClass(ctx, nil, teacherEmail, classID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}
