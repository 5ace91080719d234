package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/skillhorizon/marketplace-service/internal/events"
	"github.com/skillhorizon/marketplace-service/internal/models"
	"github.com/skillhorizon/marketplace-service/internal/repositories"
	"github.com/skillhorizon/marketplace-service/internal/validator"
)

type classService struct {
	repo      repositories.Repository
	publisher events.Publisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewClassService(repo repositories.Repository, publisher events.Publisher, logger *slog.Logger, validator *validator.Validator) ClassService {
	return &classService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

func (s *classService) Create(ctx context.Context, req *ClassCreateRequest) (*InsertResult, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validationError(err)
	}

	class := &models.Class{
		OwnerEmail:  req.OwnerEmail,
		OwnerName:   req.OwnerName,
		Title:       req.Title,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
		Status:      models.StatusPending,
	}

	if err := s.repo.Class().Create(ctx, nil, class); err != nil {
		return nil, fmt.Errorf("failed to create class: %w", err)
	}

	s.logger.Info("class submitted", "class_id", class.ID, "owner", class.OwnerEmail)
	s.publish(ctx, events.NewEvent(events.TypeClassSubmitted, class))

	id := class.ID
	return &InsertResult{InsertedID: &id}, nil
}

func (s *classService) GetByOwner(ctx context.Context, ownerEmail string) ([]*models.Class, error) {
	classes, err := s.repo.Class().GetByOwner(ctx, nil, ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes by owner: %w", err)
	}
	return classes, nil
}

func (s *classService) List(ctx context.Context) ([]*models.Class, error) {
	classes, err := s.repo.Class().List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}
	return classes, nil
}

func (s *classService) ListAccepted(ctx context.Context) ([]*models.Class, error) {
	classes, err := s.repo.Class().ListByStatus(ctx, nil, models.StatusAccepted)
	if err != nil {
		return nil, fmt.Errorf("failed to list accepted classes: %w", err)
	}
	return classes, nil
}

func (s *classService) Update(ctx context.Context, id uint, req *ClassUpdateRequest, requesterEmail string) error {
	if err := s.validator.ValidateStruct(req); err != nil {
		return validationError(err)
	}

	class, err := s.repo.Class().GetByID(ctx, nil, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return notFoundError("class")
		}
		return fmt.Errorf("failed to get class: %w", err)
	}

	if class.OwnerEmail != requesterEmail {
		return forbiddenError("class belongs to a different teacher")
	}

	if req.Title != nil {
		class.Title = *req.Title
	}
	if req.Price != nil {
		class.Price = *req.Price
	}
	if req.Image != nil {
		class.Image = *req.Image
	}
	if req.Description != nil {
		class.Description = *req.Description
	}

	if err := s.repo.Class().Update(ctx, nil, class); err != nil {
		return fmt.Errorf("failed to update class: %w", err)
	}

	s.logger.Info("class updated", "class_id", id, "owner", requesterEmail)
	return nil
}

func (s *classService) Delete(ctx context.Context, id uint, requesterEmail string) error {
	class, err := s.repo.Class().GetByID(ctx, nil, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return notFoundError("class")
		}
		return fmt.Errorf("failed to get class: %w", err)
	}

	if class.OwnerEmail != requesterEmail {
		return forbiddenError("class belongs to a different teacher")
	}

	// Assignments referencing this class are left behind; nothing cascades.
	if _, err := s.repo.Class().Delete(ctx, nil, id); err != nil {
		return fmt.Errorf("failed to delete class: %w", err)
	}

	s.logger.Info("class deleted", "class_id", id, "owner", requesterEmail)
	return nil
}

func (s *classService) Approve(ctx context.Context, id uint) (*UpdateResult, error) {
	return s.transition(ctx, id, models.StatusAccepted, events.TypeClassApproved)
}

func (s *classService) Reject(ctx context.Context, id uint) (*UpdateResult, error) {
	return s.transition(ctx, id, models.StatusRejected, events.TypeClassRejected)
}

func (s *classService) transition(ctx context.Context, id uint, status models.RequestStatus, eventType string) (*UpdateResult, error) {
	matched, err := s.repo.Class().UpdateStatus(ctx, nil, id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update class status: %w", err)
	}
	if matched == 0 {
		return nil, notFoundError("class")
	}

	s.logger.Info("class status transitioned", "class_id", id, "status", status)
	s.publish(ctx, events.NewEvent(eventType, map[string]interface{}{
		"class_id": id,
		"status":   status,
	}))

	return &UpdateResult{MatchedCount: matched, ModifiedCount: matched}, nil
}

func (s *classService) publish(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish event", "type", event.Type, "error", err)
	}
}
