package services

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/datatypes"

	"github.com/skillhorizon/marketplace-service/internal/events"
	"github.com/skillhorizon/marketplace-service/internal/models"
	"github.com/skillhorizon/marketplace-service/internal/payments"
	"github.com/skillhorizon/marketplace-service/internal/repositories"
	"github.com/skillhorizon/marketplace-service/internal/validator"
)

const defaultCurrency = "usd"

type paymentService struct {
	repo      repositories.Repository
	intents   payments.IntentClient
	publisher events.Publisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewPaymentService(repo repositories.Repository, intents payments.IntentClient, publisher events.Publisher, logger *slog.Logger, validator *validator.Validator) PaymentService {
	return &paymentService{
		repo:      repo,
		intents:   intents,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

// CreateIntent trusts the client-supplied price; there is no server-side
// catalog to verify against.
func (s *paymentService) CreateIntent(ctx context.Context, req *PaymentIntentRequest) (*PaymentIntentResponse, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validationError(err)
	}

	amount := payments.MinorUnits(req.Price)
	clientSecret, err := s.intents.CreateIntent(ctx, amount, defaultCurrency)
	if err != nil {
		return nil, fmt.Errorf("payment processor error: %w", err)
	}

	s.logger.Info("payment intent created", "amount_minor_units", amount)
	return &PaymentIntentResponse{ClientSecret: clientSecret}, nil
}

func (s *paymentService) Record(ctx context.Context, req *PaymentCreateRequest) (*InsertResult, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validationError(err)
	}

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	payment := &models.Payment{
		StudentEmail:  req.StudentEmail,
		ClassID:       req.ClassID,
		Amount:        req.Amount,
		Currency:      currency,
		TransactionID: req.TransactionID,
	}
	if len(req.Metadata) > 0 {
		payment.Metadata = datatypes.JSON(req.Metadata)
	}

	if err := s.repo.Payment().Create(ctx, nil, payment); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	s.logger.Info("payment recorded",
		"payment_id", payment.ID,
		"student", payment.StudentEmail,
		"class_id", payment.ClassID,
	)
	s.publish(ctx, events.NewEvent(events.TypePaymentRecorded, payment))

	id := payment.ID
	return &InsertResult{InsertedID: &id}, nil
}

func (s *paymentService) EnrolledClasses(ctx context.Context, studentEmail string) ([]models.EnrolledClass, error) {
	if studentEmail == "" {
		return nil, validationError(fmt.Errorf("email is required"))
	}

	paymentRows, err := s.repo.Payment().ListByStudent(ctx, nil, studentEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	// One entry per payment, in payment order. A payment whose class no
	// longer exists keeps its slot with zero-valued fields instead of
	// failing the whole lookup.
	enrolled := make([]models.EnrolledClass, 0, len(paymentRows))
	for _, p := range paymentRows {
		entry := models.EnrolledClass{ClassID: p.ClassID}

		class, err := s.repo.Class().GetByID(ctx, nil, p.ClassID)
		if err != nil {
			if !repositories.IsNotFoundError(err) {
				return nil, fmt.Errorf("failed to resolve class %d: %w", p.ClassID, err)
			}
			s.logger.Warn("payment references missing class",
				"payment_id", p.ID,
				"class_id", p.ClassID,
			)
		} else {
			entry.Title = class.Title
			entry.Image = class.Image
			entry.OwnerEmail = class.OwnerEmail
		}

		enrolled = append(enrolled, entry)
	}

	return enrolled, nil
}

func (s *paymentService) publish(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish event", "type", event.Type, "error", err)
	}
}
