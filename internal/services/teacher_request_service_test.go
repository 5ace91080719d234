package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/skillhorizon/marketplace-service/internal/events"
	"github.com/skillhorizon/marketplace-service/internal/models"
	"github.com/skillhorizon/marketplace-service/internal/validator"
)

func newTeacherRequestServiceForTest(t *testing.T, repo *fakeRepository) (TeacherRequestService, *events.MockEventPublisher) {
	t.Helper()
	logger := testLogger(t)
	publisher := events.NewMockEventPublisher(logger)
	return NewTeacherRequestService(repo, publisher, logger, validator.New()), publisher
}

func TestTeacherRequestService_Create(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc, publisher := newTeacherRequestServiceForTest(t, repo)

	result, err := svc.Create(ctx, &TeacherRequestCreate{
		Email:      "karim@example.com",
		Name:       "Karim",
		Experience: "mid-level",
		Title:      "Web Development Basics",
		Category:   "programming",
		Profile:    json.RawMessage(`{"linkedin":"karim"}`),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if result.InsertedID == nil {
		t.Fatal("expected an inserted ID")
	}

	if repo.requests[0].Status != models.StatusPending {
		t.Errorf("new request must start Pending, got %s", repo.requests[0].Status)
	}
	if len(repo.requests[0].Profile) == 0 {
		t.Error("profile payload was dropped")
	}

	published := publisher.GetPublishedEvents()
	if len(published) != 1 || published[0].Type != events.TypeTeacherRequestSubmitted {
		t.Errorf("expected one %s event, got %v", events.TypeTeacherRequestSubmitted, published)
	}

	t.Run("missing title fails validation", func(t *testing.T) {
		_, err := svc.Create(ctx, &TeacherRequestCreate{Email: "karim@example.com", Name: "Karim"})
		if !IsValidationError(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})
}

func TestTeacherRequestService_Resubmit(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc, _ := newTeacherRequestServiceForTest(t, repo)

	repo.requests = append(repo.requests, &models.TeacherRequest{
		ID: 1, Email: "karim@example.com", Status: models.StatusRejected,
	})

	result, err := svc.Resubmit(ctx, "karim@example.com")
	if err != nil {
		t.Fatalf("Resubmit failed: %v", err)
	}
	if result.MatchedCount != 1 {
		t.Errorf("expected matched count 1, got %d", result.MatchedCount)
	}
	if repo.requests[0].Status != models.StatusPending {
		t.Errorf("expected Pending after resubmit, got %s", repo.requests[0].Status)
	}

	t.Run("unknown email is not found", func(t *testing.T) {
		if _, err := svc.Resubmit(ctx, "stranger@example.com"); !IsNotFoundError(err) {
			t.Errorf("expected not-found, got %v", err)
		}
	})

	t.Run("empty email fails validation", func(t *testing.T) {
		if _, err := svc.Resubmit(ctx, ""); !IsValidationError(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})
}
