package services

import (
	"context"
	"testing"

	"github.com/skillhorizon/marketplace-service/internal/events"
	"github.com/skillhorizon/marketplace-service/internal/models"
	"github.com/skillhorizon/marketplace-service/internal/validator"
)

func newClassServiceForTest(t *testing.T, repo *fakeRepository) (ClassService, *events.MockEventPublisher) {
	t.Helper()
	logger := testLogger(t)
	publisher := events.NewMockEventPublisher(logger)
	return NewClassService(repo, publisher, logger, validator.New()), publisher
}

func TestClassService_Create(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc, publisher := newClassServiceForTest(t, repo)

	result, err := svc.Create(ctx, &ClassCreateRequest{
		OwnerEmail: "teacher@example.com",
		OwnerName:  "Teacher",
		Title:      "Intro to Gardening",
		Price:      20.00,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if result.InsertedID == nil {
		t.Fatal("expected an inserted ID")
	}

	if repo.classes[0].Status != models.StatusPending {
		t.Errorf("new class must start Pending, got %s", repo.classes[0].Status)
	}

	published := publisher.GetPublishedEvents()
	if len(published) != 1 || published[0].Type != events.TypeClassSubmitted {
		t.Errorf("expected one %s event, got %v", events.TypeClassSubmitted, published)
	}

	t.Run("zero price fails validation", func(t *testing.T) {
		_, err := svc.Create(ctx, &ClassCreateRequest{
			OwnerEmail: "teacher@example.com",
			Title:      "Free Class",
			Price:      0,
		})
		if !IsValidationError(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})
}

func TestClassService_ListAccepted(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc, _ := newClassServiceForTest(t, repo)

	repo.classes = []*models.Class{
		{ID: 1, Title: "Pending One", Status: models.StatusPending},
		{ID: 2, Title: "Accepted One", Status: models.StatusAccepted},
		{ID: 3, Title: "Rejected One", Status: models.StatusRejected},
		{ID: 4, Title: "Accepted Two", Status: models.StatusAccepted},
	}

	accepted, err := svc.ListAccepted(ctx)
	if err != nil {
		t.Fatalf("ListAccepted failed: %v", err)
	}
	if len(accepted) != 2 {
		t.Fatalf("expected 2 accepted classes, got %d", len(accepted))
	}
	for _, c := range accepted {
		if c.Status != models.StatusAccepted {
			t.Errorf("non-accepted class leaked into the catalog: %s", c.Title)
		}
	}
}

func TestClassService_Update(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc, _ := newClassServiceForTest(t, repo)

	repo.classes = []*models.Class{
		{ID: 1, OwnerEmail: "owner@example.com", Title: "Original", Price: 10, Status: models.StatusAccepted},
	}
	repo.nextClassID = 1

	newTitle := "Updated"
	newPrice := 25.50

	t.Run("owner can update", func(t *testing.T) {
		err := svc.Update(ctx, 1, &ClassUpdateRequest{Title: &newTitle, Price: &newPrice}, "owner@example.com")
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if repo.classes[0].Title != "Updated" || repo.classes[0].Price != 25.50 {
			t.Errorf("update not applied: %+v", repo.classes[0])
		}
		// Status is untouched by owner edits
		if repo.classes[0].Status != models.StatusAccepted {
			t.Errorf("owner update must not change status, got %s", repo.classes[0].Status)
		}
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		err := svc.Update(ctx, 1, &ClassUpdateRequest{Title: &newTitle}, "intruder@example.com")
		if !IsForbiddenError(err) {
			t.Errorf("expected forbidden, got %v", err)
		}
	})

	t.Run("missing class is not found", func(t *testing.T) {
		err := svc.Update(ctx, 42, &ClassUpdateRequest{Title: &newTitle}, "owner@example.com")
		if !IsNotFoundError(err) {
			t.Errorf("expected not-found, got %v", err)
		}
	})
}

func TestClassService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc, _ := newClassServiceForTest(t, repo)

	repo.classes = []*models.Class{
		{ID: 1, OwnerEmail: "owner@example.com", Title: "Doomed"},
	}
	repo.assignments = []*models.Assignment{
		{ID: 1, TeacherEmail: "owner@example.com", ClassID: 1, Title: "Homework"},
	}

	t.Run("non-owner is forbidden", func(t *testing.T) {
		if err := svc.Delete(ctx, 1, "intruder@example.com"); !IsForbiddenError(err) {
			t.Errorf("expected forbidden, got %v", err)
		}
	})

	t.Run("owner delete leaves assignments behind", func(t *testing.T) {
		if err := svc.Delete(ctx, 1, "owner@example.com"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if len(repo.classes) != 0 {
			t.Error("class not deleted")
		}
		if len(repo.assignments) != 1 {
			t.Error("assignments must survive class deletion")
		}
	})
}

func TestClassService_ApproveReject(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc, publisher := newClassServiceForTest(t, repo)

	repo.classes = []*models.Class{
		{ID: 1, Title: "One", Status: models.StatusPending},
		{ID: 2, Title: "Two", Status: models.StatusPending},
	}

	result, err := svc.Approve(ctx, 1)
	if err != nil {
		t.Fatalf("Approve failed: %v", err)
	}
	if result.MatchedCount != 1 {
		t.Errorf("expected matched count 1, got %d", result.MatchedCount)
	}
	if repo.classes[0].Status != models.StatusAccepted {
		t.Errorf("expected Accepted, got %s", repo.classes[0].Status)
	}

	if _, err := svc.Reject(ctx, 2); err != nil {
		t.Fatalf("Reject failed: %v", err)
	}
	if repo.classes[1].Status != models.StatusRejected {
		t.Errorf("expected Rejected, got %s", repo.classes[1].Status)
	}

	published := publisher.GetPublishedEvents()
	if len(published) != 2 {
		t.Fatalf("expected 2 events, got %d", len(published))
	}
	if published[0].Type != events.TypeClassApproved || published[1].Type != events.TypeClassRejected {
		t.Errorf("unexpected event types: %s, %s", published[0].Type, published[1].Type)
	}

	t.Run("missing class is not found", func(t *testing.T) {
		if _, err := svc.Approve(ctx, 99); !IsNotFoundError(err) {
			t.Errorf("expected not-found, got %v", err)
		}
	})
}
