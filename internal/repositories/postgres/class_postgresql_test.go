package postgres

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/utils/tests"

	"github.com/skillhorizon/marketplace-service/internal/cache"
	"github.com/skillhorizon/marketplace-service/internal/models"
)

// listingKey is the full Redis key of the public Accepted-classes listing.
const listingKey = "classes:" + cache.AcceptedClassesKey

// newClassCacheRepo wires the class repository to a miniredis-backed cache
// and a dry-run gorm session: every database call builds its SQL without
// executing anything, so the tests observe the cache wiring alone.
func newClassCacheRepo(t *testing.T) (*classRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{
		DryRun: true,
		Logger: logger.Discard,
	})
	if err != nil {
		t.Fatalf("failed to open dry-run session: %v", err)
	}

	return NewClassPostgreSQL(db, client).(*classRepository), mr
}

func seedListing(t *testing.T, repo *classRepository, classes []*models.Class) {
	t.Helper()
	if err := repo.cache.Set(context.Background(), cache.AcceptedClassesKey, classes, cache.ListingTTL); err != nil {
		t.Fatalf("failed to seed listing cache: %v", err)
	}
}

func TestClassRepository_ListByStatusServesCachedListing(t *testing.T) {
	repo, _ := newClassCacheRepo(t)
	ctx := context.Background()

	seedListing(t, repo, []*models.Class{
		{ID: 1, Title: "Pottery", OwnerEmail: "a@example.com", Status: models.StatusAccepted},
		{ID: 2, Title: "Gardening", OwnerEmail: "b@example.com", Status: models.StatusAccepted},
	})

	// The dry-run database returns nothing, so any rows must come from
	// the cache.
	classes, err := repo.ListByStatus(ctx, nil, models.StatusAccepted)
	if err != nil {
		t.Fatalf("ListByStatus failed: %v", err)
	}
	if len(classes) != 2 || classes[0].Title != "Pottery" || classes[1].Title != "Gardening" {
		t.Errorf("unexpected listing: %+v", classes)
	}
}

func TestClassRepository_ListByStatusPopulatesCache(t *testing.T) {
	repo, mr := newClassCacheRepo(t)
	ctx := context.Background()

	if _, err := repo.ListByStatus(ctx, nil, models.StatusPending); err != nil {
		t.Fatalf("ListByStatus failed: %v", err)
	}
	if mr.Exists(listingKey) {
		t.Error("non-Accepted listing must not touch the cache")
	}

	if _, err := repo.ListByStatus(ctx, nil, models.StatusAccepted); err != nil {
		t.Fatalf("ListByStatus failed: %v", err)
	}
	if !mr.Exists(listingKey) {
		t.Error("expected Accepted listing to be written through to the cache")
	}
}

func TestClassRepository_ListByStatusInTransactionSkipsCache(t *testing.T) {
	repo, mr := newClassCacheRepo(t)
	ctx := context.Background()

	seedListing(t, repo, []*models.Class{
		{ID: 1, Title: "Stale", Status: models.StatusAccepted},
	})

	// A transactional read must see the store, not the listing snapshot.
	classes, err := repo.ListByStatus(ctx, repo.db, models.StatusAccepted)
	if err != nil {
		t.Fatalf("ListByStatus failed: %v", err)
	}
	if len(classes) != 0 {
		t.Errorf("expected transactional read to bypass the cache, got %+v", classes)
	}
	if data, err := mr.Get(listingKey); err != nil || data == "" {
		t.Errorf("transactional read must leave the cached listing alone: %v", err)
	}
}

func TestClassRepository_WritesInvalidateListing(t *testing.T) {
	repo, mr := newClassCacheRepo(t)
	ctx := context.Background()

	writes := []struct {
		name string
		call func() error
	}{
		{"create", func() error {
			return repo.Create(ctx, nil, &models.Class{Title: "New", OwnerEmail: "a@example.com", Price: 10})
		}},
		{"update", func() error {
			return repo.Update(ctx, nil, &models.Class{ID: 1, Title: "Renamed", OwnerEmail: "a@example.com", Price: 10})
		}},
		{"update status", func() error {
			_, err := repo.UpdateStatus(ctx, nil, 1, models.StatusRejected)
			return err
		}},
		{"delete", func() error {
			_, err := repo.Delete(ctx, nil, 1)
			return err
		}},
	}

	for _, w := range writes {
		t.Run(w.name, func(t *testing.T) {
			seedListing(t, repo, []*models.Class{
				{ID: 1, Title: "Cached", Status: models.StatusAccepted},
			})
			if err := w.call(); err != nil {
				t.Fatalf("write failed: %v", err)
			}
			if mr.Exists(listingKey) {
				t.Error("expected the cached listing to be dropped")
			}
		})
	}
}
