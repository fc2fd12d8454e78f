package favorite

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"spotshot/internal/domain/spot"
)

func setupTestRepo(t *testing.T) (Repository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:favorite_repo_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&Favorite{}, &spot.Spot{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	return NewRepository(db), db
}

func createSpot(t *testing.T, db *gorm.DB, name string) *spot.Spot {
	t.Helper()
	s := &spot.Spot{
		ID:       uuid.NewString(),
		Name:     name,
		City:     "Paris",
		Country:  "France",
		Image:    "https://example.com/" + name + ".jpg",
		AuthorID: "author-1",
		Accepted: true,
	}
	if err := db.Create(s).Error; err != nil {
		t.Fatalf("failed to create spot: %v", err)
	}
	return s
}

func TestAddExistsRemove(t *testing.T) {
	repo, db := setupTestRepo(t)
	ctx := context.Background()
	s := createSpot(t, db, "stairs")

	favorited, err := repo.Exists(ctx, "user-1", s.ID)
	if err != nil {
		t.Fatalf("Exists returned error: %v", err)
	}
	if favorited {
		t.Fatal("expected no favorite yet")
	}

	if err := repo.Add(ctx, "user-1", s.ID); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	favorited, err = repo.Exists(ctx, "user-1", s.ID)
	if err != nil {
		t.Fatalf("Exists returned error: %v", err)
	}
	if !favorited {
		t.Fatal("expected favorite to exist")
	}

	if err := repo.Remove(ctx, "user-1", s.ID); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}

	favorited, _ = repo.Exists(ctx, "user-1", s.ID)
	if favorited {
		t.Fatal("expected favorite removed")
	}
}

func TestRemoveMissingIsNotAnError(t *testing.T) {
	repo, _ := setupTestRepo(t)

	if err := repo.Remove(context.Background(), "user-1", "no-such-spot"); err != nil {
		t.Fatalf("removing a missing favorite must succeed, got %v", err)
	}
}

func TestAddAllowsDuplicates(t *testing.T) {
	repo, db := setupTestRepo(t)
	ctx := context.Background()
	s := createSpot(t, db, "bridge")

	// no duplicate check: a double submit produces two rows
	if err := repo.Add(ctx, "user-1", s.ID); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := repo.Add(ctx, "user-1", s.ID); err != nil {
		t.Fatalf("second Add returned error: %v", err)
	}

	count, err := repo.CountForSpot(ctx, s.ID)
	if err != nil {
		t.Fatalf("CountForSpot returned error: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 rows after double submit, got %d", count)
	}
}

func TestListSpotsForUserJoinsFullRecords(t *testing.T) {
	repo, db := setupTestRepo(t)
	ctx := context.Background()

	a := createSpot(t, db, "stairs")
	b := createSpot(t, db, "bridge")
	createSpot(t, db, "unfavorited")

	if err := repo.Add(ctx, "user-1", a.ID); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := repo.Add(ctx, "user-1", b.ID); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := repo.Add(ctx, "user-2", b.ID); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	spots, err := repo.ListSpotsForUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListSpotsForUser returned error: %v", err)
	}
	if len(spots) != 2 {
		t.Fatalf("expected 2 favorited spots, got %d", len(spots))
	}
	for _, s := range spots {
		if s.Name == "" || s.Image == "" || s.Country == "" {
			t.Fatalf("expected full spot record, got %+v", s)
		}
	}
}

func TestRemoveAllForUser(t *testing.T) {
	repo, db := setupTestRepo(t)
	ctx := context.Background()

	a := createSpot(t, db, "stairs")
	if err := repo.Add(ctx, "user-1", a.ID); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := repo.Add(ctx, "user-2", a.ID); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	if err := repo.RemoveAllForUser(ctx, "user-1"); err != nil {
		t.Fatalf("RemoveAllForUser returned error: %v", err)
	}

	count, err := repo.CountForSpot(ctx, a.ID)
	if err != nil {
		t.Fatalf("CountForSpot returned error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected only user-2's favorite to survive, got %d", count)
	}
}
