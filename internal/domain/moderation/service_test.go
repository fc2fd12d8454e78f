package moderation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"spotshot/internal/domain/spot"
	"spotshot/internal/domain/user"
)

func setupTestService(t *testing.T) (*Service, spot.Repository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:moderation_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&spot.Spot{}, &SpotReport{}, &user.Profile{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}

	spots := spot.NewRepository(db)
	svc := NewService(spots, NewReportRepository(db), user.NewRepository(db))
	return svc, spots, db
}

func createPending(t *testing.T, spots spot.Repository, name, authorID string, createdAt time.Time) *spot.Spot {
	t.Helper()
	s := &spot.Spot{
		ID:        uuid.NewString(),
		Name:      name,
		City:      "Paris",
		Country:   "France",
		Image:     "https://example.com/" + name + ".jpg",
		AuthorID:  authorID,
		Accepted:  false,
		CreatedAt: createdAt,
	}
	if err := spots.Create(context.Background(), s); err != nil {
		t.Fatalf("failed to create spot: %v", err)
	}
	return s
}

func TestListPendingOrderAndAuthorProjection(t *testing.T) {
	svc, spots, db := setupTestService(t)
	ctx := context.Background()

	author := user.Profile{ID: "author-1", Username: "emma", AvatarURL: "https://example.com/a.png"}
	if err := db.Create(&author).Error; err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}

	base := time.Now().Add(-time.Hour)
	createPending(t, spots, "second", "author-1", base.Add(time.Minute))
	createPending(t, spots, "first", "author-1", base)
	createPending(t, spots, "orphan", "no-profile", base.Add(2*time.Minute))

	pending, err := svc.ListPending(ctx, spot.Filters{}, 0)
	if err != nil {
		t.Fatalf("ListPending returned error: %v", err)
	}
	if len(pending) != 3 {
		t.Fatalf("expected 3 pending spots, got %d", len(pending))
	}
	if pending[0].Name != "first" || pending[1].Name != "second" {
		t.Fatalf("expected oldest-first ordering, got %q then %q", pending[0].Name, pending[1].Name)
	}

	if pending[0].Author == nil || pending[0].Author.Username != "emma" {
		t.Fatalf("expected author projection, got %+v", pending[0].Author)
	}
	if pending[0].Author.AvatarURL != "https://example.com/a.png" {
		t.Fatalf("expected avatar in projection, got %+v", pending[0].Author)
	}
	// submitter without a profile row keeps a nil author rather than failing
	if pending[2].Author != nil {
		t.Fatalf("expected nil author for missing profile, got %+v", pending[2].Author)
	}
}

func TestListPendingClampsLimit(t *testing.T) {
	svc, spots, _ := setupTestService(t)
	ctx := context.Background()

	base := time.Now().Add(-24 * time.Hour)
	for i := 0; i < 205; i++ {
		createPending(t, spots, fmt.Sprintf("p-%03d", i), "author-1", base.Add(time.Duration(i)*time.Second))
	}

	pending, err := svc.ListPending(ctx, spot.Filters{}, 1000)
	if err != nil {
		t.Fatalf("ListPending returned error: %v", err)
	}
	if len(pending) != 200 {
		t.Fatalf("expected limit clamped to 200, got %d", len(pending))
	}

	pending, err = svc.ListPending(ctx, spot.Filters{}, 0)
	if err != nil {
		t.Fatalf("ListPending returned error: %v", err)
	}
	if len(pending) != 50 {
		t.Fatalf("expected default limit 50, got %d", len(pending))
	}
}

func TestAcceptFlow(t *testing.T) {
	svc, spots, _ := setupTestService(t)
	ctx := context.Background()

	s := createPending(t, spots, "pending", "author-1", time.Now())

	accepted, err := svc.Accept(ctx, s.ID)
	if err != nil {
		t.Fatalf("Accept returned error: %v", err)
	}
	if !accepted.Accepted {
		t.Fatal("expected acceptance flag set")
	}

	// double accept is tolerated
	if _, err := svc.Accept(ctx, s.ID); err != nil {
		t.Fatalf("second Accept returned error: %v", err)
	}

	if _, err := svc.Accept(ctx, "missing"); !errors.Is(err, spot.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing spot, got %v", err)
	}
}

func TestRejectDeletesSpot(t *testing.T) {
	svc, spots, _ := setupTestService(t)
	ctx := context.Background()

	s := createPending(t, spots, "bad", "author-1", time.Now())

	if err := svc.Reject(ctx, s.ID); err != nil {
		t.Fatalf("Reject returned error: %v", err)
	}
	if _, err := spots.GetByID(ctx, s.ID); !errors.Is(err, spot.ErrNotFound) {
		t.Fatal("expected rejected spot deleted")
	}

	// rejecting an already-gone spot is a no-op
	if err := svc.Reject(ctx, s.ID); err != nil {
		t.Fatalf("second Reject returned error: %v", err)
	}
}

func TestReportValidatesSpotAndTrimsReason(t *testing.T) {
	svc, spots, db := setupTestService(t)
	ctx := context.Background()

	_, err := svc.Report(ctx, "missing", "reporter-1", "spam")
	if !errors.Is(err, spot.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing spot, got %v", err)
	}

	s := createPending(t, spots, "reported", "author-1", time.Now())
	reportID, err := svc.Report(ctx, s.ID, "reporter-1", "  not a real place  ")
	if err != nil {
		t.Fatalf("Report returned error: %v", err)
	}
	if reportID == "" {
		t.Fatal("expected a report id")
	}

	var stored SpotReport
	if err := db.First(&stored, "id = ?", reportID).Error; err != nil {
		t.Fatalf("failed to load report: %v", err)
	}
	if stored.Reason != "not a real place" {
		t.Fatalf("expected trimmed reason, got %q", stored.Reason)
	}
	if stored.SpotID != s.ID || stored.ReporterID != "reporter-1" {
		t.Fatalf("report references wrong rows: %+v", stored)
	}
}

func TestDismissReport(t *testing.T) {
	svc, spots, _ := setupTestService(t)
	ctx := context.Background()

	s := createPending(t, spots, "reported", "author-1", time.Now())
	reportID, err := svc.Report(ctx, s.ID, "reporter-1", "spam")
	if err != nil {
		t.Fatalf("Report returned error: %v", err)
	}

	if err := svc.DismissReport(ctx, reportID); err != nil {
		t.Fatalf("DismissReport returned error: %v", err)
	}

	if err := svc.DismissReport(ctx, reportID); !errors.Is(err, ErrReportNotFound) {
		t.Fatalf("expected ErrReportNotFound, got %v", err)
	}

	// the spot itself survives a dismissal
	if _, err := spots.GetByID(ctx, s.ID); err != nil {
		t.Fatalf("spot must survive report dismissal: %v", err)
	}
}

func TestDeleteReportedSpotRemovesBoth(t *testing.T) {
	svc, spots, _ := setupTestService(t)
	ctx := context.Background()

	s := createPending(t, spots, "reported", "author-1", time.Now())
	reportID, err := svc.Report(ctx, s.ID, "reporter-1", "spam")
	if err != nil {
		t.Fatalf("Report returned error: %v", err)
	}

	if err := svc.DeleteReportedSpot(ctx, reportID, s.ID); err != nil {
		t.Fatalf("DeleteReportedSpot returned error: %v", err)
	}

	if _, err := spots.GetByID(ctx, s.ID); !errors.Is(err, spot.ErrNotFound) {
		t.Fatal("expected spot deleted")
	}
	reports, err := svc.ListReports(ctx)
	if err != nil {
		t.Fatalf("ListReports returned error: %v", err)
	}
	if len(reports) != 0 {
		t.Fatalf("expected report deleted, got %d", len(reports))
	}
}

func TestDeleteReportedSpotPartialFailure(t *testing.T) {
	svc, spots, _ := setupTestService(t)
	ctx := context.Background()

	s := createPending(t, spots, "reported", "author-1", time.Now())
	reportID, err := svc.Report(ctx, s.ID, "reporter-1", "spam")
	if err != nil {
		t.Fatalf("Report returned error: %v", err)
	}

	// spot vanished between report and moderator action
	if _, err := spots.Delete(ctx, s.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	err = svc.DeleteReportedSpot(ctx, reportID, s.ID)
	if !errors.Is(err, spot.ErrNotFound) {
		t.Fatalf("expected spot not-found surfaced, got %v", err)
	}

	// the report delete already committed: partial failure, no rollback
	reports, listErr := svc.ListReports(ctx)
	if listErr != nil {
		t.Fatalf("ListReports returned error: %v", listErr)
	}
	if len(reports) != 0 {
		t.Fatal("expected report to stay deleted after the spot delete failed")
	}
}
