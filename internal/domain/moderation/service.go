package moderation

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"spotshot/internal/domain/spot"
	"spotshot/internal/domain/user"
)

const (
	defaultPendingLimit = 50
	maxPendingLimit     = 200
)

// Author is the compact submitter projection attached to pending spots so
// the review dashboard can render who submitted without a second request.
type Author struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

// PendingSpot is a spot awaiting review together with its author.
type PendingSpot struct {
	spot.Spot
	Author *Author `json:"author"`
}

type Service struct {
	spots    spot.Repository
	reports  ReportRepository
	profiles user.Repository
}

func NewService(spots spot.Repository, reports ReportRepository, profiles user.Repository) *Service {
	return &Service{
		spots:    spots,
		reports:  reports,
		profiles: profiles,
	}
}

// ListPending returns unaccepted spots oldest-first with author projections.
// The limit is clamped to [1, 200]; zero or negative means the default 50.
func (s *Service) ListPending(ctx context.Context, f spot.Filters, limit int) ([]PendingSpot, error) {
	if limit <= 0 {
		limit = defaultPendingLimit
	}
	if limit > maxPendingLimit {
		limit = maxPendingLimit
	}

	spots, err := s.spots.ListPending(ctx, f, limit)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(spots))
	for _, sp := range spots {
		if sp.AuthorID != "" {
			ids = append(ids, sp.AuthorID)
		}
	}
	profiles, err := s.profiles.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	pending := make([]PendingSpot, 0, len(spots))
	for _, sp := range spots {
		p := PendingSpot{Spot: sp}
		if profile, ok := profiles[sp.AuthorID]; ok {
			p.Author = &Author{
				ID:        profile.ID,
				Username:  profile.Username,
				AvatarURL: profile.AvatarURL,
			}
		}
		pending = append(pending, p)
	}
	return pending, nil
}

func (s *Service) Accept(ctx context.Context, id string) (*spot.Spot, error) {
	return s.spots.Accept(ctx, id)
}

// Reject removes the spot outright. Rejecting an id that no longer exists is
// treated as done.
func (s *Service) Reject(ctx context.Context, id string) error {
	_, err := s.spots.Delete(ctx, id)
	if err != nil && err != spot.ErrNotFound {
		return err
	}
	return nil
}

// Report files a complaint against an existing spot and returns the new
// report's id. The reason is stored without surrounding whitespace.
func (s *Service) Report(ctx context.Context, spotID, reporterID, reason string) (string, error) {
	if _, err := s.spots.GetByID(ctx, spotID); err != nil {
		return "", err
	}

	report := &SpotReport{
		ID:         uuid.NewString(),
		SpotID:     spotID,
		ReporterID: reporterID,
		Reason:     strings.TrimSpace(reason),
	}
	if err := s.reports.Create(ctx, report); err != nil {
		return "", err
	}
	return report.ID, nil
}

func (s *Service) ListReports(ctx context.Context) ([]SpotReport, error) {
	return s.reports.List(ctx)
}

func (s *Service) DismissReport(ctx context.Context, reportID string) error {
	return s.reports.Delete(ctx, reportID)
}

// DeleteReportedSpot removes the report and then the reported spot. The two
// deletes are independent calls: if the spot delete fails after the report
// delete succeeded, the report stays gone and the error says which half
// failed.
func (s *Service) DeleteReportedSpot(ctx context.Context, reportID, spotID string) error {
	if err := s.reports.Delete(ctx, reportID); err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	if _, err := s.spots.Delete(ctx, spotID); err != nil {
		return fmt.Errorf("report deleted, delete spot: %w", err)
	}
	return nil
}
