package user

import (
	"context"
	"errors"
)

// The cascade depends on narrow interfaces so each stage can be faked in
// tests without standing up the other domains.
type FavoriteRemover interface {
	RemoveAllForUser(ctx context.Context, userID string) error
}

type ReportRemover interface {
	DeleteByReporter(ctx context.Context, reporterID string) error
}

type SpotRemover interface {
	DeleteByAuthor(ctx context.Context, authorID string) error
}

type IdentityDeleter interface {
	DeleteUser(ctx context.Context, userID string) error
}

type Service struct {
	profiles  Repository
	favorites FavoriteRemover
	reports   ReportRemover
	spots     SpotRemover
	identity  IdentityDeleter
}

func NewService(
	profiles Repository,
	favorites FavoriteRemover,
	reports ReportRemover,
	spots SpotRemover,
	identity IdentityDeleter,
) *Service {
	return &Service{
		profiles:  profiles,
		favorites: favorites,
		reports:   reports,
		spots:     spots,
		identity:  identity,
	}
}

func (s *Service) GetByID(ctx context.Context, id string) (*Profile, error) {
	return s.profiles.GetByID(ctx, id)
}

// Cascade delete stage names, in execution order.
const (
	StageFavorites = "favorites"
	StageReports   = "reports"
	StageSpots     = "spots"
	StageProfile   = "profile"
	StageIdentity  = "identity"
)

// DeleteUser removes all traces of a user in fixed order: favorites, then
// reports they filed, then spots they authored, then the profile row, then
// the identity record in the external auth service. A failing stage aborts
// the sequence and is named in the returned StageError. Earlier stages stay
// committed: there is no rollback across the external datastore and auth
// service, so a mid-sequence failure leaves the user partially deleted.
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("user id is required")
	}

	if err := s.favorites.RemoveAllForUser(ctx, id); err != nil {
		return &StageError{Stage: StageFavorites, Err: err}
	}
	if err := s.reports.DeleteByReporter(ctx, id); err != nil {
		return &StageError{Stage: StageReports, Err: err}
	}
	if err := s.spots.DeleteByAuthor(ctx, id); err != nil {
		return &StageError{Stage: StageSpots, Err: err}
	}
	if err := s.profiles.Delete(ctx, id); err != nil {
		return &StageError{Stage: StageProfile, Err: err}
	}
	if s.identity != nil {
		if err := s.identity.DeleteUser(ctx, id); err != nil {
			return &StageError{Stage: StageIdentity, Err: err}
		}
	}
	return nil
}
