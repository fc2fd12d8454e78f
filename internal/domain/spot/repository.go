package spot

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository abstracts spot storage so handlers never touch the datastore
// directly and the backing store stays swappable.
type Repository interface {
	Create(ctx context.Context, s *Spot) error
	List(ctx context.Context, f Filters) ([]Spot, error)
	GetByID(ctx context.Context, id string) (*Spot, error)
	Update(ctx context.Context, id string, fields map[string]any) (*Spot, error)
	Delete(ctx context.Context, id string) (*Spot, error)
	Countries(ctx context.Context) ([]string, error)
	Cities(ctx context.Context, country string) ([]string, error)
	CountByAuthor(ctx context.Context, authorID string) (int64, error)

	// Moderation and user-cascade operations.
	ListPending(ctx context.Context, f Filters, limit int) ([]Spot, error)
	Accept(ctx context.Context, id string) (*Spot, error)
	DeleteByAuthor(ctx context.Context, authorID string) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, s *Spot) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// List returns accepted spots only. Country/city filters apply when set and
// not the "All" sentinel.
func (r *gormRepository) List(ctx context.Context, f Filters) ([]Spot, error) {
	q := r.db.WithContext(ctx).Where("accepted = ?", true)

	if hasFilter(f.Country) {
		q = q.Where("country = ?", f.Country)
	}
	if hasFilter(f.City) {
		q = q.Where("city = ?", f.City)
	}

	spots := []Spot{}
	if err := q.Find(&spots).Error; err != nil {
		return nil, err
	}
	return spots, nil
}

// GetByID does not filter by acceptance: owners and moderators fetch pending
// spots directly by id.
func (r *gormRepository) GetByID(ctx context.Context, id string) (*Spot, error) {
	var s Spot
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Update merges the supplied fields over the existing record as-is. There is
// no field whitelist: the caller owns what it writes, acceptance flag
// included.
func (r *gormRepository) Update(ctx context.Context, id string, fields map[string]any) (*Spot, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		if err := r.db.WithContext(ctx).Model(&Spot{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return nil, err
		}
	}

	return r.GetByID(ctx, id)
}

// Delete removes the record and returns the deleted snapshot.
func (r *gormRepository) Delete(ctx context.Context, id string) (*Spot, error) {
	s, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&Spot{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// Countries returns the distinct country set across all spots, sorted.
// Unaccepted spots are included, matching the public listing pages that
// build their dropdowns from this endpoint before any moderation pass.
func (r *gormRepository) Countries(ctx context.Context) ([]string, error) {
	countries := []string{}
	err := r.db.WithContext(ctx).
		Model(&Spot{}).
		Distinct("country").
		Order("country").
		Pluck("country", &countries).Error
	if err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *gormRepository) Cities(ctx context.Context, country string) ([]string, error) {
	q := r.db.WithContext(ctx).Model(&Spot{})
	if hasFilter(country) {
		q = q.Where("country = ?", country)
	}

	cities := []string{}
	if err := q.Distinct("city").Order("city").Pluck("city", &cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *gormRepository) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Spot{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	return count, err
}

// ListPending returns unaccepted spots oldest-first. The caller owns limit
// clamping; limit <= 0 means no limit.
func (r *gormRepository) ListPending(ctx context.Context, f Filters, limit int) ([]Spot, error) {
	q := r.db.WithContext(ctx).
		Where("accepted = ?", false).
		Order("created_at ASC")

	if hasFilter(f.Country) {
		q = q.Where("country = ?", f.Country)
	}
	if hasFilter(f.City) {
		q = q.Where("city = ?", f.City)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	spots := []Spot{}
	if err := q.Find(&spots).Error; err != nil {
		return nil, err
	}
	return spots, nil
}

// Accept flips the acceptance flag and returns the updated record.
func (r *gormRepository) Accept(ctx context.Context, id string) (*Spot, error) {
	result := r.db.WithContext(ctx).
		Model(&Spot{}).
		Where("id = ?", id).
		Update("accepted", true)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// DeleteByAuthor removes every spot the user submitted. Used by the user
// cascade delete; deleting zero rows is fine.
func (r *gormRepository) DeleteByAuthor(ctx context.Context, authorID string) error {
	return r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Delete(&Spot{}).Error
}

func hasFilter(v string) bool {
	return v != "" && v != "All"
}
