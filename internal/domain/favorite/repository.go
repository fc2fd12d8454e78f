package favorite

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"spotshot/internal/domain/spot"
)

type Repository interface {
	ListSpotsForUser(ctx context.Context, userID string) ([]spot.Spot, error)
	Add(ctx context.Context, userID, spotID string) error
	Remove(ctx context.Context, userID, spotID string) error
	CountForSpot(ctx context.Context, spotID string) (int64, error)
	Exists(ctx context.Context, userID, spotID string) (bool, error)
	RemoveAllForUser(ctx context.Context, userID string) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// ListSpotsForUser returns the full spot records the user has favorited,
// joined through the favorites relation.
func (r *gormRepository) ListSpotsForUser(ctx context.Context, userID string) ([]spot.Spot, error) {
	spots := []spot.Spot{}
	err := r.db.WithContext(ctx).
		Model(&spot.Spot{}).
		Joins("JOIN favorites ON favorites.spot_id = spots.id").
		Where("favorites.user_id = ?", userID).
		Find(&spots).Error
	if err != nil {
		return nil, err
	}
	return spots, nil
}

// Add inserts unconditionally; no existence or duplicate check.
func (r *gormRepository) Add(ctx context.Context, userID, spotID string) error {
	return r.db.WithContext(ctx).Create(&Favorite{
		ID:     uuid.NewString(),
		UserID: userID,
		SpotID: spotID,
	}).Error
}

// Remove deletes matching rows; removing a favorite that does not exist is
// not an error.
func (r *gormRepository) Remove(ctx context.Context, userID, spotID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND spot_id = ?", userID, spotID).
		Delete(&Favorite{}).Error
}

// RemoveAllForUser clears the user's bookmarks. First stage of the user
// cascade delete.
func (r *gormRepository) RemoveAllForUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&Favorite{}).Error
}

func (r *gormRepository) CountForSpot(ctx context.Context, spotID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Favorite{}).
		Where("spot_id = ?", spotID).
		Count(&count).Error
	return count, err
}

func (r *gormRepository) Exists(ctx context.Context, userID, spotID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Favorite{}).
		Where("user_id = ? AND spot_id = ?", userID, spotID).
		Count(&count).Error
	return count > 0, err
}
