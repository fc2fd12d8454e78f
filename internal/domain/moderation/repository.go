package moderation

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type ReportRepository interface {
	Create(ctx context.Context, report *SpotReport) error
	List(ctx context.Context) ([]SpotReport, error)
	Delete(ctx context.Context, id string) error
	DeleteByReporter(ctx context.Context, reporterID string) error
}

type gormReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &gormReportRepository{db: db}
}

func (r *gormReportRepository) Create(ctx context.Context, report *SpotReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *gormReportRepository) List(ctx context.Context) ([]SpotReport, error) {
	reports := []SpotReport{}
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *gormReportRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&SpotReport{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReportNotFound
	}
	return nil
}

// DeleteByReporter removes every report filed by the given user. Used by the
// user cascade delete; deleting zero rows is fine there.
func (r *gormReportRepository) DeleteByReporter(ctx context.Context, reporterID string) error {
	err := r.db.WithContext(ctx).
		Where("reporter_id = ?", reporterID).
		Delete(&SpotReport{}).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
