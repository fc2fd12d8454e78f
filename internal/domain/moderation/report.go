package moderation

import "time"

// SpotReport is a user-filed complaint against a spot. Reports are
// independent of the spot's moderation state; a spot can be reported whether
// pending or accepted.
type SpotReport struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	SpotID     string    `json:"spot_id" gorm:"not null;index"`
	ReporterID string    `json:"reporter_id" gorm:"not null;index"`
	Reason     string    `json:"reason" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (SpotReport) TableName() string {
	return "spot_reports"
}
