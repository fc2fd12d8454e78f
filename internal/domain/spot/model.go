package spot

import "time"

// Spot is a user-submitted point of interest with photo and location
// metadata. New submissions always start unaccepted and stay invisible to
// public listings until a moderator accepts them.
type Spot struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	City        string    `json:"city" gorm:"index"`
	Country     string    `json:"country" gorm:"index"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	PhotoTips   string    `json:"photo_tips,omitempty"`
	AuthorID    string    `json:"author_id" gorm:"index"`
	Accepted    bool      `json:"accepted" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Spot) TableName() string {
	return "spots"
}

// Filters narrows public spot listings. The frontend sends "All" for an
// unset dropdown, which counts as no filter.
type Filters struct {
	Country string
	City    string
}
