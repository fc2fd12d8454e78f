package favorite

import "time"

// Favorite is a user's saved-spot bookmark. At most one row per (user, spot)
// pair is assumed by clients, but nothing here enforces it; a double submit
// simply produces a duplicate row.
type Favorite struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"not null;index"`
	SpotID    string    `json:"spot_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Favorite) TableName() string {
	return "favorites"
}
