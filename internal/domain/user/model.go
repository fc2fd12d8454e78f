package user

import "time"

// Profile is the application-side projection of an identity record. The
// identity itself is owned by the external auth service; the profile row
// shares its id.
type Profile struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Profile) TableName() string {
	return "profiles"
}
