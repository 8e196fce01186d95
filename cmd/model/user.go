package model

import "time"

type User struct {
	UserID    string    `gorm:"column:user_id;primaryKey;size:24" json:"user_id"`
	Username  string    `gorm:"size:64;uniqueIndex" json:"username"`
	Email     string    `gorm:"size:128;uniqueIndex" json:"email"`
	FullName  string    `gorm:"size:128" json:"full_name"`
	AvatarURL string    `gorm:"size:512" json:"avatar_url"`
	Password  string    `gorm:"size:128" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile is the public projection embedded into listings.
type Profile struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url"`
}

func (u *User) Profile() *Profile {
	return &Profile{
		UserID:    u.UserID,
		Username:  u.Username,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
	}
}
