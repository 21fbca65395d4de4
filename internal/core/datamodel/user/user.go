package user

import "time"

// User is the persistence shape for the users table.
type User struct {
	ID           int64      `json:"id" gorm:"primaryKey"`
	FirstName    string     `json:"first_name" gorm:"column:first_name;size:50;not null"`
	LastName     string     `json:"last_name" gorm:"column:last_name;size:50;not null"`
	Email        string     `json:"email" gorm:"column:email;size:255;not null;uniqueIndex"`
	PasswordHash string     `json:"-" gorm:"column:password_hash;size:255;not null"`
	CreatedAt    time.Time  `json:"created_at" gorm:"column:created_at;autoCreateTime:false;autoUpdateTime:false"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty" gorm:"column:last_login_at;autoUpdateTime:false"`
}

func (User) TableName() string {
	return "users"
}
