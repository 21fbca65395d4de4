package auth

import (
	"time"

	userDatamodel "github.com/masdika/employee-directory/internal/core/datamodel/user"
)

// User is the authenticated principal as the rest of the application sees it.
type User struct {
	ID          int64      `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Email       string     `json:"email"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`

	passwordHash string
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func FromDataModel(dm *userDatamodel.User) *User {
	return &User{
		ID:           dm.ID,
		FirstName:    dm.FirstName,
		LastName:     dm.LastName,
		Email:        dm.Email,
		CreatedAt:    dm.CreatedAt,
		LastLoginAt:  dm.LastLoginAt,
		passwordHash: dm.PasswordHash,
	}
}

func ToDataModel(u *User) *userDatamodel.User {
	return &userDatamodel.User{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		PasswordHash: u.passwordHash,
		CreatedAt:    u.CreatedAt,
		LastLoginAt:  u.LastLoginAt,
	}
}
