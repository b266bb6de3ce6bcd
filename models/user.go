package models

import "time"

const UserTable = "users"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// AdminUsername is the protected singleton account. It can never be
// edited or deleted through the API (see db.ErrProtectedUser).
const AdminUsername = "admin"

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;size:100;not null" json:"username"`
	FullName     string `gorm:"size:255;not null" json:"full_name"`
	Email        string `gorm:"size:255;not null" json:"email"`
	Role         string `gorm:"size:20;not null;default:'user'" json:"role"`
	IsActive     bool   `gorm:"not null;default:true" json:"is_active"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	LastSeenAt *time.Time `gorm:"index" json:"last_seen_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return UserTable }

// IsProtected reports whether this account is the admin singleton.
func (u *User) IsProtected() bool { return u.Username == AdminUsername }
