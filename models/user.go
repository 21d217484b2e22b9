// models/user.go
package models

import "time"

const UserTable = "lab_users"

const (
	UserRoleUser  = "user"
	UserRoleAdmin = "admin"
)

type User struct {
	ID    string `gorm:"type:uuid;primaryKey" json:"id"`
	Name  string `gorm:"size:200" json:"name"`
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Role  string `gorm:"size:20;not null;default:'user'" json:"role"`

	LastSeenAt *time.Time `gorm:"index" json:"lastSeenAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func (User) TableName() string { return UserTable }

func (u *User) IsAdmin() bool { return u.Role == UserRoleAdmin }
