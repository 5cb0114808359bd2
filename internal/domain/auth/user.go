package auth

import (
	"time"

	"gorm.io/gorm"

	"roomrental/internal/pkg/hexid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account on the platform. Room listings reference users by id
// as owners; the rest of the system only sees the id and role resolved
// from the access token.
type User struct {
	ID            string    `gorm:"column:id;primaryKey" json:"id"`
	Name          string    `gorm:"column:name;not null" json:"name"`
	Email         string    `gorm:"column:email;uniqueIndex;not null" json:"email"`
	PasswordHash  string    `gorm:"column:password_hash;not null" json:"-"`
	ContactNumber string    `gorm:"column:contact_number" json:"contactNumber,omitempty"`
	Role          string    `gorm:"column:role;default:user" json:"role"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = hexid.New()
	}
	return nil
}
