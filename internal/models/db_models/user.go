package db_models

import (
	"time"
)

// User is an authenticated identity. Rows are written via upsert keyed on ID and
// never deleted in normal operation.
type User struct {
	ID              string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	FirstName       string    `gorm:"type:varchar(100)" json:"firstName,omitempty"`
	LastName        string    `gorm:"type:varchar(100)" json:"lastName,omitempty"`
	ProfileImageUrl string    `gorm:"type:varchar(512)" json:"profileImageUrl,omitempty"`
	PasswordHash    string    `gorm:"type:varchar(255)" json:"-"`
	Role            string    `gorm:"type:varchar(20);default:user" json:"role"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
