package db_models

import (
	"time"
)

// Review is one published company review. ID and CreatedAt are assigned by the
// store on insert and are never taken from client input.
type Review struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CompanyName string    `gorm:"type:text;not null" json:"companyName"`
	ReviewDate  string    `gorm:"type:text;not null" json:"reviewDate"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	ImageUrl    string    `gorm:"type:text" json:"imageUrl,omitempty"`
	WebsiteUrl  string    `gorm:"type:text;not null" json:"websiteUrl"`
	Rating      int       `gorm:"type:int;not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
