package models

import (
	"time"
)

// DefaultTitle and DefaultDescription are used when the creator omits them.
const (
	DefaultTitle       = "Anonymous messages"
	DefaultDescription = "Send me an anonymous message!"
)

// Link is a shareable inbox protected by a secret key. The key is stored
// in plain text and must never appear in any JSON response.
type Link struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	LinkID      string    `gorm:"type:varchar(16);uniqueIndex;not null" json:"linkId"`
	UserKey     string    `gorm:"type:varchar(255);not null;index" json:"-"` // never expose in JSON
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	IsActive    bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
}
