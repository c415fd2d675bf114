package models

import (
	"time"
)

// Message is an anonymous message posted against a Link. LinkID is not a
// database foreign key on purpose: validity is checked by the handler at
// write time and links are never deleted by this service.
type Message struct {
	ID                uint      `gorm:"primaryKey" json:"-"`
	MessageID         string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"messageId"`
	LinkID            string    `gorm:"type:varchar(16);not null;index" json:"linkId"`
	Content           string    `gorm:"type:text;not null" json:"content"`
	AnonymousSenderID string    `gorm:"type:varchar(50);not null" json:"anonymousSenderId"`
	CreatedAt         time.Time `gorm:"index" json:"timestamp"`
}
