package repository

import (
	"errors"

	"github.com/whisperlink/server/internal/models"
	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// GetByMessageID retrieves a message by its public identifier.
// Returns (nil, nil) when no message exists.
func (r *MessageRepository) GetByMessageID(messageID string) (*models.Message, error) {
	var message models.Message
	err := r.db.Where("message_id = ?", messageID).First(&message).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}

// GetByLinkID retrieves all messages for a link, newest first.
func (r *MessageRepository) GetByLinkID(linkID string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Where("link_id = ?", linkID).
		Order("created_at DESC").
		Find(&messages).Error

	return messages, err
}

// CountByLinkID returns the number of messages attached to a link.
func (r *MessageRepository) CountByLinkID(linkID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).
		Where("link_id = ?", linkID).
		Count(&count).Error

	return count, err
}

// DeleteByMessageID hard-deletes a message. Messages have no soft delete.
func (r *MessageRepository) DeleteByMessageID(messageID string) error {
	return r.db.Where("message_id = ?", messageID).Delete(&models.Message{}).Error
}
