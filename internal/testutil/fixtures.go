package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/whisperlink/server/internal/models"
)

// CreateTestLink builds a link record for direct insertion in tests.
func CreateTestLink(linkID, userKey string) *models.Link {
	return &models.Link{
		LinkID:      linkID,
		UserKey:     userKey,
		Title:       models.DefaultTitle,
		Description: models.DefaultDescription,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
}

// CreateTestMessage builds a message record for direct insertion in tests.
func CreateTestMessage(linkID, content string) *models.Message {
	return &models.Message{
		MessageID:         uuid.New().String(),
		LinkID:            linkID,
		Content:           content,
		AnonymousSenderID: "QuietOtter42",
		CreatedAt:         time.Now(),
	}
}
